package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidbz/spendwatch/internal/app"
	"github.com/davidbz/spendwatch/internal/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container, err := app.BuildContainer()
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	err = container.Invoke(func(server *http.Server) error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case startErr := <-errCh:
			return startErr
		case <-stop:
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(ctx)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Server failed: %v", err)
	}
}
