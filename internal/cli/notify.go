// Package cli implements the one-shot notify command.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidbz/spendwatch/internal/app"
	"github.com/davidbz/spendwatch/internal/config"
	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/event"
	"github.com/davidbz/spendwatch/internal/observability"
)

// NewCommand creates the notify command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spendwatch-notify",
		Short: "Send the GCP billing summary for one period",
		Long: "Reads the billing export for the selected period, summarizes it per service " +
			"and posts it to the configured sink. Without flags the current month to date is reported.",
		SilenceUsage: true,
		RunE:         runCommand,
	}

	cmd.Flags().BoolP("current", "c", true, "Report the current month to date")
	cmd.Flags().BoolP("previous", "p", false, "Report the previous calendar month")
	cmd.Flags().IntP("year", "y", 0, "Year of the month to report (with --month)")
	cmd.Flags().IntP("month", "m", 0, "Month to report, 1-12 (with --year)")
	cmd.Flags().StringP("event-file", "e", "", "Path to a TOML, YAML, or JSON invocation event")
	cmd.Flags().Bool("dry-run", false, "Print the notification instead of sending it")

	return cmd
}

func runCommand(cmd *cobra.Command, _ []string) error {
	req, err := ParseRequest(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return run(cmd.Context(), cmd.OutOrStdout(), req, dryRun)
}

// ParseRequest builds the invocation request from parsed flags. Values from
// --event-file come first and explicitly set flags override them. Selecting
// --previous or --year/--month without --current turns the month-to-date
// default off.
func ParseRequest(cmd *cobra.Command) (domain.InvocationRequest, error) {
	flags := cmd.Flags()

	current, _ := flags.GetBool("current")
	previous, _ := flags.GetBool("previous")
	year, _ := flags.GetInt("year")
	month, _ := flags.GetInt("month")
	eventFile, _ := flags.GetString("event-file")

	var req domain.InvocationRequest

	if eventFile != "" {
		loaded, err := event.LoadRequest(eventFile)
		if err != nil {
			return domain.InvocationRequest{}, fmt.Errorf("failed to load event file: %w", err)
		}
		req = loaded
	}

	if flags.Changed("previous") {
		req.UsePreviousMonth = previous
	}
	if flags.Changed("year") {
		req.Year = year
	}
	if flags.Changed("month") {
		req.Month = month
	}

	switch {
	case flags.Changed("current"):
		req.UseCurrentMonth = &current
	case flags.Changed("previous") || flags.Changed("year") || flags.Changed("month"):
		off := false
		req.UseCurrentMonth = &off
	}

	return req, nil
}

func run(ctx context.Context, out io.Writer, req domain.InvocationRequest, dryRun bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []app.Option{app.WithOutput(out)}
	if dryRun {
		opts = append(opts, app.WithSink(config.SinkConsole))
	}

	container, err := app.BuildContainer(opts...)
	if err != nil {
		return err
	}

	var outcome domain.Outcome
	if err := container.Invoke(func(notifier *domain.Notifier, logger *zap.Logger) {
		defer func() { _ = logger.Sync() }()

		ctx = observability.WithLogger(ctx, logger)
		ctx = observability.WithTraceID(ctx, observability.GenerateTraceID())
		ctx = observability.WithRequestID(ctx, observability.GenerateRequestID())

		outcome = notifier.Notify(ctx, req)
	}); err != nil {
		return fmt.Errorf("failed to run notifier: %w", err)
	}

	return PrintOutcome(out, outcome)
}

// PrintOutcome writes the outcome and returns an error for any non-200 status.
func PrintOutcome(out io.Writer, outcome domain.Outcome) error {
	if outcome.StatusCode == http.StatusOK {
		pterm.Success.WithWriter(out).Println(outcome.Body.Message)
		return nil
	}

	pterm.Error.WithWriter(out).Printfln("%d %s", outcome.StatusCode, outcome.Body.Error)
	return fmt.Errorf("notification failed with status %d", outcome.StatusCode)
}

// Execute runs the notify command and exits non-zero on failure.
func Execute() {
	if err := NewCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
