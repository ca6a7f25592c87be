// Package console renders notifications to a terminal instead of delivering
// them. It backs dry runs of the notify command and the console sink.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/observability"
)

// SinkName identifies the console sink in the registry.
const SinkName = "console"

// Ensure interface conformance.
var _ domain.NotificationSink = (*Printer)(nil)

// Printer writes notifications as a pterm table.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out, or stdout when out is nil.
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// Name returns the sink identifier.
func (p *Printer) Name() string {
	return SinkName
}

// Send prints the notification. It reports false only when writing fails.
func (p *Printer) Send(ctx context.Context, text string, payload domain.NotificationPayload) bool {
	if err := p.Print(text, payload); err != nil {
		observability.FromContext(ctx).Error("failed to print notification", observability.Error(err))
		return false
	}
	return true
}

// Print writes the headline, embed title, total and field table.
func (p *Printer) Print(text string, payload domain.NotificationPayload) error {
	if _, err := fmt.Fprintln(p.out, pterm.Bold.Sprint(text)); err != nil {
		return fmt.Errorf("write headline: %w", err)
	}
	if _, err := fmt.Fprintf(p.out, "%s\n%s\n\n",
		pterm.FgCyan.Sprint(payload.Title), payload.Description); err != nil {
		return fmt.Errorf("write title: %w", err)
	}

	data := pterm.TableData{{"Service", "Amount", "Inline"}}
	for _, field := range payload.Fields {
		data = append(data, []string{field.Name, field.Value, strconv.FormatBool(field.Inline)})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		WithWriter(p.out).
		Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	if _, err := fmt.Fprintln(p.out, pterm.FgGray.Sprint(payload.Footer.Text)); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}

	return nil
}
