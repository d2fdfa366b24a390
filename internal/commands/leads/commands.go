package leadscmd

import (
	"context"

	"github.com/goliatone/go-funnel/internal/commands"
	"github.com/goliatone/go-funnel/internal/leads"
	"github.com/goliatone/go-funnel/pkg/interfaces"
)

const captureLeadMessageType = "funnel.leads.capture"

// CaptureLeadCommand records an inbound lead from a public page.
type CaptureLeadCommand struct {
	Submission leads.Submission `json:"submission"`
}

// Type implements command.Message.
func (CaptureLeadCommand) Type() string { return captureLeadMessageType }

// Validate satisfies command.Message.
func (c CaptureLeadCommand) Validate() error {
	return c.Submission.Validate()
}

// NewCaptureLeadHandler wires lead capture into the command runtime.
func NewCaptureLeadHandler(service leads.Service, logger interfaces.Logger) *commands.Handler[CaptureLeadCommand] {
	return commands.NewHandler(
		func(ctx context.Context, msg CaptureLeadCommand) error {
			_, err := service.Capture(ctx, msg.Submission)
			return err
		},
		commands.WithLogger[CaptureLeadCommand](logger),
		commands.WithOperation[CaptureLeadCommand]("leads.capture"),
	)
}
