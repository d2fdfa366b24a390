package funnelscmd

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-funnel/internal/commands"
	"github.com/goliatone/go-funnel/internal/documents"
	"github.com/goliatone/go-funnel/internal/funnels"
	"github.com/goliatone/go-funnel/internal/verticals"
	"github.com/goliatone/go-funnel/pkg/interfaces"
)

const (
	createFunnelMessageType  = "funnel.funnels.create"
	saveDocumentMessageType  = "funnel.funnels.save_document"
	publishFunnelMessageType = "funnel.funnels.publish"
)

func requireID(value any) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("must be a non-nil UUID")
	}
	return nil
}

// CreateFunnelCommand seeds a new funnel from a vertical template.
type CreateFunnelCommand struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Vertical  string `json:"vertical"`
}

// Type implements command.Message.
func (CreateFunnelCommand) Type() string { return createFunnelMessageType }

// Validate satisfies command.Message.
func (c CreateFunnelCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ProjectID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

// NewCreateFunnelHandler wires funnel creation into the command runtime.
func NewCreateFunnelHandler(service funnels.Service, logger interfaces.Logger) *commands.Handler[CreateFunnelCommand] {
	return commands.NewHandler(
		func(ctx context.Context, msg CreateFunnelCommand) error {
			_, err := service.Create(ctx, funnels.CreateInput{
				ProjectID: msg.ProjectID,
				Name:      msg.Name,
				Vertical:  verticals.Parse(msg.Vertical),
			})
			return err
		},
		commands.WithLogger[CreateFunnelCommand](logger),
		commands.WithOperation[CreateFunnelCommand]("funnels.create"),
	)
}

// SaveDocumentCommand replaces a funnel's editor document.
type SaveDocumentCommand struct {
	FunnelID uuid.UUID          `json:"funnel_id"`
	Document documents.Document `json:"document"`
}

// Type implements command.Message.
func (SaveDocumentCommand) Type() string { return saveDocumentMessageType }

// Validate satisfies command.Message.
func (c SaveDocumentCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FunnelID, validation.By(requireID)),
	)
}

// NewSaveDocumentHandler wires document persistence into the command runtime.
func NewSaveDocumentHandler(service funnels.Service, logger interfaces.Logger) *commands.Handler[SaveDocumentCommand] {
	return commands.NewHandler(
		func(ctx context.Context, msg SaveDocumentCommand) error {
			_, err := service.UpdateDocument(ctx, msg.FunnelID, msg.Document)
			return err
		},
		commands.WithLogger[SaveDocumentCommand](logger),
		commands.WithOperation[SaveDocumentCommand]("funnels.save_document"),
	)
}

// PublishFunnelCommand renders and publishes a funnel's page document.
type PublishFunnelCommand struct {
	FunnelID uuid.UUID `json:"funnel_id"`
}

// Type implements command.Message.
func (PublishFunnelCommand) Type() string { return publishFunnelMessageType }

// Validate satisfies command.Message.
func (c PublishFunnelCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FunnelID, validation.By(requireID)),
	)
}

// NewPublishFunnelHandler wires publishing into the command runtime.
func NewPublishFunnelHandler(service funnels.Service, logger interfaces.Logger) *commands.Handler[PublishFunnelCommand] {
	return commands.NewHandler(
		func(ctx context.Context, msg PublishFunnelCommand) error {
			_, err := service.Publish(ctx, msg.FunnelID)
			return err
		},
		commands.WithLogger[PublishFunnelCommand](logger),
		commands.WithOperation[PublishFunnelCommand]("funnels.publish"),
	)
}
