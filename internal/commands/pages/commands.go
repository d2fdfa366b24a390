package pagescmd

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-funnel/internal/commands"
	"github.com/goliatone/go-funnel/internal/funnels"
	"github.com/goliatone/go-funnel/internal/markdown"
	"github.com/goliatone/go-funnel/pkg/interfaces"
)

const importPageMessageType = "funnel.pages.import"

// ImportPageCommand parses a Markdown source into a page document and
// attaches it to a funnel.
type ImportPageCommand struct {
	FunnelID uuid.UUID `json:"funnel_id"`
	Source   []byte    `json:"source"`
}

// Type implements command.Message.
func (ImportPageCommand) Type() string { return importPageMessageType }

// Validate satisfies command.Message.
func (c ImportPageCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FunnelID, validation.By(func(value any) error {
			id, ok := value.(uuid.UUID)
			if !ok || id == uuid.Nil {
				return errors.New("must be a non-nil UUID")
			}
			return nil
		})),
		validation.Field(&c.Source, validation.Required),
	)
}

// NewImportPageHandler wires Markdown import into the command runtime.
func NewImportPageHandler(service funnels.Service, importer *markdown.Importer, logger interfaces.Logger) *commands.Handler[ImportPageCommand] {
	if importer == nil {
		importer = markdown.NewImporter(nil)
	}
	return commands.NewHandler(
		func(ctx context.Context, msg ImportPageCommand) error {
			doc, err := importer.Import(msg.Source)
			if err != nil {
				return err
			}
			_, err = service.UpdatePage(ctx, msg.FunnelID, *doc)
			return err
		},
		commands.WithLogger[ImportPageCommand](logger),
		commands.WithOperation[ImportPageCommand]("pages.import"),
	)
}
