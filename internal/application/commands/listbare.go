package commands

import (
	"context"
	"fmt"

	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// ListBareCommand lists the unclassified PDFs in one working folder and
// installs the fresh display index on the session.
type ListBareCommand struct {
	session *application.Session
	scanner ports.LibraryScanner
	Folder  string
}

// NewListBareCommand creates a new ListBareCommand.
func NewListBareCommand(session *application.Session, scanner ports.LibraryScanner, folder string) *ListBareCommand {
	return &ListBareCommand{session: session, scanner: scanner, Folder: folder}
}

// Validate checks if the listing request is valid.
func (c *ListBareCommand) Validate() error {
	return application.ValidateRequired("folder", c.Folder)
}

// Execute runs the listing. The returned index is the row-to-filename
// contract used by subsequent prefix and rename operations.
func (c *ListBareCommand) Execute(ctx context.Context) (*domain.BareIndex, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	index, err := c.scanner.ListBare(c.Folder)
	if err != nil {
		return nil, fmt.Errorf("listing bare files: %w", err)
	}
	c.session.SetBareIndex(c.Folder, index)
	return index, nil
}
