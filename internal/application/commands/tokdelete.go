package commands

import (
	"context"
	"fmt"

	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// TokDeleteCommand removes a classification entry and persists the list.
type TokDeleteCommand struct {
	store ports.TokStore
	Code  string
}

// NewTokDeleteCommand creates a new TokDeleteCommand.
func NewTokDeleteCommand(store ports.TokStore, code string) *TokDeleteCommand {
	return &TokDeleteCommand{store: store, Code: code}
}

// Validate checks if the delete request is valid.
func (c *TokDeleteCommand) Validate() error {
	return application.ValidateCode("code", c.Code)
}

// Execute runs the delete command.
func (c *TokDeleteCommand) Execute(ctx context.Context) (*TokResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	pos := domain.FindEntry(entries, c.Code)
	if pos < 0 {
		return nil, &application.NotFoundError{Path: "entry " + c.Code}
	}
	deleted := entries[pos]
	entries = append(entries[:pos], entries[pos+1:]...)

	backup, err := c.store.Save(entries)
	if err != nil {
		return nil, err
	}
	return &TokResult{
		Entry:      deleted,
		BackupName: backup,
		Message:    fmt.Sprintf("Deleted %s - %s", deleted.Code, deleted.Label),
	}, nil
}
