package commands

import (
	"context"
	"fmt"
	"strings"

	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// TokUpdateCommand edits an existing classification entry. The entry is
// located by its code at edit-start, a stable identifier: labels are not
// unique and cannot address an entry.
type TokUpdateCommand struct {
	store    ports.TokStore
	OldCode  string
	NewCode  string
	NewLabel string
}

// NewTokUpdateCommand creates a new TokUpdateCommand.
func NewTokUpdateCommand(store ports.TokStore, oldCode, newCode, newLabel string) *TokUpdateCommand {
	return &TokUpdateCommand{store: store, OldCode: oldCode, NewCode: newCode, NewLabel: newLabel}
}

// Validate checks if the update is valid.
func (c *TokUpdateCommand) Validate() error {
	if err := application.ValidateCode("old code", c.OldCode); err != nil {
		return err
	}
	if err := application.ValidateCode("new code", c.NewCode); err != nil {
		return err
	}
	return application.ValidateRequired("label", c.NewLabel)
}

// Execute runs the update command.
func (c *TokUpdateCommand) Execute(ctx context.Context) (*TokResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	pos := domain.FindEntry(entries, c.OldCode)
	if pos < 0 {
		return nil, &application.NotFoundError{Path: "entry " + c.OldCode}
	}
	if err := application.ValidateUniqueCode("new code", c.NewCode, c.OldCode, entries); err != nil {
		return nil, err
	}

	entries[pos] = domain.TokEntry{Code: c.NewCode, Label: strings.TrimSpace(c.NewLabel)}

	backup, err := c.store.Save(entries)
	if err != nil {
		return nil, err
	}
	return &TokResult{
		Entry:      entries[pos],
		BackupName: backup,
		Message:    fmt.Sprintf("Updated %s -> %s - %s", c.OldCode, c.NewCode, entries[pos].Label),
	}, nil
}
