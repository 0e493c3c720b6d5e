package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// TokResult contains the result of a classification-entry mutation.
type TokResult struct {
	Entry      domain.TokEntry
	BackupName string
	Message    string
}

// TokAddCommand adds a new classification entry and persists the list.
type TokAddCommand struct {
	store ports.TokStore
	Code  string
	Label string
}

// NewTokAddCommand creates a new TokAddCommand.
func NewTokAddCommand(store ports.TokStore, code, label string) *TokAddCommand {
	return &TokAddCommand{store: store, Code: code, Label: label}
}

// Validate checks if the new entry is valid.
func (c *TokAddCommand) Validate() error {
	if err := application.ValidateCode("code", c.Code); err != nil {
		return err
	}
	return application.ValidateRequired("label", c.Label)
}

// Execute runs the add command.
func (c *TokAddCommand) Execute(ctx context.Context) (*TokResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.store.Load()
	if err != nil && !errors.Is(err, application.ErrNotFound) {
		return nil, err
	}

	if err := application.ValidateUniqueCode("code", c.Code, "", entries); err != nil {
		return nil, err
	}

	entry := domain.TokEntry{Code: c.Code, Label: strings.TrimSpace(c.Label)}
	entries = append(entries, entry)

	backup, err := c.store.Save(entries)
	if err != nil {
		return nil, err
	}
	return &TokResult{
		Entry:      entry,
		BackupName: backup,
		Message:    fmt.Sprintf("Added %s - %s", entry.Code, entry.Label),
	}, nil
}
