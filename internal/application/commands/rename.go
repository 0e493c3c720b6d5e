package commands

import (
	"context"
	"fmt"
	"strings"

	"tokdex/internal/application"
	"tokdex/internal/ports"
)

// RenameResult contains the result of a rename operation.
type RenameResult struct {
	OldName string
	NewName string
	Message string
}

// RenameCommand renames the bare file at a display row outright. Like
// ApplyPrefixCommand it keeps the session's bare index in step with the
// filesystem.
type RenameCommand struct {
	session      *application.Session
	renamer      ports.FileRenamer
	DisplayIndex int
	NewName      string
}

// NewRenameCommand creates a new RenameCommand.
func NewRenameCommand(session *application.Session, renamer ports.FileRenamer, displayIndex int, newName string) *RenameCommand {
	return &RenameCommand{
		session:      session,
		renamer:      renamer,
		DisplayIndex: displayIndex,
		NewName:      newName,
	}
}

// Validate checks if the rename operation is valid.
func (c *RenameCommand) Validate() error {
	if c.DisplayIndex < 1 {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("display index %d is out of range", c.DisplayIndex),
		}
	}
	return application.ValidateRequired("name", c.NewName)
}

// Execute runs the rename command.
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	index, folder := c.session.BareIndex()
	if index == nil {
		return nil, fmt.Errorf("no bare file listing loaded; list the folder first")
	}
	oldName, err := index.Lookup(c.DisplayIndex)
	if err != nil {
		return nil, err
	}

	newName := strings.TrimSpace(c.NewName)
	if oldName == newName {
		return &RenameResult{OldName: oldName, NewName: newName, Message: "name unchanged"}, nil
	}

	if err := c.renamer.RenameTo(folder, oldName, newName); err != nil {
		return nil, err
	}
	if err := index.Rename(c.DisplayIndex, newName); err != nil {
		return nil, err
	}

	return &RenameResult{
		OldName: oldName,
		NewName: newName,
		Message: fmt.Sprintf("Renamed %s to %s", oldName, newName),
	}, nil
}
