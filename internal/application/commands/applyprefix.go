package commands

import (
	"context"
	"fmt"

	"tokdex/internal/application"
	"tokdex/internal/ports"
)

// ApplyPrefixResult contains the result of applying a ToK prefix.
type ApplyPrefixResult struct {
	OldName string
	NewName string
	Message string
}

// ApplyPrefixCommand renames the bare file at a display row so its filename
// carries the given ToK code. The session's bare index resolves the row and
// is updated with the new name before the command returns, keeping
// row-keyed operations consistent with the filesystem.
type ApplyPrefixCommand struct {
	session      *application.Session
	renamer      ports.FileRenamer
	DisplayIndex int
	Code         string
}

// NewApplyPrefixCommand creates a new ApplyPrefixCommand.
func NewApplyPrefixCommand(session *application.Session, renamer ports.FileRenamer, displayIndex int, code string) *ApplyPrefixCommand {
	return &ApplyPrefixCommand{
		session:      session,
		renamer:      renamer,
		DisplayIndex: displayIndex,
		Code:         code,
	}
}

// Validate checks if the prefix operation is valid.
func (c *ApplyPrefixCommand) Validate() error {
	if c.DisplayIndex < 1 {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("display index %d is out of range", c.DisplayIndex),
		}
	}
	return application.ValidateCode("code", c.Code)
}

// Execute runs the prefix command.
func (c *ApplyPrefixCommand) Execute(ctx context.Context) (*ApplyPrefixResult, error) {
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

	newName, err := c.renamer.ApplyPrefix(folder, oldName, c.Code)
	if err != nil {
		return nil, err
	}
	if err := index.Rename(c.DisplayIndex, newName); err != nil {
		return nil, err
	}

	return &ApplyPrefixResult{
		OldName: oldName,
		NewName: newName,
		Message: fmt.Sprintf("Added prefix %q: %s", c.Code, newName),
	}, nil
}
