package commands

import (
	"context"

	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// TokTreeCommand loads the flat classification list and reconstructs the
// display forest from it.
type TokTreeCommand struct {
	store ports.TokStore
}

// NewTokTreeCommand creates a new TokTreeCommand.
func NewTokTreeCommand(store ports.TokStore) *TokTreeCommand {
	return &TokTreeCommand{store: store}
}

// Execute loads the entries and builds the tree.
func (c *TokTreeCommand) Execute(ctx context.Context) ([]*domain.TokNode, error) {
	entries, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	return domain.BuildTokTree(entries), nil
}
