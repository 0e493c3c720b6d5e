package commands

import (
	"context"
	"errors"
	"testing"

	"tokdex/internal/application"
)

func TestRenameCommand(t *testing.T) {
	session := bareSession("/library/inbox", "draft.pdf")
	renamer := &fakeRenamer{}

	cmd := NewRenameCommand(session, renamer, 1, "quarterly statement.pdf")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.NewName != "quarterly statement.pdf" {
		t.Errorf("NewName = %q", result.NewName)
	}
	if len(renamer.calls) != 1 {
		t.Fatalf("expected 1 rename, got %d", len(renamer.calls))
	}

	index, _ := session.BareIndex()
	name, _ := index.Lookup(1)
	if name != "quarterly statement.pdf" {
		t.Errorf("index row 1 = %q after rename", name)
	}
}

func TestRenameCommandUnchangedName(t *testing.T) {
	session := bareSession("/library/inbox", "same.pdf")
	renamer := &fakeRenamer{}

	cmd := NewRenameCommand(session, renamer, 1, "same.pdf")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Message != "name unchanged" {
		t.Errorf("Message = %q", result.Message)
	}
	if len(renamer.calls) != 0 {
		t.Errorf("renamer should not be called for an unchanged name")
	}
}

func TestRenameCommandValidation(t *testing.T) {
	session := bareSession("/library/inbox", "a.pdf")

	tests := []struct {
		name    string
		index   int
		newName string
	}{
		{name: "zero index", index: 0, newName: "b.pdf"},
		{name: "empty name", index: 1, newName: ""},
		{name: "whitespace name", index: 1, newName: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRenameCommand(session, &fakeRenamer{}, tt.index, tt.newName)
			_, err := cmd.Execute(context.Background())
			var valErr *application.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestRenameCommandConflictKeepsIndex(t *testing.T) {
	session := bareSession("/library/inbox", "a.pdf")
	renamer := &fakeRenamer{err: &application.ConflictError{Name: "b.pdf"}}

	cmd := NewRenameCommand(session, renamer, 1, "b.pdf")
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	index, _ := session.BareIndex()
	name, _ := index.Lookup(1)
	if name != "a.pdf" {
		t.Errorf("index row 1 = %q after conflict", name)
	}
}
