package commands

import (
	"context"
	"errors"
	"testing"

	"tokdex/internal/application"
)

func TestApplyPrefixCommand(t *testing.T) {
	session := bareSession("/library/inbox", "newest.pdf", "older.pdf")
	renamer := &fakeRenamer{}

	cmd := NewApplyPrefixCommand(session, renamer, 1, "AB")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.OldName != "newest.pdf" {
		t.Errorf("OldName = %q", result.OldName)
	}
	if result.NewName != "A B newest.pdf" {
		t.Errorf("NewName = %q", result.NewName)
	}
	if len(renamer.calls) != 1 {
		t.Fatalf("expected 1 rename, got %d", len(renamer.calls))
	}
	call := renamer.calls[0]
	if call.folder != "/library/inbox" || call.oldName != "newest.pdf" || call.newName != "A B newest.pdf" {
		t.Errorf("rename call = %+v", call)
	}

	// The session index must track the new name for subsequent row lookups.
	index, _ := session.BareIndex()
	name, err := index.Lookup(1)
	if err != nil {
		t.Fatalf("Lookup after prefix: %v", err)
	}
	if name != "A B newest.pdf" {
		t.Errorf("index row 1 = %q after prefix", name)
	}
}

func TestApplyPrefixCommandValidation(t *testing.T) {
	session := bareSession("/library/inbox", "a.pdf")

	tests := []struct {
		name  string
		index int
		code  string
	}{
		{name: "zero index", index: 0, code: "AB"},
		{name: "negative index", index: -3, code: "AB"},
		{name: "empty code", index: 1, code: ""},
		{name: "code with space", index: 1, code: "A B"},
		{name: "code with punctuation", index: 1, code: "A-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewApplyPrefixCommand(session, &fakeRenamer{}, tt.index, tt.code)
			_, err := cmd.Execute(context.Background())
			var valErr *application.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestApplyPrefixCommandNoListing(t *testing.T) {
	session := application.NewSession()
	cmd := NewApplyPrefixCommand(session, &fakeRenamer{}, 1, "AB")
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Error("expected an error without a loaded listing")
	}
}

func TestApplyPrefixCommandIndexOutOfRange(t *testing.T) {
	session := bareSession("/library/inbox", "a.pdf")
	cmd := NewApplyPrefixCommand(session, &fakeRenamer{}, 5, "AB")
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Error("expected an error for an out-of-range row")
	}
}

func TestApplyPrefixCommandRenamerFailure(t *testing.T) {
	session := bareSession("/library/inbox", "a.pdf")
	renamer := &fakeRenamer{err: &application.ConflictError{Name: "A B a.pdf"}}

	cmd := NewApplyPrefixCommand(session, renamer, 1, "AB")
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// The index must still hold the old name after a failed rename.
	index, _ := session.BareIndex()
	name, _ := index.Lookup(1)
	if name != "a.pdf" {
		t.Errorf("index row 1 = %q after failed rename", name)
	}
}
