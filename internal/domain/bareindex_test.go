package domain

import (
	"testing"
	"time"
)

func bareFixture() *BareIndex {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewBareIndex([]BareFile{
		{Name: "oldest.pdf", ModifiedAt: base.Add(-2 * time.Hour)},
		{Name: "newest.pdf", ModifiedAt: base},
		{Name: "middle.pdf", ModifiedAt: base.Add(-time.Hour)},
	})
}

func TestBareIndexOrdering(t *testing.T) {
	idx := bareFixture()
	if idx.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", idx.Len())
	}

	want := []string{"newest.pdf", "middle.pdf", "oldest.pdf"}
	for i, name := range want {
		got, err := idx.Lookup(i + 1)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", i+1, err)
		}
		if got != name {
			t.Errorf("Lookup(%d) = %q, want %q", i+1, got, name)
		}
	}
}

func TestBareIndexLookupOutOfRange(t *testing.T) {
	idx := bareFixture()
	for _, displayIndex := range []int{0, -1, 4} {
		if _, err := idx.Lookup(displayIndex); err == nil {
			t.Errorf("Lookup(%d) should fail", displayIndex)
		}
	}
}

func TestBareIndexRename(t *testing.T) {
	idx := bareFixture()
	if err := idx.Rename(1, "A B newest.pdf"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, err := idx.Lookup(1)
	if err != nil {
		t.Fatalf("Lookup after rename: %v", err)
	}
	if got != "A B newest.pdf" {
		t.Errorf("Lookup(1) = %q after rename", got)
	}

	if err := idx.Rename(9, "x.pdf"); err == nil {
		t.Error("Rename out of range should fail")
	}
}

func TestBareIndexInvalidate(t *testing.T) {
	idx := bareFixture()
	if !idx.Valid() {
		t.Fatal("fresh index should be valid")
	}
	idx.Invalidate()
	if idx.Valid() {
		t.Error("index should be stale after Invalidate")
	}
	if _, err := idx.Lookup(1); err == nil {
		t.Error("Lookup on a stale index should fail")
	}
	if err := idx.Rename(1, "x.pdf"); err == nil {
		t.Error("Rename on a stale index should fail")
	}
}

func TestBareIndexFilesIsACopy(t *testing.T) {
	idx := bareFixture()
	files := idx.Files()
	files[0].Name = "mutated.pdf"
	got, _ := idx.Lookup(1)
	if got == "mutated.pdf" {
		t.Error("Files() must not expose internal state")
	}
}
