package domain

import "testing"

func TestBuildTokTreeChain(t *testing.T) {
	entries := []TokEntry{
		{Code: "012", Label: "grandchild"},
		{Code: "0", Label: "root"},
		{Code: "01", Label: "child"},
	}

	roots := BuildTokTree(entries)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}

	root := roots[0]
	if root.Code != "0" || root.Depth() != 0 {
		t.Errorf("root = %q depth %d", root.Code, root.Depth())
	}
	if len(root.Children) != 1 || root.Children[0].Code != "01" {
		t.Fatalf("expected child 01 under 0, got %+v", root.Children)
	}
	child := root.Children[0]
	if child.Depth() != 1 || child.Parent != root {
		t.Errorf("child depth %d, parent %v", child.Depth(), child.Parent)
	}
	if len(child.Children) != 1 || child.Children[0].Code != "012" {
		t.Fatalf("expected grandchild 012 under 01, got %+v", child.Children)
	}
	if child.Children[0].Depth() != 2 {
		t.Errorf("grandchild depth = %d", child.Children[0].Depth())
	}
}

func TestBuildTokTreeOrphanBecomesRoot(t *testing.T) {
	// "01" has no "0" entry, so it roots its own subtree.
	entries := []TokEntry{
		{Code: "01", Label: "orphan"},
		{Code: "012", Label: "child of orphan"},
		{Code: "A", Label: "letters"},
	}

	roots := BuildTokTree(entries)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].Code != "01" {
		t.Errorf("first root = %q, want 01", roots[0].Code)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].Code != "012" {
		t.Errorf("012 should attach under orphan 01: %+v", roots[0].Children)
	}
	if roots[1].Code != "A" {
		t.Errorf("second root = %q, want A", roots[1].Code)
	}
}

func TestBuildTokTreeDoesNotMutateInput(t *testing.T) {
	entries := []TokEntry{
		{Code: "B", Label: "second"},
		{Code: "A", Label: "first"},
	}
	BuildTokTree(entries)
	if entries[0].Code != "B" {
		t.Errorf("input slice was reordered: %+v", entries)
	}
}

func TestFlattenTree(t *testing.T) {
	roots := BuildTokTree([]TokEntry{
		{Code: "0"}, {Code: "01"}, {Code: "02"}, {Code: "011"}, {Code: "1"},
	})

	flat := FlattenTree(roots)
	var codes []string
	for _, node := range flat {
		codes = append(codes, node.Code)
	}
	want := []string{"0", "01", "011", "02", "1"}
	if len(codes) != len(want) {
		t.Fatalf("flattened %d nodes, want %d", len(codes), len(want))
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, codes[i], want[i])
		}
	}
}

func TestSortEntries(t *testing.T) {
	entries := []TokEntry{
		{Code: "Z"}, {Code: "A"}, {Code: "AB"},
	}
	SortEntries(entries)
	if entries[0].Code != "A" || entries[1].Code != "AB" || entries[2].Code != "Z" {
		t.Errorf("sorted order wrong: %+v", entries)
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"AB", true},
		{"a1", true},
		{"0", true},
		{"", false},
		{"A B", false},
		{"A-1", false},
		{"Ä", false},
	}

	for _, tt := range tests {
		if got := ValidCode(tt.code); got != tt.want {
			t.Errorf("ValidCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestFindEntry(t *testing.T) {
	entries := []TokEntry{{Code: "A"}, {Code: "B"}}
	if got := FindEntry(entries, "B"); got != 1 {
		t.Errorf("FindEntry(B) = %d, want 1", got)
	}
	if got := FindEntry(entries, "C"); got != -1 {
		t.Errorf("FindEntry(C) = %d, want -1", got)
	}
}
