package domain

import (
	"slices"
	"strings"
)

// TokEntry is one flat classification entry as persisted: a short
// alphanumeric code (no separators) and a human label. The flat list is the
// authoritative form; the tree is always derived from it.
type TokEntry struct {
	Code  string `json:"prefix"`
	Label string `json:"string"`
}

// TokNode is the derived in-memory tree view over the flat entry set. Never
// persisted and never edited in place; rebuilt from the entries after every
// mutation.
type TokNode struct {
	Code     string
	Label    string
	Parent   *TokNode
	Children []*TokNode
}

// Depth returns how many ancestors the node has.
func (n *TokNode) Depth() int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// Walk visits the node and its descendants depth-first.
func (n *TokNode) Walk(visit func(*TokNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// SortEntries orders entries by code ascending, the persisted order.
func SortEntries(entries []TokEntry) {
	slices.SortFunc(entries, func(a, b TokEntry) int {
		return strings.Compare(a.Code, b.Code)
	})
}

// BuildTokTree reconstructs the classification forest from the flat entry
// list. Entries are processed sorted by code so any potential parent is
// placed before its children: a code attaches under the node whose code is
// itself minus the last character, when such a node exists, and becomes a
// root otherwise. Orphan codes (no shorter entry) are valid roots.
func BuildTokTree(entries []TokEntry) []*TokNode {
	sorted := make([]TokEntry, len(entries))
	copy(sorted, entries)
	SortEntries(sorted)

	byCode := make(map[string]*TokNode, len(sorted))
	var roots []*TokNode

	for _, entry := range sorted {
		node := &TokNode{Code: entry.Code, Label: entry.Label}

		var parent *TokNode
		if len(entry.Code) > 1 {
			parent = byCode[entry.Code[:len(entry.Code)-1]]
		}
		if parent != nil {
			node.Parent = parent
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
		byCode[entry.Code] = node
	}
	return roots
}

// FlattenTree returns the forest in depth-first order, for list rendering.
func FlattenTree(roots []*TokNode) []*TokNode {
	var flat []*TokNode
	for _, root := range roots {
		root.Walk(func(n *TokNode) { flat = append(flat, n) })
	}
	return flat
}

// ValidCode reports whether a code is non-empty and strictly alphanumeric.
func ValidCode(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !alnum {
			return false
		}
	}
	return true
}

// FindEntry returns the index of the entry with the given code, or -1.
func FindEntry(entries []TokEntry, code string) int {
	for i, entry := range entries {
		if entry.Code == code {
			return i
		}
	}
	return -1
}
