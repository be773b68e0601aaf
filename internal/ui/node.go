package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching,
// bounds (position and size), and optional text for labels.
// An Anchored node takes its position and size from the stylesheet every frame;
// otherwise Bounds is used as set by the caller.
type Node struct {
	Type     string // "panel", "label", etc.
	Class    string // e.g. "row" for .row
	ID       string // e.g. "stats" for #stats
	Bounds   rl.Rectangle
	Text     string // for label-type nodes
	Anchored bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}
