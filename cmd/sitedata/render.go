package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/SiteData/internal/treemodel"
)

// NodeSnapshot is a JSON-encodable copy of one tree node.
type NodeSnapshot struct {
	Title    string          `json:"title"`
	Type     string          `json:"type"`
	Children []*NodeSnapshot `json:"children,omitempty"`
}

func snapshot(n treemodel.Node) *NodeSnapshot {
	s := &NodeSnapshot{
		Title: n.Title(),
		Type:  n.Detail().NodeType().String(),
	}
	for _, child := range n.Children() {
		s.Children = append(s.Children, snapshot(child))
	}
	return s
}

func renderText(w io.Writer, n treemodel.Node, depth int) {
	if depth > 0 {
		// The root itself has no visible row.
		indent := strings.Repeat("  ", depth-1)
		fmt.Fprintf(w, "%s%s [%s]\n", indent, n.Title(), n.Detail().NodeType())
	}
	for _, child := range n.Children() {
		renderText(w, child, depth+1)
	}
}
