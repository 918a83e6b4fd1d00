package treemodel

import "sort"

// Node is one element of the tree. A node owns its ordered children
// exclusively and keeps a non-owning back-reference to its parent for
// navigation only. The variant set is closed: every concrete type lives in
// this package.
type Node interface {
	// Title returns the display title. Siblings other than host rows are
	// ordered by it.
	Title() string

	// Parent returns the parent node, or nil for the root and for
	// detached nodes.
	Parent() Node

	// Children returns the ordered child list. Callers must not mutate
	// it; all mutation goes through the model.
	Children() []Node

	// Detail returns the node's tagged payload. Exactly one tag is
	// populated per variant.
	Detail() Detail

	// DeleteStoredObjects deletes the underlying stored data this
	// subtree represents. The default recurses post-order over children;
	// leaf variants additionally invoke the category's external deleter
	// and erase their backing record.
	DeleteStoredObjects()

	// Model resolves the owning model by walking parent links to the
	// root, or nil when the node is detached.
	Model() *TreeModel

	attach(parent Node)
	insertChild(n Node, index int)
	removeChild(index int) Node
}

// baseNode carries the tree mechanics shared by every variant.
type baseNode struct {
	title    string
	parent   Node
	children []Node
}

func (b *baseNode) Title() string    { return b.title }
func (b *baseNode) Parent() Node     { return b.parent }
func (b *baseNode) Children() []Node { return b.children }

func (b *baseNode) Model() *TreeModel {
	if b.parent != nil {
		return b.parent.Model()
	}
	return nil
}

// DeleteStoredObjects recurses over children. Variants with external state
// override this.
func (b *baseNode) DeleteStoredObjects() {
	for _, child := range b.children {
		child.DeleteStoredObjects()
	}
}

func (b *baseNode) attach(parent Node) { b.parent = parent }

func (b *baseNode) insertChild(n Node, index int) {
	b.children = append(b.children, nil)
	copy(b.children[index+1:], b.children[index:])
	b.children[index] = n
}

func (b *baseNode) removeChild(index int) Node {
	n := b.children[index]
	b.children = append(b.children[:index], b.children[index+1:]...)
	return n
}

// titleInsertIndex returns the position a new child belongs at to keep the
// parent's children sorted by title.
func titleInsertIndex(parent, child Node) int {
	kids := parent.Children()
	return sort.Search(len(kids), func(i int) bool {
		return kids[i].Title() >= child.Title()
	})
}

// childIndex returns the index of child under parent, or -1.
func childIndex(parent, child Node) int {
	for i, n := range parent.Children() {
		if n == child {
			return i
		}
	}
	return -1
}
