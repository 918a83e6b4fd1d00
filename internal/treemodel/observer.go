package treemodel

// Observer receives tree change notifications. Mutations performed inside a
// batch are bracketed by exactly one OnBeginBatch/OnEndBatch pair no matter
// how many mutations or nested batch spans occur.
//
// Callbacks run synchronously on the mutating call; observers must not
// mutate the tree reentrantly.
type Observer interface {
	OnBeginBatch(m *TreeModel)
	OnEndBatch(m *TreeModel)

	OnNodeAdded(parent Node, index int)
	OnNodeRemoved(parent Node, index int)
	OnNodeChanged(n Node)
}

// StoragePolicy answers which external entities protect an origin's stored
// data from deletion.
type StoragePolicy interface {
	ProtectingEntitiesForOrigin(origin string) []string
}
