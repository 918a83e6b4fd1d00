package treemodel

// batchNotifier coalesces a span of mutations into one observer batch. Use
// with defer:
//
//	n := m.newBatchNotifier(m.root)
//	defer n.Done()
//	...
//	n.Start() // before the first mutation
//
// Start is idempotent per notifier; nested notifiers share the model's batch
// counter so observers still see a single begin/end pair.
type batchNotifier struct {
	model   *TreeModel
	node    Node
	started bool
}

func (m *TreeModel) newBatchNotifier(node Node) *batchNotifier {
	return &batchNotifier{model: m, node: node}
}

// Start opens the batch on first call; later calls are no-ops.
func (n *batchNotifier) Start() {
	if !n.started {
		n.model.notifyBeginBatch()
		n.started = true
	}
}

// Done closes the span. If the batch was started, the target node is
// reported changed and the model's batch depth unwound.
func (n *batchNotifier) Done() {
	if n.started {
		n.model.notifyNodeChanged(n.node)
		n.model.notifyEndBatch()
	}
}
