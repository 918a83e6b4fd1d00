package treemodel

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SiteData/internal/browsing"
	"github.com/GriffinCanCode/SiteData/internal/logging"
	"github.com/GriffinCanCode/SiteData/internal/monitoring"
)

// Options configures a TreeModel.
type Options struct {
	// Policy is the optional collaborator consulted by
	// ProtectingEntities. Nil means no protection anywhere.
	Policy StoragePolicy

	// GroupByCookieSource groups cookies under the URL that set them
	// instead of under their domain attribute.
	GroupByCookieSource bool

	Logger  *logging.Logger
	Metrics *monitoring.Metrics
}

// TreeModel owns the tree and orchestrates population, filtering and
// deletion. All operations are synchronous and run to completion; the model
// performs no locking and must be driven from a single goroutine.
type TreeModel struct {
	id        string
	root      *rootNode
	container *browsing.Container
	policy    StoragePolicy

	groupByCookieSource bool

	// batchDepth nests batch spans; observers are notified only on the
	// 0->1 and 1->0 transitions.
	batchDepth int

	observers []Observer

	log     *logging.Logger
	metrics *monitoring.Metrics
}

// New builds a model over container and drives initial population through
// the container's Init, which reuses the filtering code path with an empty
// filter.
func New(container *browsing.Container, opts Options) *TreeModel {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}

	m := &TreeModel{
		id:                  uuid.New().String(),
		container:           container,
		policy:              opts.Policy,
		groupByCookieSource: opts.GroupByCookieSource,
		metrics:             opts.Metrics,
	}
	m.log = &logging.Logger{Logger: log.Named("treemodel").With(zap.String("model_id", m.id))}
	m.root = newRootNode(m)

	container.Init(m)
	return m
}

// ID returns the model's instance id, carried in its log fields.
func (m *TreeModel) ID() string { return m.id }

// Root returns the root node.
func (m *TreeModel) Root() Node { return m.root }

// Container returns the backing data container.
func (m *TreeModel) Container() *browsing.Container { return m.container }

// AddObserver registers an observer for batch and node notifications.
func (m *TreeModel) AddObserver(o Observer) {
	m.observers = append(m.observers, o)
}

// RemoveObserver unregisters a previously added observer.
func (m *TreeModel) RemoveObserver(o Observer) {
	for i, existing := range m.observers {
		if existing == o {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// Add inserts child under parent at index and notifies observers.
func (m *TreeModel) Add(parent, child Node, index int) {
	parent.insertChild(child, index)
	child.attach(parent)

	if m.metrics != nil {
		m.metrics.NodesAdded.WithLabelValues(child.Detail().NodeType().String()).Inc()
		m.metrics.TreeNodes.Inc()
	}
	for _, o := range m.observers {
		o.OnNodeAdded(parent, index)
	}
}

// Remove detaches the child at index under parent, with its whole subtree,
// and notifies observers. The detached node is returned.
func (m *TreeModel) Remove(parent Node, index int) Node {
	child := parent.removeChild(index)
	child.attach(nil)

	if m.metrics != nil {
		m.metrics.NodesRemoved.WithLabelValues(child.Detail().NodeType().String()).Inc()
		m.metrics.TreeNodes.Sub(float64(subtreeSize(child)))
	}
	for _, o := range m.observers {
		o.OnNodeRemoved(parent, index)
	}
	return child
}

// DeleteAllStoredObjects deletes every stored object in the tree through the
// per-category deleters, empties the tree, and reports it all as one batch.
// Afterwards the root has no children and every backing collection is empty.
func (m *TreeModel) DeleteAllStoredObjects() {
	m.notifyBeginBatch()

	m.root.DeleteStoredObjects()
	for i := len(m.root.children) - 1; i >= 0; i-- {
		m.Remove(m.root, i)
	}

	m.log.Info("deleted all stored objects")
	m.notifyNodeChanged(m.root)
	m.notifyEndBatch()
}

// DeleteNode deletes one node: its stored objects are deleted, the node is
// removed from its parent, and ancestors left childless are pruned
// recursively, never including the root. Deleting the root is a no-op.
//
// DeleteNode does not open a batch; callers wrap multi-step sequences in
// their own notifier when atomic notification is required.
func (m *TreeModel) DeleteNode(n Node) {
	if n == Node(m.root) {
		return
	}

	n.DeleteStoredObjects()

	parent := n.Parent()
	if parent == nil {
		return
	}
	idx := childIndex(parent, n)
	if idx < 0 {
		panic("treemodel: node not found under its parent: " + n.Detail().NodeType().String())
	}
	m.Remove(parent, idx)

	if len(parent.Children()) == 0 {
		m.DeleteNode(parent)
	}
}

// UpdateSearchResults rebuilds the tree to show only hosts whose display
// title contains filter (case-sensitive). An empty filter restores the full
// tree. This is a full teardown and rebuild; the raw data survives in the
// container.
func (m *TreeModel) UpdateSearchResults(filter string) {
	notifier := m.newBatchNotifier(m.root)
	defer notifier.Done()

	notifier.Start()
	for i := len(m.root.children) - 1; i >= 0; i-- {
		m.Remove(m.root, i)
	}

	m.log.Info("rebuilding search results", zap.String("filter", filter))

	m.populateCookiesWithFilter(notifier, filter)
	m.populateDatabasesWithFilter(notifier, filter)
	m.populateLocalStorageWithFilter(notifier, filter)
	m.populateSessionStorageWithFilter(notifier, filter)
	m.populateAppCachesWithFilter(notifier, filter)
	m.populateIndexedDBsWithFilter(notifier, filter)
	m.populateFileSystemsWithFilter(notifier, filter)
	m.populateQuotaWithFilter(notifier, filter)
	m.populateServerBoundCertsWithFilter(notifier, filter)
	m.populateFlashLSOWithFilter(notifier, filter)
}

// ProtectingEntities queries the policy collaborator for the entities
// protecting a node's origin. Nil when no policy is registered, when the
// node's type cannot be protected, or as the policy's answer.
func (m *TreeModel) ProtectingEntities(n Node) []string {
	if m.policy == nil {
		return nil
	}

	d := n.Detail()
	if !typeIsProtected(d.NodeType()) {
		return nil
	}
	return m.policy.ProtectingEntitiesForOrigin(protectedOrigin(d))
}

func (m *TreeModel) notifyBeginBatch() {
	// Only the outermost span notifies.
	if m.batchDepth == 0 {
		for _, o := range m.observers {
			o.OnBeginBatch(m)
		}
	}
	m.batchDepth++
}

func (m *TreeModel) notifyEndBatch() {
	m.batchDepth--
	if m.batchDepth == 0 {
		if m.metrics != nil {
			m.metrics.BatchesTotal.Inc()
		}
		for _, o := range m.observers {
			o.OnEndBatch(m)
		}
	}
}

func (m *TreeModel) notifyNodeChanged(n Node) {
	for _, o := range m.observers {
		o.OnNodeChanged(n)
	}
}

func (m *TreeModel) recordDeleted(t NodeType) {
	if m.metrics != nil {
		m.metrics.RecordsDeleted.WithLabelValues(t.String()).Inc()
	}
	m.log.Debug("erased backing record", zap.Stringer("category", t))
}

// subtreeSize counts n and all its descendants.
func subtreeSize(n Node) int {
	size := 1
	for _, child := range n.Children() {
		size += subtreeSize(child)
	}
	return size
}
