package treemodel

import (
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Populators convert the container's raw record collections into tree nodes,
// one populator per category. They share a contract: an empty collection is
// a no-op, otherwise the batch is opened and each record is grouped under
// the host derived from its origin, skipping records whose host display
// title does not contain the (case-sensitive) filter. Leaves are appended in
// collection order; only containers are title-sorted among siblings.

// PopulateCookies populates the cookie category with no filter.
func (m *TreeModel) PopulateCookies() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateCookiesWithFilter(n, "")
}

// PopulateDatabases populates the database category with no filter.
func (m *TreeModel) PopulateDatabases() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateDatabasesWithFilter(n, "")
}

// PopulateLocalStorage populates the local storage category with no filter.
func (m *TreeModel) PopulateLocalStorage() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateLocalStorageWithFilter(n, "")
}

// PopulateSessionStorage populates the session storage category with no
// filter.
func (m *TreeModel) PopulateSessionStorage() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateSessionStorageWithFilter(n, "")
}

// PopulateAppCaches populates the appcache category with no filter.
func (m *TreeModel) PopulateAppCaches() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateAppCachesWithFilter(n, "")
}

// PopulateIndexedDBs populates the indexed DB category with no filter.
func (m *TreeModel) PopulateIndexedDBs() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateIndexedDBsWithFilter(n, "")
}

// PopulateFileSystems populates the file system category with no filter.
func (m *TreeModel) PopulateFileSystems() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateFileSystemsWithFilter(n, "")
}

// PopulateQuota populates the quota category with no filter.
func (m *TreeModel) PopulateQuota() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateQuotaWithFilter(n, "")
}

// PopulateServerBoundCerts populates the server-bound cert category with no
// filter.
func (m *TreeModel) PopulateServerBoundCerts() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateServerBoundCertsWithFilter(n, "")
}

// PopulateFlashLSO populates the flash LSO category with no filter.
func (m *TreeModel) PopulateFlashLSO() {
	n := m.newBatchNotifier(m.root)
	defer n.Done()
	m.populateFlashLSOWithFilter(n, "")
}

// appendLeaf appends a leaf as the last child of its container, preserving
// collection order.
func (m *TreeModel) appendLeaf(parent, leaf Node) {
	m.Add(parent, leaf, len(parent.Children()))
}

// parseOrigin parses a record's origin string, dropping records no host row
// could be derived from.
func (m *TreeModel) parseOrigin(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		m.log.Warn("dropping record with unusable origin", zap.String("origin", s))
		return nil, false
	}
	return u, true
}

func matchesFilter(title, filter string) bool {
	return filter == "" || strings.Contains(title, filter)
}

func (m *TreeModel) observePopulate(t NodeType, start time.Time) {
	if m.metrics != nil {
		m.metrics.PopulateDuration.WithLabelValues(t.String()).Observe(time.Since(start).Seconds())
	}
}

func (m *TreeModel) populateCookiesWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.Cookies) == 0 {
		return
	}
	defer m.observePopulate(TypeCookies, time.Now())

	n.Start()
	for _, cookie := range c.Cookies {
		source := cookie.Source
		if source == "" || !m.groupByCookieSource {
			// Group under the cookie's domain attribute. Secure
			// cookies are treated the same as normal ones.
			domain := cookie.Domain
			if len(domain) > 1 && domain[0] == '.' {
				domain = domain[1:]
			}
			source = "http://" + domain + "/"
		}

		origin, ok := m.parseOrigin(source)
		if !ok {
			continue
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateCookiesNode(), newCookieNode(cookie))
	}
	m.log.Debug("populated cookies", zap.Int("records", len(c.Cookies)))
}

func (m *TreeModel) populateDatabasesWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.Databases) == 0 {
		return
	}
	defer m.observePopulate(TypeDatabases, time.Now())

	n.Start()
	for _, db := range c.Databases {
		origin, ok := m.parseOrigin(db.Origin)
		if !ok {
			continue
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateDatabasesNode(), newDatabaseNode(db))
	}
	m.log.Debug("populated databases", zap.Int("records", len(c.Databases)))
}

func (m *TreeModel) populateLocalStorageWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.LocalStorages) == 0 {
		return
	}
	defer m.observePopulate(TypeLocalStorages, time.Now())

	n.Start()
	for _, ls := range c.LocalStorages {
		origin, ok := m.parseOrigin(ls.Origin)
		if !ok {
			continue
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateLocalStoragesNode(), newLocalStorageNode(ls))
	}
	m.log.Debug("populated local storage", zap.Int("records", len(c.LocalStorages)))
}

func (m *TreeModel) populateSessionStorageWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.SessionStorages) == 0 {
		return
	}
	defer m.observePopulate(TypeSessionStorages, time.Now())

	n.Start()
	for _, ss := range c.SessionStorages {
		origin, ok := m.parseOrigin(ss.Origin)
		if !ok {
			continue
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateSessionStoragesNode(), newSessionStorageNode(ss))
	}
	m.log.Debug("populated session storage", zap.Int("records", len(c.SessionStorages)))
}

func (m *TreeModel) populateAppCachesWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.AppCaches) == 0 {
		return
	}
	defer m.observePopulate(TypeAppCaches, time.Now())

	n.Start()
	for _, ac := range c.AppCaches {
		origin, ok := m.parseOrigin(ac.Origin)
		if !ok {
			continue
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateAppCachesNode(), newAppCacheNode(ac))
	}
	m.log.Debug("populated appcaches", zap.Int("records", len(c.AppCaches)))
}

func (m *TreeModel) populateIndexedDBsWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.IndexedDBs) == 0 {
		return
	}
	defer m.observePopulate(TypeIndexedDBs, time.Now())

	n.Start()
	for _, idb := range c.IndexedDBs {
		origin, ok := m.parseOrigin(idb.Origin)
		if !ok {
			continue
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateIndexedDBsNode(), newIndexedDBNode(idb))
	}
	m.log.Debug("populated indexed DBs", zap.Int("records", len(c.IndexedDBs)))
}

func (m *TreeModel) populateFileSystemsWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.FileSystems) == 0 {
		return
	}
	defer m.observePopulate(TypeFileSystems, time.Now())

	n.Start()
	for _, fs := range c.FileSystems {
		origin, ok := m.parseOrigin(fs.Origin)
		if !ok {
			continue
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateFileSystemsNode(), newFileSystemNode(fs))
	}
	m.log.Debug("populated file systems", zap.Int("records", len(c.FileSystems)))
}

func (m *TreeModel) populateQuotaWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.Quotas) == 0 {
		return
	}
	defer m.observePopulate(TypeQuota, time.Now())

	n.Start()
	for _, q := range c.Quotas {
		if !matchesFilter(q.Host, filter) {
			continue
		}

		// Synthetic origin purely to reuse host lookup. A real origin
		// on the same host with another scheme or port lands on the
		// same host row; that is the grouping, not a collision.
		origin, ok := m.parseOrigin("http://" + q.Host + "/")
		if !ok {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		host.UpdateOrCreateQuotaNode(q)
	}
	m.log.Debug("populated quota", zap.Int("records", len(c.Quotas)))
}

func (m *TreeModel) populateServerBoundCertsWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.ServerBoundCerts) == 0 {
		return
	}
	defer m.observePopulate(TypeServerBoundCerts, time.Now())

	n.Start()
	for _, cert := range c.ServerBoundCerts {
		origin, err := url.Parse(cert.ServerIdentifier)
		if err != nil || origin.Scheme == "" || origin.Host == "" {
			// Domain-bound cert; synthesize a URL the host lookup
			// accepts.
			var ok bool
			origin, ok = m.parseOrigin("https://" + cert.ServerIdentifier + "/")
			if !ok {
				continue
			}
		}
		if !matchesFilter(TitleForURL(origin), filter) {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		m.appendLeaf(host.GetOrCreateServerBoundCertsNode(), newServerBoundCertNode(cert))
	}
	m.log.Debug("populated server-bound certs", zap.Int("records", len(c.ServerBoundCerts)))
}

func (m *TreeModel) populateFlashLSOWithFilter(n *batchNotifier, filter string) {
	c := m.container
	if len(c.FlashLSODomains) == 0 {
		return
	}
	defer m.observePopulate(TypeFlashLSO, time.Now())

	n.Start()
	for _, domain := range c.FlashLSODomains {
		if !matchesFilter(domain, filter) {
			continue
		}

		origin, ok := m.parseOrigin("http://" + domain + "/")
		if !ok {
			continue
		}

		host := m.root.GetOrCreateHostNode(origin)
		host.GetOrCreateFlashLSONode(domain)
	}
	m.log.Debug("populated flash LSOs", zap.Int("records", len(c.FlashLSODomains)))
}
