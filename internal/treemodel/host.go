package treemodel

import (
	"net/url"

	"github.com/GriffinCanCode/SiteData/internal/browsing"
)

// HostNode is the per-origin row directly under the root. It lazily creates
// at most one child per data category: a plural container, or a singleton
// leaf for quota and flash data.
type HostNode struct {
	baseNode
	origin       *url.URL
	canonicalKey string

	cookies          *cookiesNode
	databases        *databasesNode
	localStorages    *localStoragesNode
	sessionStorages  *sessionStoragesNode
	appCaches        *appCachesNode
	indexedDBs       *indexedDBsNode
	fileSystems      *fileSystemsNode
	quota            *quotaNode
	serverBoundCerts *serverBoundCertsNode
	flashLSO         *flashLSONode
}

func newHostNode(origin *url.URL) *HostNode {
	return &HostNode{
		baseNode:     baseNode{title: TitleForURL(origin)},
		origin:       origin,
		canonicalKey: CanonicalizeHost(origin),
	}
}

// Origin returns the URL this host row was created from.
func (h *HostNode) Origin() *url.URL { return h.origin }

// CanonicalizedHost returns the ordering key for this host row.
func (h *HostNode) CanonicalizedHost() string { return h.canonicalKey }

// Host returns the display host: the file placeholder for file origins,
// otherwise the bare host.
func (h *HostNode) Host() string { return TitleForURL(h.origin) }

func (h *HostNode) Detail() Detail {
	return HostDetail{Origin: h.origin.String()}
}

// CanCreateProtectionException reports whether an external permission
// exception may target this host. The file placeholder host has no origin a
// pattern could match.
func (h *HostNode) CanCreateProtectionException() bool {
	return h.origin.Scheme != "file"
}

// removeChild drops the cached category pointer along with the child, so a
// later get-or-create builds a fresh container instead of returning a
// detached one.
func (h *HostNode) removeChild(index int) Node {
	n := h.baseNode.removeChild(index)
	switch n {
	case Node(h.cookies):
		h.cookies = nil
	case Node(h.databases):
		h.databases = nil
	case Node(h.localStorages):
		h.localStorages = nil
	case Node(h.sessionStorages):
		h.sessionStorages = nil
	case Node(h.appCaches):
		h.appCaches = nil
	case Node(h.indexedDBs):
		h.indexedDBs = nil
	case Node(h.fileSystems):
		h.fileSystems = nil
	case Node(h.quota):
		h.quota = nil
	case Node(h.serverBoundCerts):
		h.serverBoundCerts = nil
	case Node(h.flashLSO):
		h.flashLSO = nil
	}
	return n
}

// addCategoryChild title-sort-inserts a freshly created category child.
func (h *HostNode) addCategoryChild(n Node) {
	h.Model().Add(h, n, titleInsertIndex(h, n))
}

// GetOrCreateCookiesNode returns the cookies container, creating it on first
// use.
func (h *HostNode) GetOrCreateCookiesNode() *cookiesNode {
	if h.cookies == nil {
		h.cookies = &cookiesNode{baseNode{title: titleCookies}}
		h.addCategoryChild(h.cookies)
	}
	return h.cookies
}

// GetOrCreateDatabasesNode returns the databases container, creating it on
// first use.
func (h *HostNode) GetOrCreateDatabasesNode() *databasesNode {
	if h.databases == nil {
		h.databases = &databasesNode{baseNode{title: titleDatabases}}
		h.addCategoryChild(h.databases)
	}
	return h.databases
}

// GetOrCreateLocalStoragesNode returns the local storages container,
// creating it on first use.
func (h *HostNode) GetOrCreateLocalStoragesNode() *localStoragesNode {
	if h.localStorages == nil {
		h.localStorages = &localStoragesNode{baseNode{title: titleLocalStorages}}
		h.addCategoryChild(h.localStorages)
	}
	return h.localStorages
}

// GetOrCreateSessionStoragesNode returns the session storages container,
// creating it on first use.
func (h *HostNode) GetOrCreateSessionStoragesNode() *sessionStoragesNode {
	if h.sessionStorages == nil {
		h.sessionStorages = &sessionStoragesNode{baseNode{title: titleSessionStorages}}
		h.addCategoryChild(h.sessionStorages)
	}
	return h.sessionStorages
}

// GetOrCreateAppCachesNode returns the appcaches container, creating it on
// first use.
func (h *HostNode) GetOrCreateAppCachesNode() *appCachesNode {
	if h.appCaches == nil {
		h.appCaches = &appCachesNode{baseNode{title: titleAppCaches}}
		h.addCategoryChild(h.appCaches)
	}
	return h.appCaches
}

// GetOrCreateIndexedDBsNode returns the indexed DBs container, creating it
// on first use.
func (h *HostNode) GetOrCreateIndexedDBsNode() *indexedDBsNode {
	if h.indexedDBs == nil {
		h.indexedDBs = &indexedDBsNode{baseNode{title: titleIndexedDBs}}
		h.addCategoryChild(h.indexedDBs)
	}
	return h.indexedDBs
}

// GetOrCreateFileSystemsNode returns the file systems container, creating it
// on first use.
func (h *HostNode) GetOrCreateFileSystemsNode() *fileSystemsNode {
	if h.fileSystems == nil {
		h.fileSystems = &fileSystemsNode{baseNode{title: titleFileSystems}}
		h.addCategoryChild(h.fileSystems)
	}
	return h.fileSystems
}

// GetOrCreateServerBoundCertsNode returns the server-bound certs container,
// creating it on first use.
func (h *HostNode) GetOrCreateServerBoundCertsNode() *serverBoundCertsNode {
	if h.serverBoundCerts == nil {
		h.serverBoundCerts = &serverBoundCertsNode{baseNode{title: titleServerBoundCerts}}
		h.addCategoryChild(h.serverBoundCerts)
	}
	return h.serverBoundCerts
}

// UpdateOrCreateQuotaNode returns the quota leaf. It is created once; later
// calls keep the existing leaf and its record regardless of q.
func (h *HostNode) UpdateOrCreateQuotaNode(q *browsing.QuotaInfo) *quotaNode {
	if h.quota == nil {
		h.quota = &quotaNode{baseNode: baseNode{title: q.Host}, info: q}
		h.addCategoryChild(h.quota)
	}
	return h.quota
}

// GetOrCreateFlashLSONode returns the flash LSO leaf. It is created once;
// later calls keep the existing leaf regardless of domain.
func (h *HostNode) GetOrCreateFlashLSONode(domain string) *flashLSONode {
	if h.flashLSO == nil {
		h.flashLSO = &flashLSONode{baseNode: baseNode{title: titleFlashLSO}, domain: domain}
		h.addCategoryChild(h.flashLSO)
	}
	return h.flashLSO
}
