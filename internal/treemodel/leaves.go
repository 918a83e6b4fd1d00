package treemodel

import (
	"github.com/GriffinCanCode/SiteData/internal/browsing"
)

// Leaf nodes wrap exactly one raw record owned by the browsing container.
// Deleting a leaf's stored objects invokes the category's external deleter
// (skipped when unset) and erases the backing record so a later rebuild
// cannot resurrect it.

// leafContainer resolves the container for a leaf that sits two levels below
// its host (host -> category container -> leaf). Returns nil when the leaf
// is detached from a model, in which case the external delete is skipped.
func leafContainer(n Node) *browsing.Container {
	if _, ok := n.Parent().Parent().(*HostNode); !ok {
		panic("treemodel: leaf is not two levels below a host: " + n.Detail().NodeType().String())
	}
	m := n.Model()
	if m == nil {
		return nil
	}
	return m.container
}

// unnamedDatabaseTitle stands in for WebSQL databases created without a name.
const unnamedDatabaseTitle = "(unnamed database)"

type cookieNode struct {
	baseNode
	cookie *browsing.Cookie
}

func newCookieNode(c *browsing.Cookie) *cookieNode {
	return &cookieNode{baseNode: baseNode{title: c.Name}, cookie: c}
}

func (n *cookieNode) Detail() Detail { return CookieDetail{Cookie: n.cookie} }

func (n *cookieNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.CookieHelper != nil {
		c.CookieHelper.DeleteCookie(n.cookie)
	}
	c.EraseCookie(n.cookie)
	n.Model().recordDeleted(TypeCookie)
}

type databaseNode struct {
	baseNode
	info *browsing.DatabaseInfo
}

func newDatabaseNode(info *browsing.DatabaseInfo) *databaseNode {
	title := info.Name
	if title == "" {
		title = unnamedDatabaseTitle
	}
	return &databaseNode{baseNode: baseNode{title: title}, info: info}
}

func (n *databaseNode) Detail() Detail {
	return DatabaseDetail{Origin: n.info.Origin, Info: n.info}
}

func (n *databaseNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.DatabaseHelper != nil {
		c.DatabaseHelper.DeleteDatabase(n.info.Origin, n.info.Name)
	}
	c.EraseDatabase(n.info)
	n.Model().recordDeleted(TypeDatabase)
}

type localStorageNode struct {
	baseNode
	info *browsing.LocalStorageInfo
}

func newLocalStorageNode(info *browsing.LocalStorageInfo) *localStorageNode {
	return &localStorageNode{baseNode: baseNode{title: info.Origin}, info: info}
}

func (n *localStorageNode) Detail() Detail {
	return LocalStorageDetail{Origin: n.info.Origin, Info: n.info}
}

func (n *localStorageNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.LocalStorageHelper != nil {
		c.LocalStorageHelper.DeleteOrigin(n.info.Origin)
	}
	c.EraseLocalStorage(n.info)
	n.Model().recordDeleted(TypeLocalStorage)
}

type sessionStorageNode struct {
	baseNode
	info *browsing.LocalStorageInfo
}

func newSessionStorageNode(info *browsing.LocalStorageInfo) *sessionStorageNode {
	return &sessionStorageNode{baseNode: baseNode{title: info.Origin}, info: info}
}

func (n *sessionStorageNode) Detail() Detail {
	return SessionStorageDetail{Origin: n.info.Origin, Info: n.info}
}

func (n *sessionStorageNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.SessionStorageHelper != nil {
		c.SessionStorageHelper.DeleteOrigin(n.info.Origin)
	}
	c.EraseSessionStorage(n.info)
	n.Model().recordDeleted(TypeSessionStorage)
}

type appCacheNode struct {
	baseNode
	info *browsing.AppCacheInfo
}

func newAppCacheNode(info *browsing.AppCacheInfo) *appCacheNode {
	return &appCacheNode{baseNode: baseNode{title: info.ManifestURL}, info: info}
}

func (n *appCacheNode) Detail() Detail {
	return AppCacheDetail{Origin: n.info.Origin, Info: n.info}
}

func (n *appCacheNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.AppCacheHelper != nil {
		c.AppCacheHelper.DeleteAppCacheGroup(n.info.ManifestURL)
	}
	c.EraseAppCache(n.info)
	n.Model().recordDeleted(TypeAppCache)
}

type indexedDBNode struct {
	baseNode
	info *browsing.IndexedDBInfo
}

func newIndexedDBNode(info *browsing.IndexedDBInfo) *indexedDBNode {
	return &indexedDBNode{baseNode: baseNode{title: info.Origin}, info: info}
}

func (n *indexedDBNode) Detail() Detail {
	return IndexedDBDetail{Origin: n.info.Origin, Info: n.info}
}

func (n *indexedDBNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.IndexedDBHelper != nil {
		c.IndexedDBHelper.DeleteIndexedDB(n.info.Origin)
	}
	c.EraseIndexedDB(n.info)
	n.Model().recordDeleted(TypeIndexedDB)
}

type fileSystemNode struct {
	baseNode
	info *browsing.FileSystemInfo
}

func newFileSystemNode(info *browsing.FileSystemInfo) *fileSystemNode {
	return &fileSystemNode{baseNode: baseNode{title: info.Origin}, info: info}
}

func (n *fileSystemNode) Detail() Detail {
	return FileSystemDetail{Origin: n.info.Origin, Info: n.info}
}

func (n *fileSystemNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.FileSystemHelper != nil {
		c.FileSystemHelper.DeleteFileSystemOrigin(n.info.Origin)
	}
	c.EraseFileSystem(n.info)
	n.Model().recordDeleted(TypeFileSystem)
}

// quotaNode sits directly under its host with no plural container.
type quotaNode struct {
	baseNode
	info *browsing.QuotaInfo
}

func (n *quotaNode) Detail() Detail { return QuotaDetail{Info: n.info} }

func (n *quotaNode) DeleteStoredObjects() {
	// Revoking may leave the host over quota; that only stops further
	// usage growth.
	m := n.Model()
	if m == nil || m.container == nil {
		return
	}
	c := m.container
	if c.QuotaHelper != nil {
		c.QuotaHelper.RevokeHostQuota(n.info.Host)
	}
	c.EraseQuota(n.info)
	m.recordDeleted(TypeQuota)
}

type serverBoundCertNode struct {
	baseNode
	cert *browsing.ServerBoundCert
}

func newServerBoundCertNode(cert *browsing.ServerBoundCert) *serverBoundCertNode {
	return &serverBoundCertNode{baseNode: baseNode{title: cert.ServerIdentifier}, cert: cert}
}

func (n *serverBoundCertNode) Detail() Detail {
	return ServerBoundCertDetail{Cert: n.cert}
}

func (n *serverBoundCertNode) DeleteStoredObjects() {
	c := leafContainer(n)
	if c == nil {
		return
	}
	if c.ServerBoundCertHelper != nil {
		c.ServerBoundCertHelper.DeleteCert(n.cert.ServerIdentifier)
	}
	c.EraseServerBoundCert(n.cert)
	n.Model().recordDeleted(TypeServerBoundCert)
}

// flashLSONode sits directly under its host with no plural container.
type flashLSONode struct {
	baseNode
	domain string
}

func (n *flashLSONode) Detail() Detail { return FlashLSODetail{Domain: n.domain} }

func (n *flashLSONode) DeleteStoredObjects() {
	if _, ok := n.Parent().(*HostNode); !ok {
		panic("treemodel: flash LSO leaf is not directly below a host")
	}
	m := n.Model()
	if m == nil || m.container == nil {
		return
	}
	c := m.container
	if c.FlashLSOHelper != nil {
		c.FlashLSOHelper.DeleteFlashLSOsForSite(n.domain)
	}
	c.EraseFlashLSODomain(n.domain)
	m.recordDeleted(TypeFlashLSO)
}
