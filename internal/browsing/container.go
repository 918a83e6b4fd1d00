package browsing

// Populator is the subset of the tree model the container drives during
// initial population. Each method populates one category with an empty
// filter.
type Populator interface {
	PopulateCookies()
	PopulateDatabases()
	PopulateLocalStorage()
	PopulateSessionStorage()
	PopulateAppCaches()
	PopulateIndexedDBs()
	PopulateFileSystems()
	PopulateQuota()
	PopulateServerBoundCerts()
	PopulateFlashLSO()
}

// Container owns the per-category record collections and their deleters.
// Collections are ordered; the tree model appends leaves in collection order
// and erases records by identity when leaves are deleted.
type Container struct {
	Cookies          []*Cookie
	Databases        []*DatabaseInfo
	LocalStorages    []*LocalStorageInfo
	SessionStorages  []*LocalStorageInfo
	AppCaches        []*AppCacheInfo
	IndexedDBs       []*IndexedDBInfo
	FileSystems      []*FileSystemInfo
	Quotas           []*QuotaInfo
	ServerBoundCerts []*ServerBoundCert
	FlashLSODomains  []string

	// Deleters may be nil; the corresponding external delete is then
	// silently skipped while the in-memory record is still erased.
	CookieHelper          CookieDeleter
	DatabaseHelper        DatabaseDeleter
	LocalStorageHelper    LocalStorageDeleter
	SessionStorageHelper  SessionStorageDeleter
	AppCacheHelper        AppCacheDeleter
	IndexedDBHelper       IndexedDBDeleter
	FileSystemHelper      FileSystemDeleter
	QuotaHelper           QuotaManager
	ServerBoundCertHelper ServerBoundCertDeleter
	FlashLSOHelper        FlashLSODeleter
}

// Init drives initial population of the model from this container's
// collections. Population reuses the filtering code path with an empty
// filter.
func (c *Container) Init(p Populator) {
	p.PopulateCookies()
	p.PopulateDatabases()
	p.PopulateLocalStorage()
	p.PopulateSessionStorage()
	p.PopulateAppCaches()
	p.PopulateIndexedDBs()
	p.PopulateFileSystems()
	p.PopulateQuota()
	p.PopulateServerBoundCerts()
	p.PopulateFlashLSO()
}

// erase removes the first element equal to v, preserving order.
func erase[T comparable](list []T, v T) []T {
	for i, e := range list {
		if e == v {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// EraseCookie removes c from the cookie collection.
func (c *Container) EraseCookie(ck *Cookie) {
	c.Cookies = erase(c.Cookies, ck)
}

// EraseDatabase removes db from the database collection.
func (c *Container) EraseDatabase(db *DatabaseInfo) {
	c.Databases = erase(c.Databases, db)
}

// EraseLocalStorage removes ls from the local storage collection.
func (c *Container) EraseLocalStorage(ls *LocalStorageInfo) {
	c.LocalStorages = erase(c.LocalStorages, ls)
}

// EraseSessionStorage removes ss from the session storage collection.
func (c *Container) EraseSessionStorage(ss *LocalStorageInfo) {
	c.SessionStorages = erase(c.SessionStorages, ss)
}

// EraseAppCache removes ac from the appcache collection.
func (c *Container) EraseAppCache(ac *AppCacheInfo) {
	c.AppCaches = erase(c.AppCaches, ac)
}

// EraseIndexedDB removes idb from the indexed DB collection.
func (c *Container) EraseIndexedDB(idb *IndexedDBInfo) {
	c.IndexedDBs = erase(c.IndexedDBs, idb)
}

// EraseFileSystem removes fs from the file system collection.
func (c *Container) EraseFileSystem(fs *FileSystemInfo) {
	c.FileSystems = erase(c.FileSystems, fs)
}

// EraseQuota removes q from the quota collection.
func (c *Container) EraseQuota(q *QuotaInfo) {
	c.Quotas = erase(c.Quotas, q)
}

// EraseServerBoundCert removes cert from the cert collection.
func (c *Container) EraseServerBoundCert(cert *ServerBoundCert) {
	c.ServerBoundCerts = erase(c.ServerBoundCerts, cert)
}

// EraseFlashLSODomain removes domain from the flash LSO domain list.
func (c *Container) EraseFlashLSODomain(domain string) {
	c.FlashLSODomains = erase(c.FlashLSODomains, domain)
}
