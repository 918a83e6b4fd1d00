package browsing

// Per-category deleter interfaces. Each call removes the underlying stored
// object from whatever backend the embedder manages. Calls are synchronous
// and never report failure back to the tree; a backend that fails later does
// not roll back the in-memory mutation that triggered it.

// CookieDeleter removes a single cookie from the cookie store.
type CookieDeleter interface {
	DeleteCookie(c *Cookie)
}

// DatabaseDeleter removes one WebSQL database.
type DatabaseDeleter interface {
	DeleteDatabase(origin, name string)
}

// LocalStorageDeleter removes an origin's local storage area.
type LocalStorageDeleter interface {
	DeleteOrigin(origin string)
}

// SessionStorageDeleter removes an origin's session storage area.
type SessionStorageDeleter interface {
	DeleteOrigin(origin string)
}

// AppCacheDeleter removes one application cache group by manifest URL.
type AppCacheDeleter interface {
	DeleteAppCacheGroup(manifestURL string)
}

// IndexedDBDeleter removes an origin's indexed databases.
type IndexedDBDeleter interface {
	DeleteIndexedDB(origin string)
}

// FileSystemDeleter removes an origin's sandboxed file systems.
type FileSystemDeleter interface {
	DeleteFileSystemOrigin(origin string)
}

// QuotaManager revokes a host's granted quota. Revoking may leave the host
// temporarily over quota; that only prevents further usage growth.
type QuotaManager interface {
	RevokeHostQuota(host string)
}

// ServerBoundCertDeleter removes the certificate bound to a server.
type ServerBoundCertDeleter interface {
	DeleteCert(serverIdentifier string)
}

// FlashLSODeleter removes the flash local shared objects for a site.
type FlashLSODeleter interface {
	DeleteFlashLSOsForSite(domain string)
}
