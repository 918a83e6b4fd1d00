package treemodel

// Display titles of the category containers. Containers are title-sorted
// among their host's children, so these also determine category order.
const (
	titleCookies          = "Cookies"
	titleDatabases        = "Web Databases"
	titleLocalStorages    = "Local Storage"
	titleSessionStorages  = "Session Storage"
	titleAppCaches        = "Application Caches"
	titleIndexedDBs       = "Indexed Databases"
	titleFileSystems      = "File Systems"
	titleServerBoundCerts = "Server Bound Certificates"
	titleFlashLSO         = "Flash Local Shared Objects"
)

// Plural category containers. They carry no payload beyond their tag and
// delete by recursing over their leaves.

type cookiesNode struct{ baseNode }

func (*cookiesNode) Detail() Detail { return CookiesDetail{} }

type databasesNode struct{ baseNode }

func (*databasesNode) Detail() Detail { return DatabasesDetail{} }

type localStoragesNode struct{ baseNode }

func (*localStoragesNode) Detail() Detail { return LocalStoragesDetail{} }

type sessionStoragesNode struct{ baseNode }

func (*sessionStoragesNode) Detail() Detail { return SessionStoragesDetail{} }

type appCachesNode struct{ baseNode }

func (*appCachesNode) Detail() Detail { return AppCachesDetail{} }

type indexedDBsNode struct{ baseNode }

func (*indexedDBsNode) Detail() Detail { return IndexedDBsDetail{} }

type fileSystemsNode struct{ baseNode }

func (*fileSystemsNode) Detail() Detail { return FileSystemsDetail{} }

type serverBoundCertsNode struct{ baseNode }

func (*serverBoundCertsNode) Detail() Detail { return ServerBoundCertsDetail{} }
