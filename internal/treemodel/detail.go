package treemodel

import "github.com/GriffinCanCode/SiteData/internal/browsing"

// NodeType identifies a node variant.
type NodeType int

// Node variants. Each data category has a plural container type and a
// singular leaf type, except quota and flash LSO which are singleton leaves
// directly under the host.
const (
	TypeRoot NodeType = iota
	TypeHost
	TypeCookies
	TypeCookie
	TypeDatabases
	TypeDatabase
	TypeLocalStorages
	TypeLocalStorage
	TypeSessionStorages
	TypeSessionStorage
	TypeAppCaches
	TypeAppCache
	TypeIndexedDBs
	TypeIndexedDB
	TypeFileSystems
	TypeFileSystem
	TypeQuota
	TypeServerBoundCerts
	TypeServerBoundCert
	TypeFlashLSO
)

var nodeTypeNames = map[NodeType]string{
	TypeRoot:             "root",
	TypeHost:             "host",
	TypeCookies:          "cookies",
	TypeCookie:           "cookie",
	TypeDatabases:        "databases",
	TypeDatabase:         "database",
	TypeLocalStorages:    "local_storages",
	TypeLocalStorage:     "local_storage",
	TypeSessionStorages:  "session_storages",
	TypeSessionStorage:   "session_storage",
	TypeAppCaches:        "appcaches",
	TypeAppCache:         "appcache",
	TypeIndexedDBs:       "indexed_dbs",
	TypeIndexedDB:        "indexed_db",
	TypeFileSystems:      "file_systems",
	TypeFileSystem:       "file_system",
	TypeQuota:            "quota",
	TypeServerBoundCerts: "server_bound_certs",
	TypeServerBoundCert:  "server_bound_cert",
	TypeFlashLSO:         "flash_lso",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Detail is a node's tagged payload. Exactly one concrete detail type exists
// per variant, so a node can never carry two payloads at once. Callers
// dispatch with a type switch over the closed set below.
type Detail interface {
	NodeType() NodeType
}

// RootDetail is the payload of the root node.
type RootDetail struct{}

// HostDetail is the payload of a host node.
type HostDetail struct {
	Origin string
}

// CookiesDetail is the payload of a cookies container.
type CookiesDetail struct{}

// CookieDetail is the payload of a cookie leaf.
type CookieDetail struct {
	Cookie *browsing.Cookie
}

// DatabasesDetail is the payload of a databases container.
type DatabasesDetail struct{}

// DatabaseDetail is the payload of a database leaf.
type DatabaseDetail struct {
	Origin string
	Info   *browsing.DatabaseInfo
}

// LocalStoragesDetail is the payload of a local storages container.
type LocalStoragesDetail struct{}

// LocalStorageDetail is the payload of a local storage leaf.
type LocalStorageDetail struct {
	Origin string
	Info   *browsing.LocalStorageInfo
}

// SessionStoragesDetail is the payload of a session storages container.
type SessionStoragesDetail struct{}

// SessionStorageDetail is the payload of a session storage leaf.
type SessionStorageDetail struct {
	Origin string
	Info   *browsing.LocalStorageInfo
}

// AppCachesDetail is the payload of an appcaches container.
type AppCachesDetail struct{}

// AppCacheDetail is the payload of an appcache leaf.
type AppCacheDetail struct {
	Origin string
	Info   *browsing.AppCacheInfo
}

// IndexedDBsDetail is the payload of an indexed DBs container.
type IndexedDBsDetail struct{}

// IndexedDBDetail is the payload of an indexed DB leaf.
type IndexedDBDetail struct {
	Origin string
	Info   *browsing.IndexedDBInfo
}

// FileSystemsDetail is the payload of a file systems container.
type FileSystemsDetail struct{}

// FileSystemDetail is the payload of a file system leaf.
type FileSystemDetail struct {
	Origin string
	Info   *browsing.FileSystemInfo
}

// QuotaDetail is the payload of a quota leaf.
type QuotaDetail struct {
	Info *browsing.QuotaInfo
}

// ServerBoundCertsDetail is the payload of a server-bound certs container.
type ServerBoundCertsDetail struct{}

// ServerBoundCertDetail is the payload of a server-bound cert leaf.
type ServerBoundCertDetail struct {
	Cert *browsing.ServerBoundCert
}

// FlashLSODetail is the payload of a flash LSO leaf.
type FlashLSODetail struct {
	Domain string
}

func (RootDetail) NodeType() NodeType             { return TypeRoot }
func (HostDetail) NodeType() NodeType             { return TypeHost }
func (CookiesDetail) NodeType() NodeType          { return TypeCookies }
func (CookieDetail) NodeType() NodeType           { return TypeCookie }
func (DatabasesDetail) NodeType() NodeType        { return TypeDatabases }
func (DatabaseDetail) NodeType() NodeType         { return TypeDatabase }
func (LocalStoragesDetail) NodeType() NodeType    { return TypeLocalStorages }
func (LocalStorageDetail) NodeType() NodeType     { return TypeLocalStorage }
func (SessionStoragesDetail) NodeType() NodeType  { return TypeSessionStorages }
func (SessionStorageDetail) NodeType() NodeType   { return TypeSessionStorage }
func (AppCachesDetail) NodeType() NodeType        { return TypeAppCaches }
func (AppCacheDetail) NodeType() NodeType         { return TypeAppCache }
func (IndexedDBsDetail) NodeType() NodeType       { return TypeIndexedDBs }
func (IndexedDBDetail) NodeType() NodeType        { return TypeIndexedDB }
func (FileSystemsDetail) NodeType() NodeType      { return TypeFileSystems }
func (FileSystemDetail) NodeType() NodeType       { return TypeFileSystem }
func (QuotaDetail) NodeType() NodeType            { return TypeQuota }
func (ServerBoundCertsDetail) NodeType() NodeType { return TypeServerBoundCerts }
func (ServerBoundCertDetail) NodeType() NodeType  { return TypeServerBoundCert }
func (FlashLSODetail) NodeType() NodeType         { return TypeFlashLSO }

// typeIsProtected reports whether a policy collaborator may protect nodes of
// the given type from deletion.
func typeIsProtected(t NodeType) bool {
	switch t {
	case TypeDatabase,
		TypeLocalStorage,
		TypeSessionStorage,
		TypeAppCache,
		TypeIndexedDB,
		TypeFileSystem:
		return true
	default:
		return false
	}
}

// protectedOrigin extracts the origin of a protectable detail. Calling it
// with any other detail is a programming error.
func protectedOrigin(d Detail) string {
	switch v := d.(type) {
	case DatabaseDetail:
		return v.Origin
	case LocalStorageDetail:
		return v.Origin
	case SessionStorageDetail:
		return v.Origin
	case AppCacheDetail:
		return v.Origin
	case IndexedDBDetail:
		return v.Origin
	case FileSystemDetail:
		return v.Origin
	default:
		panic("treemodel: detail carries no protectable origin: " + d.NodeType().String())
	}
}
