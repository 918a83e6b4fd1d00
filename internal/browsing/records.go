package browsing

import "time"

// Cookie is a single stored cookie.
type Cookie struct {
	Name     string    `json:"name" yaml:"name"`
	Value    string    `json:"value" yaml:"value"`
	Domain   string    `json:"domain" yaml:"domain"`
	Path     string    `json:"path" yaml:"path"`
	Source   string    `json:"source,omitempty" yaml:"source,omitempty"` // URL the cookie was set from, may be empty
	Secure   bool      `json:"secure" yaml:"secure"`
	HTTPOnly bool      `json:"http_only" yaml:"http_only"`
	Expires  time.Time `json:"expires,omitempty" yaml:"expires,omitempty"`
}

// DatabaseInfo describes one WebSQL database.
type DatabaseInfo struct {
	Origin       string    `json:"origin" yaml:"origin"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Size         int64     `json:"size" yaml:"size"`
	LastModified time.Time `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
}

// LocalStorageInfo describes one origin's DOM storage area. The same record
// shape is used for both local and session storage.
type LocalStorageInfo struct {
	Origin       string    `json:"origin" yaml:"origin"`
	Size         int64     `json:"size" yaml:"size"`
	LastModified time.Time `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
}

// AppCacheInfo describes one application cache group.
type AppCacheInfo struct {
	Origin         string    `json:"origin" yaml:"origin"`
	ManifestURL    string    `json:"manifest_url" yaml:"manifest_url"`
	Size           int64     `json:"size" yaml:"size"`
	CreationTime   time.Time `json:"creation_time,omitempty" yaml:"creation_time,omitempty"`
	LastAccessTime time.Time `json:"last_access_time,omitempty" yaml:"last_access_time,omitempty"`
}

// IndexedDBInfo describes one origin's indexed database usage.
type IndexedDBInfo struct {
	Origin       string    `json:"origin" yaml:"origin"`
	Size         int64     `json:"size" yaml:"size"`
	LastModified time.Time `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
}

// FileSystemInfo describes one origin's sandboxed file systems.
type FileSystemInfo struct {
	Origin          string `json:"origin" yaml:"origin"`
	HasTemporary    bool   `json:"has_temporary" yaml:"has_temporary"`
	HasPersistent   bool   `json:"has_persistent" yaml:"has_persistent"`
	TemporaryUsage  int64  `json:"temporary_usage" yaml:"temporary_usage"`
	PersistentUsage int64  `json:"persistent_usage" yaml:"persistent_usage"`
}

// QuotaInfo describes one host's quota-managed storage usage.
type QuotaInfo struct {
	Host            string `json:"host" yaml:"host"`
	TemporaryUsage  int64  `json:"temporary_usage" yaml:"temporary_usage"`
	PersistentUsage int64  `json:"persistent_usage" yaml:"persistent_usage"`
}

// ServerBoundCert is a certificate bound to one server identifier.
type ServerBoundCert struct {
	ServerIdentifier string    `json:"server_identifier" yaml:"server_identifier"`
	CreationTime     time.Time `json:"creation_time,omitempty" yaml:"creation_time,omitempty"`
	ExpirationTime   time.Time `json:"expiration_time,omitempty" yaml:"expiration_time,omitempty"`
}
