package main

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SiteData/internal/browsing"
	"github.com/GriffinCanCode/SiteData/internal/logging"
)

// loggingDeleter satisfies every per-category deleter interface, logging the
// call a real storage backend would receive.
type loggingDeleter struct {
	log *logging.Logger
}

func (d loggingDeleter) DeleteCookie(c *browsing.Cookie) {
	d.log.Info("delete cookie", zap.String("name", c.Name), zap.String("domain", c.Domain))
}

func (d loggingDeleter) DeleteDatabase(origin, name string) {
	d.log.Info("delete database", zap.String("origin", origin), zap.String("name", name))
}

func (d loggingDeleter) DeleteAppCacheGroup(manifest string) {
	d.log.Info("delete appcache group", zap.String("manifest_url", manifest))
}

func (d loggingDeleter) DeleteIndexedDB(origin string) {
	d.log.Info("delete indexed DB data", zap.String("origin", origin))
}

func (d loggingDeleter) DeleteFileSystemOrigin(origin string) {
	d.log.Info("delete file systems", zap.String("origin", origin))
}

func (d loggingDeleter) RevokeHostQuota(host string) {
	d.log.Info("revoke host quota", zap.String("host", host))
}

func (d loggingDeleter) DeleteCert(id string) {
	d.log.Info("delete server-bound cert", zap.String("server_identifier", id))
}

func (d loggingDeleter) DeleteFlashLSOsForSite(domain string) {
	d.log.Info("delete flash LSOs", zap.String("domain", domain))
}

// Local and session storage share one interface shape, so distinct wrappers
// keep the log lines distinguishable.

type localStorageDeleter struct{ loggingDeleter }

func (d localStorageDeleter) DeleteOrigin(origin string) {
	d.log.Info("delete local storage", zap.String("origin", origin))
}

type sessionStorageDeleter struct{ loggingDeleter }

func (d sessionStorageDeleter) DeleteOrigin(origin string) {
	d.log.Info("delete session storage", zap.String("origin", origin))
}
