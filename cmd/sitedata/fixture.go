package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/SiteData/internal/browsing"
	"github.com/GriffinCanCode/SiteData/internal/logging"
)

// Fixture is the on-disk YAML shape of a browsing data set.
type Fixture struct {
	Cookies          []*browsing.Cookie           `yaml:"cookies"`
	Databases        []*browsing.DatabaseInfo     `yaml:"databases"`
	LocalStorages    []*browsing.LocalStorageInfo `yaml:"local_storages"`
	SessionStorages  []*browsing.LocalStorageInfo `yaml:"session_storages"`
	AppCaches        []*browsing.AppCacheInfo     `yaml:"appcaches"`
	IndexedDBs       []*browsing.IndexedDBInfo    `yaml:"indexed_dbs"`
	FileSystems      []*browsing.FileSystemInfo   `yaml:"file_systems"`
	Quotas           []*browsing.QuotaInfo        `yaml:"quotas"`
	ServerBoundCerts []*browsing.ServerBoundCert  `yaml:"server_bound_certs"`
	FlashLSODomains  []string                     `yaml:"flash_lso_domains"`
}

func loadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// container wires the fixture's records to logging deleters so purges show
// the external-delete calls a real backend would receive.
func (f *Fixture) container(log *logging.Logger) *browsing.Container {
	d := loggingDeleter{log: log.Named("deleter")}
	return &browsing.Container{
		Cookies:          f.Cookies,
		Databases:        f.Databases,
		LocalStorages:    f.LocalStorages,
		SessionStorages:  f.SessionStorages,
		AppCaches:        f.AppCaches,
		IndexedDBs:       f.IndexedDBs,
		FileSystems:      f.FileSystems,
		Quotas:           f.Quotas,
		ServerBoundCerts: f.ServerBoundCerts,
		FlashLSODomains:  f.FlashLSODomains,

		CookieHelper:          d,
		DatabaseHelper:        d,
		LocalStorageHelper:    localStorageDeleter{d},
		SessionStorageHelper:  sessionStorageDeleter{d},
		AppCacheHelper:        d,
		IndexedDBHelper:       d,
		FileSystemHelper:      d,
		QuotaHelper:           d,
		ServerBoundCertHelper: d,
		FlashLSOHelper:        d,
	}
}
