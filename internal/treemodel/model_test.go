package treemodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/SiteData/internal/browsing"
)

// recorder implements every deleter interface, tagging calls so tests can
// tell categories apart.
type recorder struct {
	tag   string
	calls *[]string
}

func (r recorder) record(s string) { *r.calls = append(*r.calls, r.tag+":"+s) }

func (r recorder) DeleteCookie(c *browsing.Cookie)      { r.record(c.Name) }
func (r recorder) DeleteDatabase(origin, name string)   { r.record(origin + "/" + name) }
func (r recorder) DeleteOrigin(origin string)           { r.record(origin) }
func (r recorder) DeleteAppCacheGroup(manifest string)  { r.record(manifest) }
func (r recorder) DeleteIndexedDB(origin string)        { r.record(origin) }
func (r recorder) DeleteFileSystemOrigin(origin string) { r.record(origin) }
func (r recorder) RevokeHostQuota(host string)          { r.record(host) }
func (r recorder) DeleteCert(id string)                 { r.record(id) }
func (r recorder) DeleteFlashLSOsForSite(domain string) { r.record(domain) }

func attachRecorders(c *browsing.Container, calls *[]string) {
	c.CookieHelper = recorder{"cookie", calls}
	c.DatabaseHelper = recorder{"database", calls}
	c.LocalStorageHelper = recorder{"local_storage", calls}
	c.SessionStorageHelper = recorder{"session_storage", calls}
	c.AppCacheHelper = recorder{"appcache", calls}
	c.IndexedDBHelper = recorder{"indexed_db", calls}
	c.FileSystemHelper = recorder{"file_system", calls}
	c.QuotaHelper = recorder{"quota", calls}
	c.ServerBoundCertHelper = recorder{"server_bound_cert", calls}
	c.FlashLSOHelper = recorder{"flash_lso", calls}
}

type countingObserver struct {
	begins, ends             int
	added, removed, changed  int
}

func (o *countingObserver) OnBeginBatch(*TreeModel)  { o.begins++ }
func (o *countingObserver) OnEndBatch(*TreeModel)    { o.ends++ }
func (o *countingObserver) OnNodeAdded(Node, int)    { o.added++ }
func (o *countingObserver) OnNodeRemoved(Node, int)  { o.removed++ }
func (o *countingObserver) OnNodeChanged(Node)       { o.changed++ }

// findHost returns the host row with the given display title, or nil.
func findHost(m *TreeModel, title string) *HostNode {
	for _, child := range m.Root().Children() {
		if child.Title() == title {
			return child.(*HostNode)
		}
	}
	return nil
}

// collectByType walks the subtree collecting nodes of one variant.
func collectByType(n Node, t NodeType) []Node {
	var out []Node
	if n.Detail().NodeType() == t {
		out = append(out, n)
	}
	for _, child := range n.Children() {
		out = append(out, collectByType(child, t)...)
	}
	return out
}

func TestInitialPopulation(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{
			{Name: "A", Domain: "a.example.com"},
			{Name: "B", Domain: "b.example.com"},
		},
		Databases: []*browsing.DatabaseInfo{
			{Origin: "http://a.example.com", Name: "db1"},
		},
	}
	m := New(c, Options{})

	kids := m.Root().Children()
	require.Len(t, kids, 2)

	// Canonical keys example.com.a < example.com.b order the hosts.
	hostA := kids[0].(*HostNode)
	hostB := kids[1].(*HostNode)
	assert.Equal(t, "a.example.com", hostA.Title())
	assert.Equal(t, "b.example.com", hostB.Title())
	assert.Equal(t, "example.com.a", hostA.CanonicalizedHost())
	assert.Equal(t, "example.com.b", hostB.CanonicalizedHost())

	// a.example.com carries both category containers, title-sorted.
	require.Len(t, hostA.Children(), 2)
	assert.Equal(t, titleCookies, hostA.Children()[0].Title())
	assert.Equal(t, titleDatabases, hostA.Children()[1].Title())

	require.Len(t, hostB.Children(), 1)
	assert.Equal(t, titleCookies, hostB.Children()[0].Title())
}

func TestPopulateTwiceKeepsOneHostNode(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{{Name: "A", Domain: "example.com"}},
	}
	m := New(c, Options{})

	// Same container state, second populate pass.
	m.PopulateCookies()

	kids := m.Root().Children()
	require.Len(t, kids, 1)

	host := kids[0].(*HostNode)
	require.Len(t, host.Children(), 1)
	assert.Len(t, host.Children()[0].Children(), 2, "both passes append a leaf")
}

func TestUpdateSearchResults(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{
			{Name: "A", Domain: "a.example.com"},
			{Name: "B", Domain: "b.example.com"},
		},
		Databases: []*browsing.DatabaseInfo{
			{Origin: "http://a.example.com", Name: "db1"},
		},
	}
	m := New(c, Options{})

	m.UpdateSearchResults("a.example")

	kids := m.Root().Children()
	require.Len(t, kids, 1)
	host := kids[0].(*HostNode)
	assert.Equal(t, "a.example.com", host.Title())
	assert.Len(t, host.Children(), 2, "both containers survive the filter")

	// Clearing the filter restores the unfiltered leaf set.
	m.UpdateSearchResults("")
	assert.Len(t, m.Root().Children(), 2)
	assert.Len(t, collectByType(m.Root(), TypeCookie), 2)
	assert.Len(t, collectByType(m.Root(), TypeDatabase), 1)
}

func TestUpdateSearchResultsIsCaseSensitive(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{{Name: "A", Domain: "www.google.com"}},
	}
	m := New(c, Options{})

	m.UpdateSearchResults("Google")
	assert.Empty(t, m.Root().Children())

	m.UpdateSearchResults("google")
	assert.Len(t, m.Root().Children(), 1)
}

func TestFilterMatchesDisplayTitleNotCanonicalKey(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{{Name: "A", Domain: "www.google.com"}},
	}
	m := New(c, Options{})

	// The canonical key google.com.www is ordering-only.
	m.UpdateSearchResults("com.www")
	assert.Empty(t, m.Root().Children())

	m.UpdateSearchResults("www.goo")
	assert.Len(t, m.Root().Children(), 1)
}

func TestDeleteNodeCascades(t *testing.T) {
	var calls []string
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{{Name: "A", Domain: "example.com"}},
	}
	attachRecorders(c, &calls)
	m := New(c, Options{})

	leaves := collectByType(m.Root(), TypeCookie)
	require.Len(t, leaves, 1)

	m.DeleteNode(leaves[0])

	// The emptied cookies container and then the emptied host are
	// pruned; the root itself survives.
	assert.Empty(t, m.Root().Children())
	assert.Empty(t, c.Cookies, "backing record erased")
	assert.Equal(t, []string{"cookie:A"}, calls)
}

func TestDeleteNodePrunesOnlyEmptiedAncestors(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{{Name: "A", Domain: "example.com"}},
		Databases: []*browsing.DatabaseInfo{
			{Origin: "http://example.com", Name: "db1"},
		},
	}
	m := New(c, Options{})

	leaves := collectByType(m.Root(), TypeCookie)
	require.Len(t, leaves, 1)
	m.DeleteNode(leaves[0])

	// The host keeps its databases container.
	host := findHost(m, "example.com")
	require.NotNil(t, host)
	require.Len(t, host.Children(), 1)
	assert.Equal(t, titleDatabases, host.Children()[0].Title())
	assert.Empty(t, c.Cookies)
	assert.Len(t, c.Databases, 1)
}

func TestDeleteNodeRootIsNoop(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{{Name: "A", Domain: "example.com"}},
	}
	m := New(c, Options{})

	m.DeleteNode(m.Root())

	assert.Len(t, m.Root().Children(), 1)
	assert.Len(t, c.Cookies, 1)
}

func fullContainer() *browsing.Container {
	return &browsing.Container{
		Cookies:   []*browsing.Cookie{{Name: "A", Domain: "example.com"}},
		Databases: []*browsing.DatabaseInfo{{Origin: "http://db.example.com", Name: "db1"}},
		LocalStorages: []*browsing.LocalStorageInfo{
			{Origin: "http://ls.example.com", Size: 10},
		},
		SessionStorages: []*browsing.LocalStorageInfo{
			{Origin: "http://ss.example.com", Size: 5},
		},
		AppCaches: []*browsing.AppCacheInfo{
			{Origin: "http://ac.example.com", ManifestURL: "http://ac.example.com/manifest"},
		},
		IndexedDBs: []*browsing.IndexedDBInfo{
			{Origin: "http://idb.example.com", Size: 30},
		},
		FileSystems: []*browsing.FileSystemInfo{
			{Origin: "http://fs.example.com", HasTemporary: true, TemporaryUsage: 7},
		},
		Quotas: []*browsing.QuotaInfo{
			{Host: "quota.example.com", TemporaryUsage: 99},
		},
		ServerBoundCerts: []*browsing.ServerBoundCert{
			{ServerIdentifier: "cert.example.com"},
		},
		FlashLSODomains: []string{"flash.example.com"},
	}
}

func TestDeleteAllStoredObjects(t *testing.T) {
	var calls []string
	c := fullContainer()
	attachRecorders(c, &calls)
	m := New(c, Options{})
	require.Len(t, m.Root().Children(), 10)

	obs := &countingObserver{}
	m.AddObserver(obs)

	m.DeleteAllStoredObjects()

	assert.Empty(t, m.Root().Children())

	assert.Empty(t, c.Cookies)
	assert.Empty(t, c.Databases)
	assert.Empty(t, c.LocalStorages)
	assert.Empty(t, c.SessionStorages)
	assert.Empty(t, c.AppCaches)
	assert.Empty(t, c.IndexedDBs)
	assert.Empty(t, c.FileSystems)
	assert.Empty(t, c.Quotas)
	assert.Empty(t, c.ServerBoundCerts)
	assert.Empty(t, c.FlashLSODomains)

	// Every category's deleter fired exactly once.
	assert.Len(t, calls, 10)
	assert.Contains(t, calls, "cookie:A")
	assert.Contains(t, calls, "database:http://db.example.com/db1")
	assert.Contains(t, calls, "quota:quota.example.com")
	assert.Contains(t, calls, "flash_lso:flash.example.com")

	// One batch regardless of how many hosts were torn down.
	assert.Equal(t, 1, obs.begins)
	assert.Equal(t, 1, obs.ends)
	assert.Equal(t, 1, obs.changed, "root reported changed once")
	assert.Equal(t, 10, obs.removed, "one removal per host row")
}

func TestNestedBatchNotifiers(t *testing.T) {
	m := New(&browsing.Container{}, Options{})
	obs := &countingObserver{}
	m.AddObserver(obs)

	outer := m.newBatchNotifier(m.Root())
	inner := m.newBatchNotifier(m.Root())

	outer.Start()
	inner.Start()
	inner.Done()
	outer.Done()

	assert.Equal(t, 1, obs.begins)
	assert.Equal(t, 1, obs.ends)
}

func TestUnstartedNotifierNotifiesNothing(t *testing.T) {
	m := New(&browsing.Container{}, Options{})
	obs := &countingObserver{}
	m.AddObserver(obs)

	n := m.newBatchNotifier(m.Root())
	n.Done()

	assert.Zero(t, obs.begins)
	assert.Zero(t, obs.ends)
	assert.Zero(t, obs.changed)
}

func TestQuotaNodeIsSingleton(t *testing.T) {
	first := &browsing.QuotaInfo{Host: "example.com", TemporaryUsage: 1}
	second := &browsing.QuotaInfo{Host: "example.com", TemporaryUsage: 2}
	c := &browsing.Container{Quotas: []*browsing.QuotaInfo{first, second}}
	m := New(c, Options{})

	host := findHost(m, "example.com")
	require.NotNil(t, host)
	require.Len(t, host.Children(), 1)

	detail := host.Children()[0].Detail().(QuotaDetail)
	assert.Same(t, first, detail.Info, "later records never replace the leaf")
}

func TestFlashLSONodeIsSingleton(t *testing.T) {
	c := &browsing.Container{FlashLSODomains: []string{"example.com", "example.com"}}
	m := New(c, Options{})

	host := findHost(m, "example.com")
	require.NotNil(t, host)
	assert.Len(t, host.Children(), 1)
}

type staticPolicy struct {
	entities []string
}

func (p staticPolicy) ProtectingEntitiesForOrigin(origin string) []string {
	return p.entities
}

func TestProtectingEntities(t *testing.T) {
	c := fullContainer()
	m := New(c, Options{Policy: staticPolicy{entities: []string{"guard"}}})

	db := collectByType(m.Root(), TypeDatabase)
	require.Len(t, db, 1)
	assert.Equal(t, []string{"guard"}, m.ProtectingEntities(db[0]))

	// Cookies, quota, certs and flash data are never protectable.
	for _, unprotected := range []NodeType{TypeCookie, TypeQuota, TypeServerBoundCert, TypeFlashLSO} {
		nodes := collectByType(m.Root(), unprotected)
		require.Len(t, nodes, 1, unprotected.String())
		assert.Nil(t, m.ProtectingEntities(nodes[0]), unprotected.String())
	}
}

func TestProtectingEntitiesWithoutPolicy(t *testing.T) {
	c := fullContainer()
	m := New(c, Options{})

	db := collectByType(m.Root(), TypeDatabase)
	require.Len(t, db, 1)
	assert.Nil(t, m.ProtectingEntities(db[0]))
}

func TestRemoveObserver(t *testing.T) {
	m := New(&browsing.Container{}, Options{})
	obs := &countingObserver{}
	m.AddObserver(obs)
	m.RemoveObserver(obs)

	m.DeleteAllStoredObjects()

	assert.Zero(t, obs.begins)
	assert.Zero(t, obs.ends)
}
