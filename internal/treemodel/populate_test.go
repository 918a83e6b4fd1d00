package treemodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/SiteData/internal/browsing"
)

func TestCookiesGroupUnderDomainAttribute(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{
			{Name: "A", Domain: ".mail.google.com"},
			{Name: "B", Domain: "mail.google.com"},
		},
	}
	m := New(c, Options{})

	// The leading dot is stripped, so both cookies share one host row.
	kids := m.Root().Children()
	require.Len(t, kids, 1)
	assert.Equal(t, "mail.google.com", kids[0].Title())
	assert.Len(t, collectByType(m.Root(), TypeCookie), 2)
}

func TestCookiesGroupBySource(t *testing.T) {
	cookies := []*browsing.Cookie{
		{Name: "A", Domain: ".google.com", Source: "https://accounts.google.com/signin"},
	}

	m := New(&browsing.Container{Cookies: cookies}, Options{GroupByCookieSource: true})
	require.Len(t, m.Root().Children(), 1)
	assert.Equal(t, "accounts.google.com", m.Root().Children()[0].Title())

	// Without the option the source URL is ignored.
	m = New(&browsing.Container{Cookies: cookies}, Options{})
	require.Len(t, m.Root().Children(), 1)
	assert.Equal(t, "google.com", m.Root().Children()[0].Title())
}

func TestCookieWithoutSourceFallsBackToDomain(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{{Name: "A", Domain: "example.com"}},
	}
	m := New(c, Options{GroupByCookieSource: true})

	require.Len(t, m.Root().Children(), 1)
	assert.Equal(t, "example.com", m.Root().Children()[0].Title())
}

func TestServerBoundCertOriginRepair(t *testing.T) {
	c := &browsing.Container{
		ServerBoundCerts: []*browsing.ServerBoundCert{
			// Bare domain identifier, not a URL.
			{ServerIdentifier: "example.com"},
			{ServerIdentifier: "https://secure.example.com"},
		},
	}
	m := New(c, Options{})

	kids := m.Root().Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "example.com", kids[0].Title())
	assert.Equal(t, "secure.example.com", kids[1].Title())
}

func TestPopulateSkipsUnparsableOrigins(t *testing.T) {
	c := &browsing.Container{
		Databases: []*browsing.DatabaseInfo{
			{Origin: "not a url", Name: "bad"},
			{Origin: "http://example.com", Name: "good"},
		},
	}
	m := New(c, Options{})

	require.Len(t, m.Root().Children(), 1)
	assert.Equal(t, "example.com", m.Root().Children()[0].Title())
	assert.Len(t, collectByType(m.Root(), TypeDatabase), 1)
}

func TestPopulateEmptyCollectionEmitsNoBatch(t *testing.T) {
	m := New(&browsing.Container{}, Options{})
	obs := &countingObserver{}
	m.AddObserver(obs)

	m.PopulateCookies()
	m.PopulateQuota()
	m.PopulateFlashLSO()

	assert.Zero(t, obs.begins)
	assert.Zero(t, obs.ends)
	assert.Zero(t, obs.added)
}

func TestPopulateEmitsOneBatchPerCategory(t *testing.T) {
	c := &browsing.Container{}
	m := New(c, Options{})
	obs := &countingObserver{}
	m.AddObserver(obs)

	c.Cookies = []*browsing.Cookie{{Name: "A", Domain: "example.com"}}
	m.PopulateCookies()

	assert.Equal(t, 1, obs.begins)
	assert.Equal(t, 1, obs.ends)
	// Host row, cookies container, one leaf.
	assert.Equal(t, 3, obs.added)
	assert.Equal(t, 1, obs.changed, "the root is reported changed when the batch closes")
}

func TestQuotaAndFlashFilterOnHost(t *testing.T) {
	c := &browsing.Container{
		Quotas: []*browsing.QuotaInfo{
			{Host: "quota.example.com", TemporaryUsage: 1},
			{Host: "other.net", TemporaryUsage: 2},
		},
		FlashLSODomains: []string{"flash.example.com", "other.org"},
	}
	m := New(c, Options{})
	require.Len(t, m.Root().Children(), 4)

	m.UpdateSearchResults("example.com")

	kids := m.Root().Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "flash.example.com", kids[0].Title())
	assert.Equal(t, "quota.example.com", kids[1].Title())
}

func TestLeavesKeepCollectionOrder(t *testing.T) {
	c := &browsing.Container{
		Cookies: []*browsing.Cookie{
			{Name: "Z", Domain: "example.com"},
			{Name: "A", Domain: "example.com"},
			{Name: "M", Domain: "example.com"},
		},
	}
	m := New(c, Options{})

	host := findHost(m, "example.com")
	require.NotNil(t, host)
	leaves := host.Children()[0].Children()
	require.Len(t, leaves, 3)
	assert.Equal(t, "Z", leaves[0].Title())
	assert.Equal(t, "A", leaves[1].Title())
	assert.Equal(t, "M", leaves[2].Title())
}
