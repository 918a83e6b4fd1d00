package treemodel

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// fileOriginKey is the shared host title and sort key for every file://
// origin. All file URLs collapse into one host row.
const fileOriginKey = "file://"

// TitleForURL returns the display title of the host row a URL groups under:
// the placeholder for file URLs, otherwise the bare host.
func TitleForURL(u *url.URL) string {
	if u.Scheme == "file" {
		return fileOriginKey
	}
	return u.Hostname()
}

// CanonicalizeHost maps a URL to the sort key used to order host rows. The
// registrable domain comes first, then the remaining subdomain labels in
// reverse order, e.g. 1.mail.google.com becomes google.com.mail.1, so a
// plain string comparison orders hosts by registrable domain. Leading dots
// are ignored: ".google.com" canonicalizes the same as "google.com". Hosts
// with no registrable domain (IP literals, single labels, unknown TLDs) are
// returned unchanged. The key is ordering-only and never displayed.
func CanonicalizeHost(u *url.URL) string {
	if u.Scheme == "file" {
		return fileOriginKey
	}

	host := u.Hostname()
	domain := registrableDomain(host)
	if domain == "" {
		return host
	}

	pos := strings.LastIndex(host, domain)
	// The host may itself be the registrable domain.
	if pos <= 0 {
		return host
	}

	var b strings.Builder
	b.WriteString(domain)

	// Walk the labels left of the registrable domain right to left.
	// pos now indexes the dot (or leading dot) before the domain; a
	// leading dot is skipped entirely.
	pos--
	for pos > 0 {
		b.WriteByte('.')
		nextDot := strings.LastIndexByte(host[:pos], '.')
		if nextDot < 0 {
			b.WriteString(host[:pos])
			break
		}
		b.WriteString(host[nextDot+1 : pos])
		pos = nextDot
	}
	return b.String()
}

// registrableDomain returns the eTLD+1 of host under ICANN registries, or ""
// when none exists (IP literal, single label, unknown TLD, or host is itself
// a registry).
func registrableDomain(host string) string {
	if host == "" || net.ParseIP(host) != nil {
		return ""
	}

	suffix, icann := publicsuffix.PublicSuffix(host)

	// Private registry entries (e.g. blogspot.com) are not registries
	// here; climb to the ICANN suffix beneath them.
	for !icann {
		dot := strings.IndexByte(suffix, '.')
		if dot < 0 {
			// Unknown TLD.
			return ""
		}
		suffix, icann = publicsuffix.PublicSuffix(suffix[dot+1:])
	}

	if len(suffix) >= len(host) {
		return ""
	}

	// One label beyond the suffix.
	rest := host[:len(host)-len(suffix)-1]
	dot := strings.LastIndexByte(rest, '.')
	return host[dot+1:]
}
