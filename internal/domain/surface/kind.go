package surface

import "strings"

// Class buckets surface keys by how their target URL is derived.
type Class int

const (
	ClassUnknown Class = iota
	// ClassProfile uses a URL taken from (or built from) a canonical entity
	// field: social handles, directory listings, knowledge-graph pages.
	ClassProfile
	// ClassWellKnownPath appends a deterministic path to the canonical domain.
	ClassWellKnownPath
	// ClassHomepage crawls the canonical domain root.
	ClassHomepage
	// ClassDNSRecord resolves a TXT record derived from the canonical domain.
	ClassDNSRecord
)

// Kind is the resolved variant for a rule. It replaces repeated substring
// scans of the surface key with a single classification at catalog load.
type Kind struct {
	Class       Class
	EntityField string // ClassProfile: the canonical entity field holding the URL source
	Path        string // ClassWellKnownPath: path under the canonical domain
	RecordType  string // ClassDNSRecord: DMARC, SPF, DKIM, MTA-STS, BIMI, TLS-RPT, TXT
}

// profilePatterns is evaluated in order; the first textual match wins. Short
// patterns that would collide with ordinary words ("x", "g2") match whole
// key tokens only.
var profilePatterns = []struct {
	pattern   string
	tokenOnly bool
	field     string
}{
	{pattern: "linkedin", field: "linkedin_slug"},
	{pattern: "youtube", field: "youtube_handle"},
	{pattern: "x", tokenOnly: true, field: "x_handle"},
	{pattern: "twitter", field: "x_handle"},
	{pattern: "instagram", field: "instagram_handle"},
	{pattern: "facebook", field: "facebook_page"},
	{pattern: "crunchbase", field: "crunchbase_url"},
	{pattern: "g2", tokenOnly: true, field: "g2_url"},
	{pattern: "capterra", field: "capterra_url"},
	{pattern: "trustpilot", field: "trustpilot_url"},
	{pattern: "clutch", field: "clutch_url"},
	{pattern: "wikipedia", field: "wikipedia_url"},
}

// wellKnownPaths is evaluated in order. "app-ads" must precede "ads".
var wellKnownPaths = []struct {
	pattern string
	path    string
}{
	{"robots", "/robots.txt"},
	{"sitemap", "/sitemap.xml"},
	{"llms", "/llms.txt"},
	{"security", "/.well-known/security.txt"},
	{"favicon", "/favicon.ico"},
	{"apple-touch", "/apple-touch-icon.png"},
	{"webmanifest", "/manifest.json"},
	{"manifest", "/manifest.json"},
	{"humans", "/humans.txt"},
	{"app-ads", "/app-ads.txt"},
	{"ads", "/ads.txt"},
	{"contact", "/contact"},
	{"about", "/about"},
	{"privacy", "/privacy"},
}

var dnsRecordTypes = []struct {
	pattern    string
	recordType string
}{
	{"dmarc", "DMARC"},
	{"spf", "SPF"},
	{"dkim", "DKIM"},
	{"mta", "MTA-STS"},
	{"bimi", "BIMI"},
	{"tls-rpt", "TLS-RPT"},
	{"tlsrpt", "TLS-RPT"},
}

// normalizeKey lowercases a surface key and unifies separators so pattern
// tables only deal with one spelling.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

func keyTokens(norm string) []string {
	return strings.FieldsFunc(norm, func(r rune) bool {
		return r == '-' || r == '.'
	})
}

func matchToken(tokens []string, pattern string) bool {
	for _, tok := range tokens {
		if tok == pattern {
			return true
		}
	}
	return false
}

// ClassifyKey resolves a rule's Kind from its key, check mode, and provider.
// Precedence is fixed: DNS, profile patterns, well-known paths, homepage.
// Keys that match nothing stay ClassUnknown and fall through to the
// resolver's canonical-input / default-homepage handling.
func ClassifyKey(key, checkMode string, provider Provider) Kind {
	norm := normalizeKey(key)
	tokens := keyTokens(norm)

	if provider == ProviderDNS || checkMode == ModeDNSTXT {
		recordType := "TXT"
		for _, d := range dnsRecordTypes {
			if strings.Contains(norm, d.pattern) {
				recordType = d.recordType
				break
			}
		}
		return Kind{Class: ClassDNSRecord, RecordType: recordType}
	}

	for _, p := range profilePatterns {
		if p.tokenOnly {
			if matchToken(tokens, p.pattern) {
				return Kind{Class: ClassProfile, EntityField: p.field}
			}
			continue
		}
		if strings.Contains(norm, p.pattern) {
			return Kind{Class: ClassProfile, EntityField: p.field}
		}
	}

	for _, w := range wellKnownPaths {
		if strings.Contains(norm, w.pattern) {
			return Kind{Class: ClassWellKnownPath, Path: w.path}
		}
	}

	if checkMode == ModeHomepage || checkMode == ModeSiteCrawl ||
		strings.Contains(norm, "homepage") || strings.Contains(norm, "website") {
		return Kind{Class: ClassHomepage}
	}

	return Kind{Class: ClassUnknown}
}

// Normalize fills in the rule's Kind. Catalog loaders call this once per rule.
func (r *Rule) Normalize() {
	r.Kind = ClassifyKey(r.Key, r.CheckMode, r.Provider)
}
