package surface

import "context"

// Provider identifies how a surface's evidence is gathered.
type Provider string

const (
	ProviderCrawl        Provider = "CRAWL"
	ProviderDNS          Provider = "DNS"
	ProviderManualReview Provider = "MANUAL_REVIEW"
	ProviderSERP         Provider = "SERP_PROVIDER"
	ProviderSuggest      Provider = "SUGGEST_PROVIDER"
	ProviderOwnerAPI     Provider = "OWNER_API"
)

// External-data providers cannot be executed by the engine itself; surfaces
// backed by them plan as REQUIRES_PROVIDER.
func (p Provider) IsExternal() bool {
	return p == ProviderSERP || p == ProviderSuggest || p == ProviderOwnerAPI
}

// Check modes hint how a CRAWL surface should be probed when the surface key
// alone is not enough.
const (
	ModeWellKnownPath = "WELL_KNOWN_PATH"
	ModeHomepage      = "HOMEPAGE"
	ModeSiteCrawl     = "SITE_CRAWL"
	ModeProfileURL    = "PROFILE_URL"
	ModeDNSTXT        = "DNS_TXT"
	ModeManual        = "MANUAL"
	ModeProvider      = "PROVIDER"
)

// Importance tiers used for reporting; the engine does not branch on them.
const (
	TierCritical    = "CRITICAL"
	TierRecommended = "RECOMMENDED"
	TierOptional    = "OPTIONAL"
)

// Rule is one row of the surface catalog. At most one active rule exists per
// surface key; disabled rules never reach the engine.
type Rule struct {
	Key            string   `json:"surfaceKey"`
	Label          string   `json:"label"`
	Category       string   `json:"category"`
	Tier           string   `json:"importanceTier"`
	Provider       Provider `json:"evidenceProvider"`
	CheckMode      string   `json:"checkMode,omitempty"`
	CanonicalInput string   `json:"canonicalInputNeeded,omitempty"`
	PlaybookID     string   `json:"playbookId,omitempty"`
	Enabled        bool     `json:"enabled"`

	// Kind is the normalized resolution class, computed once at catalog load
	// instead of re-scanning key substrings on every probe.
	Kind Kind `json:"-"`
}

// RequiresManual reports whether this surface cannot be automated: either a
// human playbook is linked or the rule itself is marked manual review.
func (r Rule) RequiresManual() bool {
	return r.PlaybookID != "" || r.Provider == ProviderManualReview || r.CheckMode == ModeManual
}

// IsDNS reports whether the surface probes DNS rather than HTTP.
func (r Rule) IsDNS() bool {
	return r.Provider == ProviderDNS || r.CheckMode == ModeDNSTXT
}

// Catalog supplies the enabled surface rules for a scan. Implementations
// must return at most one active rule per surface key, each with Kind
// resolved.
type Catalog interface {
	Enabled(ctx context.Context) ([]Rule, error)
}
