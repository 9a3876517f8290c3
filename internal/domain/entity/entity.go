package entity

// CanonicalEntity is the verified identity record for a business. It is owned
// by the client-profile subsystem; the scan engine only reads it. A nil
// *CanonicalEntity is a legal state and forces entity-dependent surfaces into
// NEEDS_ENTITY_INPUT.
type CanonicalEntity struct {
	LegalName string `json:"legalName,omitempty"`
	BrandName string `json:"brandName,omitempty"`

	Web         Web         `json:"web"`
	Social      Social      `json:"social"`
	Directories Directories `json:"directories"`
	Knowledge   Knowledge   `json:"knowledge"`

	GooglePlaceID string `json:"googlePlaceId,omitempty"`
}

// Web holds the entity's canonical and allowed domains.
type Web struct {
	CanonicalDomain string   `json:"canonicalDomain,omitempty"`
	AllowedDomains  []string `json:"allowedDomains,omitempty"`
}

// Social holds profile handles, not full URLs.
type Social struct {
	LinkedInSlug    string `json:"linkedinSlug,omitempty"`
	YouTubeHandle   string `json:"youtubeHandle,omitempty"`
	XHandle         string `json:"xHandle,omitempty"`
	InstagramHandle string `json:"instagramHandle,omitempty"`
	FacebookPage    string `json:"facebookPage,omitempty"`
}

// Directories holds full profile URLs on third-party listing sites.
type Directories struct {
	CrunchbaseURL string `json:"crunchbaseUrl,omitempty"`
	G2URL         string `json:"g2Url,omitempty"`
	CapterraURL   string `json:"capterraUrl,omitempty"`
	TrustpilotURL string `json:"trustpilotUrl,omitempty"`
	ClutchURL     string `json:"clutchUrl,omitempty"`
}

// Knowledge holds knowledge-graph identifiers.
type Knowledge struct {
	WikidataQID  string `json:"wikidataQid,omitempty"`
	WikipediaURL string `json:"wikipediaUrl,omitempty"`
}

// Canonical input field names used in missing-input reporting and in surface
// rules' canonicalInputNeeded hints.
const (
	FieldEntityProfile   = "entity_profile"
	FieldCanonicalDomain = "canonical_domain"
	FieldLegalName       = "legal_name"
	FieldLinkedInSlug    = "linkedin_slug"
	FieldYouTubeHandle   = "youtube_handle"
	FieldXHandle         = "x_handle"
	FieldInstagramHandle = "instagram_handle"
	FieldFacebookPage    = "facebook_page"
	FieldCrunchbaseURL   = "crunchbase_url"
	FieldG2URL           = "g2_url"
	FieldCapterraURL     = "capterra_url"
	FieldTrustpilotURL   = "trustpilot_url"
	FieldClutchURL       = "clutch_url"
	FieldWikidataQID     = "wikidata_qid"
	FieldWikipediaURL    = "wikipedia_url"
	FieldGooglePlaceID   = "google_place_id"
)

// Field returns the raw value behind a canonical input field name, or ""
// when the name is unknown. Used to evaluate canonicalInputNeeded hints
// without reflection.
func (e *CanonicalEntity) Field(name string) string {
	if e == nil {
		return ""
	}
	switch name {
	case FieldCanonicalDomain:
		return e.Web.CanonicalDomain
	case FieldLegalName:
		return e.LegalName
	case FieldLinkedInSlug:
		return e.Social.LinkedInSlug
	case FieldYouTubeHandle:
		return e.Social.YouTubeHandle
	case FieldXHandle:
		return e.Social.XHandle
	case FieldInstagramHandle:
		return e.Social.InstagramHandle
	case FieldFacebookPage:
		return e.Social.FacebookPage
	case FieldCrunchbaseURL:
		return e.Directories.CrunchbaseURL
	case FieldG2URL:
		return e.Directories.G2URL
	case FieldCapterraURL:
		return e.Directories.CapterraURL
	case FieldTrustpilotURL:
		return e.Directories.TrustpilotURL
	case FieldClutchURL:
		return e.Directories.ClutchURL
	case FieldWikidataQID:
		return e.Knowledge.WikidataQID
	case FieldWikipediaURL:
		return e.Knowledge.WikipediaURL
	case FieldGooglePlaceID:
		return e.GooglePlaceID
	}
	return ""
}

// HasField reports whether the named canonical input is populated.
func (e *CanonicalEntity) HasField(name string) bool {
	return e.Field(name) != ""
}
