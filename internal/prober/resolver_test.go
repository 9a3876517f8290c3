package prober

import (
	"reflect"
	"testing"

	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	"github.com/veriscan-io/veriscan-cli/internal/domain/surface"
)

func ruleWithKind(key, checkMode string, provider surface.Provider) surface.Rule {
	r := surface.Rule{
		Key:       key,
		Provider:  provider,
		CheckMode: checkMode,
		Enabled:   true,
	}
	r.Normalize()
	return r
}

func testEntity() *entity.CanonicalEntity {
	return &entity.CanonicalEntity{
		LegalName: "Acme Corp",
		Web: entity.Web{
			CanonicalDomain: "acme.example",
		},
		Social: entity.Social{
			LinkedInSlug:  "acme-corp",
			YouTubeHandle: "@acmecorp",
			XHandle:       "acme",
		},
		Directories: entity.Directories{
			TrustpilotURL: "https://www.trustpilot.com/review/acme.example",
		},
	}
}

func TestResolveTargetNilEntity(t *testing.T) {
	rule := ruleWithKind("HOMEPAGE", surface.ModeHomepage, surface.ProviderCrawl)

	res := ResolveTarget(nil, rule)
	if res.URL != "" {
		t.Fatalf("expected no URL, got %q", res.URL)
	}
	if !reflect.DeepEqual(res.MissingInputs, []string{entity.FieldEntityProfile}) {
		t.Fatalf("expected missing entity_profile, got %v", res.MissingInputs)
	}
}

func TestResolveTargetNoDomain(t *testing.T) {
	rule := ruleWithKind("ROBOTS_TXT", surface.ModeWellKnownPath, surface.ProviderCrawl)
	ent := &entity.CanonicalEntity{LegalName: "Acme Corp"}

	res := ResolveTarget(ent, rule)
	if !reflect.DeepEqual(res.MissingInputs, []string{entity.FieldCanonicalDomain}) {
		t.Fatalf("expected missing canonical_domain, got %v", res.MissingInputs)
	}
}

func TestResolveTargetPrecedence(t *testing.T) {
	ent := testEntity()

	tests := []struct {
		name    string
		rule    surface.Rule
		wantURL string
	}{
		{
			name:    "well-known path",
			rule:    ruleWithKind("ROBOTS_TXT", surface.ModeWellKnownPath, surface.ProviderCrawl),
			wantURL: "https://acme.example/robots.txt",
		},
		{
			name:    "security txt under well-known",
			rule:    ruleWithKind("SECURITY_TXT", surface.ModeWellKnownPath, surface.ProviderCrawl),
			wantURL: "https://acme.example/.well-known/security.txt",
		},
		{
			name:    "homepage",
			rule:    ruleWithKind("HOMEPAGE", surface.ModeHomepage, surface.ProviderCrawl),
			wantURL: "https://acme.example",
		},
		{
			name:    "linkedin profile from slug",
			rule:    ruleWithKind("LINKEDIN_COMPANY", surface.ModeProfileURL, surface.ProviderCrawl),
			wantURL: "https://www.linkedin.com/company/acme-corp",
		},
		{
			// Profile patterns beat the ABOUT well-known path.
			name:    "linkedin about page stays a profile",
			rule:    ruleWithKind("LINKEDIN_ABOUT", surface.ModeProfileURL, surface.ProviderCrawl),
			wantURL: "https://www.linkedin.com/company/acme-corp",
		},
		{
			name:    "youtube handle strips at sign",
			rule:    ruleWithKind("YOUTUBE_CHANNEL", surface.ModeProfileURL, surface.ProviderCrawl),
			wantURL: "https://www.youtube.com/@acmecorp",
		},
		{
			name:    "x handle",
			rule:    ruleWithKind("X_PROFILE", surface.ModeProfileURL, surface.ProviderCrawl),
			wantURL: "https://x.com/acme",
		},
		{
			name:    "directory field used verbatim",
			rule:    ruleWithKind("TRUSTPILOT_PROFILE", surface.ModeProfileURL, surface.ProviderCrawl),
			wantURL: "https://www.trustpilot.com/review/acme.example",
		},
		{
			name:    "unclassified key defaults to homepage",
			rule:    ruleWithKind("BLOG_PRESENCE", surface.ModeSiteCrawl, surface.ProviderCrawl),
			wantURL: "https://acme.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveTarget(ent, tt.rule)
			if len(res.MissingInputs) > 0 {
				t.Fatalf("unexpected missing inputs %v", res.MissingInputs)
			}
			if res.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", res.URL, tt.wantURL)
			}
		})
	}
}

func TestResolveTargetMissingProfileField(t *testing.T) {
	ent := testEntity()
	rule := ruleWithKind("INSTAGRAM_PROFILE", surface.ModeProfileURL, surface.ProviderCrawl)

	res := ResolveTarget(ent, rule)
	if !reflect.DeepEqual(res.MissingInputs, []string{entity.FieldInstagramHandle}) {
		t.Fatalf("expected missing instagram_handle, got %v", res.MissingInputs)
	}
}

func TestResolveTargetCanonicalInputHint(t *testing.T) {
	ent := testEntity()
	rule := surface.Rule{
		Key:            "GOOGLE_REVIEWS",
		Provider:       surface.ProviderCrawl,
		CheckMode:      surface.ModeProvider,
		CanonicalInput: entity.FieldGooglePlaceID,
		Enabled:        true,
	}
	rule.Normalize()

	res := ResolveTarget(ent, rule)
	if !reflect.DeepEqual(res.MissingInputs, []string{entity.FieldGooglePlaceID}) {
		t.Fatalf("expected missing google_place_id, got %v", res.MissingInputs)
	}
}

func TestResolveTargetUnknownInput(t *testing.T) {
	ent := testEntity()
	rule := surface.Rule{
		Key:      "MYSTERY_SURFACE",
		Provider: surface.ProviderCrawl,
		Enabled:  true,
	}
	rule.Normalize()

	res := ResolveTarget(ent, rule)
	if !reflect.DeepEqual(res.MissingInputs, []string{"unknown_input"}) {
		t.Fatalf("expected unknown_input, got %v", res.MissingInputs)
	}
}
