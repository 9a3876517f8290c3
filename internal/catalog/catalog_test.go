package catalog

import (
	"testing"

	"github.com/veriscan-io/veriscan-cli/internal/domain/surface"
)

func TestDefaultKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range Default() {
		if rule.Key == "" {
			t.Fatal("catalog contains a rule with an empty key")
		}
		if seen[rule.Key] {
			t.Errorf("duplicate surface key %s", rule.Key)
		}
		seen[rule.Key] = true
	}
}

func TestDefaultRulesAreComplete(t *testing.T) {
	for _, rule := range Default() {
		if rule.Label == "" {
			t.Errorf("%s: missing label", rule.Key)
		}
		if rule.Category == "" {
			t.Errorf("%s: missing category", rule.Key)
		}
		if rule.Tier == "" {
			t.Errorf("%s: missing tier", rule.Key)
		}
		if rule.Provider == "" {
			t.Errorf("%s: missing provider", rule.Key)
		}
		if rule.RequiresManual() && rule.PlaybookID == "" && rule.Provider == surface.ProviderManualReview {
			t.Errorf("%s: manual surface without a playbook", rule.Key)
		}
	}
}

func TestDefaultKindResolution(t *testing.T) {
	kinds := make(map[string]surface.Kind)
	for _, rule := range Default() {
		kinds[rule.Key] = rule.Kind
	}

	tests := []struct {
		key       string
		wantClass surface.Class
	}{
		{"ROBOTS_TXT", surface.ClassWellKnownPath},
		{"SECURITY_TXT", surface.ClassWellKnownPath},
		{"APP_ADS_TXT", surface.ClassWellKnownPath},
		{"HOMEPAGE", surface.ClassHomepage},
		{"SPF_RECORD", surface.ClassDNSRecord},
		{"DMARC_RECORD", surface.ClassDNSRecord},
		{"LINKEDIN_COMPANY", surface.ClassProfile},
		{"X_PROFILE", surface.ClassProfile},
		{"TRUSTPILOT_PROFILE", surface.ClassProfile},
	}

	for _, tt := range tests {
		kind, ok := kinds[tt.key]
		if !ok {
			t.Errorf("catalog has no rule %s", tt.key)
			continue
		}
		if kind.Class != tt.wantClass {
			t.Errorf("%s: class = %v, want %v", tt.key, kind.Class, tt.wantClass)
		}
	}

	// Paths and record types resolve to the right concrete targets.
	if kinds["APP_ADS_TXT"].Path != "/app-ads.txt" {
		t.Errorf("APP_ADS_TXT path = %q", kinds["APP_ADS_TXT"].Path)
	}
	if kinds["ADS_TXT"].Path != "/ads.txt" {
		t.Errorf("ADS_TXT path = %q", kinds["ADS_TXT"].Path)
	}
	if kinds["DMARC_RECORD"].RecordType != "DMARC" {
		t.Errorf("DMARC_RECORD recordType = %q", kinds["DMARC_RECORD"].RecordType)
	}
	if kinds["DOMAIN_VERIFICATION_TXT"].RecordType != "TXT" {
		t.Errorf("DOMAIN_VERIFICATION_TXT recordType = %q", kinds["DOMAIN_VERIFICATION_TXT"].RecordType)
	}
}

func TestDNSRulesUseDNSProvider(t *testing.T) {
	for _, rule := range Default() {
		if rule.Kind.Class == surface.ClassDNSRecord && rule.Provider != surface.ProviderDNS {
			t.Errorf("%s: DNS-classified rule with provider %s", rule.Key, rule.Provider)
		}
		if rule.Provider == surface.ProviderDNS && rule.Kind.Class != surface.ClassDNSRecord {
			t.Errorf("%s: DNS provider without DNS kind", rule.Key)
		}
	}
}

func TestExternalProvidersAreNeverCrawled(t *testing.T) {
	for _, rule := range Default() {
		if rule.Provider.IsExternal() && rule.Kind.Class == surface.ClassWellKnownPath {
			t.Errorf("%s: external surface classified as a crawl path", rule.Key)
		}
	}
}
