package verdict

import (
	"testing"

	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	"github.com/veriscan-io/veriscan-cli/internal/evidence"
)

func httpEvidence(status int) *evidence.Evidence {
	ev := evidence.New("https://acme.example", "GET", "CRAWL")
	ev.Fetch = &evidence.Fetch{HTTPStatus: status, FinalURL: "https://acme.example"}
	return ev
}

func richEvidence(status int) *evidence.Evidence {
	ev := httpEvidence(status)
	ev.Extracted = &evidence.Extracted{SchemaTypes: []string{"Organization"}}
	return ev
}

func TestClassifyHTTP(t *testing.T) {
	tests := []struct {
		name     string
		ev       *evidence.Evidence
		isSocial bool
		want     scan.ResultStatus
	}{
		{"nil evidence", nil, false, scan.StatusError},
		{"rich 200 confirms", richEvidence(200), false, scan.StatusPresentConfirmed},
		{"bare 200 is partial", httpEvidence(200), false, scan.StatusPresentPartial},
		{"bare 204 is partial", httpEvidence(204), false, scan.StatusPresentPartial},
		{"404 is absent", httpEvidence(404), false, scan.StatusAbsent},
		{"410 is absent", httpEvidence(410), false, scan.StatusAbsent},
		{"500 is weak presence", httpEvidence(500), false, scan.StatusPresentPartial},
		{"403 off-platform is weak presence", httpEvidence(403), false, scan.StatusPresentPartial},
		{"403 on social needs review", httpEvidence(403), true, scan.StatusManualRequired},
		{"401 on social needs review", httpEvidence(401), true, scan.StatusManualRequired},
		{"404 on social is still absent", httpEvidence(404), true, scan.StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev, tt.isSocial); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Only artifacts that were actually found upgrade a 2xx to confirmed. A
// robots.txt carrying a Sitemap or Disallow directive is strong presence; one
// that answers 200 with neither proves only that something responded, the
// same as a bare homepage.
func TestClassifyArtifactsMustBeTruthy(t *testing.T) {
	artifactEv := func(artifacts map[string]any) *evidence.Evidence {
		ev := httpEvidence(200)
		ev.Extracted = &evidence.Extracted{DetectedArtifacts: artifacts}
		return ev
	}

	tests := []struct {
		name      string
		artifacts map[string]any
		want      scan.ResultStatus
	}{
		{"robots with directives", map[string]any{"hasSitemap": true, "hasDisallow": true}, scan.StatusPresentConfirmed},
		{"empty robots", map[string]any{"hasSitemap": false, "hasDisallow": false}, scan.StatusPresentPartial},
		{"populated sitemap", map[string]any{"urlCount": 2}, scan.StatusPresentConfirmed},
		{"empty sitemap", map[string]any{"urlCount": 0}, scan.StatusPresentPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(artifactEv(tt.artifacts), false); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

// A blocked social profile is never classified ABSENT, whatever the body
// looked like.
func TestClassifyBlockedSocialNeverAbsent(t *testing.T) {
	for _, reason := range []string{
		evidence.BlockCaptcha,
		evidence.BlockLoginRequired,
		evidence.BlockConsentWall,
		evidence.BlockRateLimited,
	} {
		ev := httpEvidence(200)
		ev.SetBlockReason(reason)

		got := Classify(ev, true)
		if got != scan.StatusManualRequired {
			t.Errorf("block %s: Classify() = %s, want MANUAL_REQUIRED", reason, got)
		}
	}
}

func TestClassifyTransportErrors(t *testing.T) {
	timeout := evidence.New("https://acme.example", "GET", "CRAWL")
	timeout.SetError(evidence.CodeTimeout, "request exceeded 15s")
	if got := Classify(timeout, false); got != scan.StatusError {
		t.Errorf("timeout: got %s, want ERROR", got)
	}

	fetchErr := evidence.New("https://acme.example", "GET", "CRAWL")
	fetchErr.SetError(evidence.CodeFetchError, "connection refused")
	if got := Classify(fetchErr, false); got != scan.StatusError {
		t.Errorf("fetch error: got %s, want ERROR", got)
	}

	noStatus := evidence.New("https://acme.example", "GET", "CRAWL")
	noStatus.Fetch = &evidence.Fetch{}
	if got := Classify(noStatus, false); got != scan.StatusError {
		t.Errorf("no status: got %s, want ERROR", got)
	}
}

func TestClassifyDNS(t *testing.T) {
	dnsEv := func(flags map[string]any) *evidence.Evidence {
		ev := evidence.New("_dmarc.acme.example", "TXT", "DNS")
		ev.DNS = &evidence.DNS{RecordType: "DMARC", QueriedHost: "_dmarc.acme.example", ParsedFlags: flags}
		return ev
	}

	tests := []struct {
		name  string
		ev    *evidence.Evidence
		want  scan.ResultStatus
	}{
		{"strict policy confirms", dnsEv(map[string]any{"exists": true, "isStrict": true}), scan.StatusPresentConfirmed},
		{"hard fail confirms", dnsEv(map[string]any{"exists": true, "hardFail": true}), scan.StatusPresentConfirmed},
		{"lax record is partial", dnsEv(map[string]any{"exists": true, "isStrict": false}), scan.StatusPresentPartial},
		{"no record is absent", dnsEv(map[string]any{"exists": false}), scan.StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev, false); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}

	nx := evidence.New("_dmarc.acme.example", "TXT", "DNS")
	nx.DNS = &evidence.DNS{RecordType: "DMARC"}
	nx.SetError(evidence.CodeNXDomain, "no such host")
	if got := Classify(nx, false); got != scan.StatusAbsent {
		t.Errorf("NXDOMAIN: got %s, want ABSENT", got)
	}

	dnsFail := evidence.New("_dmarc.acme.example", "TXT", "DNS")
	dnsFail.DNS = &evidence.DNS{RecordType: "DMARC"}
	dnsFail.SetError(evidence.CodeDNSError, "servfail")
	if got := Classify(dnsFail, false); got != scan.StatusError {
		t.Errorf("DNS_ERROR: got %s, want ERROR", got)
	}
}

// Classification is deterministic: the same evidence always yields the same
// status.
func TestClassifyDeterministic(t *testing.T) {
	ev := richEvidence(200)
	first := Classify(ev, false)
	for i := 0; i < 10; i++ {
		if got := Classify(ev, false); got != first {
			t.Fatalf("run %d: got %s, first was %s", i, got, first)
		}
	}
}
