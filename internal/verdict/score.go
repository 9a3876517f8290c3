package verdict

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	"github.com/veriscan-io/veriscan-cli/internal/evidence"
)

// Assessment is the scorer's output: a bounded confidence value plus the
// signal lists that justify it to a human auditor.
type Assessment struct {
	Confidence      int
	MatchSignals    []string
	MismatchSignals []string
}

// Confidence anchors.
const (
	confidenceFailed  = 20 // ERROR, ABSENT
	confidencePending = 30 // needs input, manual, provider, queued
	confidenceBase    = 50
)

// Score rates how confidently the evidence ties the surface to the canonical
// entity. Pure function; identical inputs yield identical assessments.
func Score(ev *evidence.Evidence, ent *entity.CanonicalEntity, status scan.ResultStatus) Assessment {
	switch status {
	case scan.StatusError, scan.StatusAbsent:
		return Assessment{Confidence: confidenceFailed}
	case scan.StatusNeedsEntityInput, scan.StatusManualRequired, scan.StatusRequiresProvider, scan.StatusQueued, scan.StatusSkipped:
		return Assessment{Confidence: confidencePending}
	}

	a := Assessment{Confidence: confidenceBase}
	if ev == nil {
		return a
	}

	// Domain match only applies to HTTP evidence; DNS queries are derived
	// from the canonical domain and carry no fetched hostname.
	if ev.Fetch != nil && ev.Fetch.FinalURL != "" && ent != nil && ent.Web.CanonicalDomain != "" {
		if hostMatchesDomain(hostOf(ev.Fetch.FinalURL), ent.Web.CanonicalDomain) {
			a.Confidence += 30
			a.MatchSignals = append(a.MatchSignals, "domain_match")
		} else {
			a.MismatchSignals = append(a.MismatchSignals, "domain_mismatch")
		}
	}

	if ev.Extracted != nil {
		if ent != nil && titleOverlapsName(ev.Extracted.PageTitle, ent.LegalName) {
			a.Confidence += 10
			a.MatchSignals = append(a.MatchSignals, "title_contains_legal_name")
		}
		if len(ev.Extracted.SchemaTypes) > 0 {
			a.Confidence += 10
			a.MatchSignals = append(a.MatchSignals, "schema_types_present")
		}
		if ev.Extracted.SameAsCount > 0 {
			a.Confidence += 10
			a.MatchSignals = append(a.MatchSignals, "sameas_links_present")
		}
	}

	if ev.DNS != nil {
		if boolFlag(ev.DNS.ParsedFlags, "isStrict") || boolFlag(ev.DNS.ParsedFlags, "hardFail") {
			a.Confidence += 20
			a.MatchSignals = append(a.MatchSignals, "dns_strict_policy")
		}
	}

	if a.Confidence > 100 {
		a.Confidence = 100
	}
	if a.Confidence < 0 {
		a.Confidence = 0
	}
	return a
}

func hostOf(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// hostMatchesDomain reports whether host equals or sits under the canonical
// domain. When the direct check fails, the registrable domains (eTLD+1) are
// compared so a canonical domain stored as "www.example.com" still matches
// "example.com".
func hostMatchesDomain(host, domain string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	domain = strings.ToLower(strings.TrimSuffix(domain, "."))
	if host == "" || domain == "" {
		return false
	}
	if host == domain || strings.HasSuffix(host, "."+domain) {
		return true
	}

	hostReg, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return false
	}
	domainReg, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return false
	}
	return hostReg == domainReg
}

// titleOverlapsName checks for textual overlap between a page title and the
// entity's legal name: the full name as a substring, or any significant name
// token.
func titleOverlapsName(title, legalName string) bool {
	title = strings.ToLower(strings.TrimSpace(title))
	legalName = strings.ToLower(strings.TrimSpace(legalName))
	if title == "" || legalName == "" {
		return false
	}
	if strings.Contains(title, legalName) {
		return true
	}
	for _, token := range strings.Fields(legalName) {
		if len(token) > 3 && strings.Contains(title, token) {
			return true
		}
	}
	return false
}
