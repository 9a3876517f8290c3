package prober

import (
	"net/http"
	"strings"

	"github.com/veriscan-io/veriscan-cli/internal/evidence"
)

// socialPlatformHosts are hosts known to gate anonymous crawlers behind
// captchas, consent walls, or login prompts. A block from one of these is
// evidence of presence, not absence.
var socialPlatformHosts = []string{
	"linkedin.com",
	"youtube.com",
	"x.com",
	"twitter.com",
	"instagram.com",
	"facebook.com",
	"crunchbase.com",
	"g2.com",
	"capterra.com",
	"trustpilot.com",
	"clutch.co",
	"wikipedia.org",
}

func isSocialPlatformHost(host string) bool {
	host = strings.ToLower(host)
	for _, platform := range socialPlatformHosts {
		if host == platform || strings.HasSuffix(host, "."+platform) {
			return true
		}
	}
	return false
}

// loginMarkers are HTML fragments platforms serve instead of profile content
// when they want a signed-in session.
var loginMarkers = []string{
	"authwall",
	"sign in to continue",
	"log in to continue",
	"login to continue",
	"you must log in",
}

var consentMarkers = []string{
	"consent to continue",
	"before you continue",
	"accept all cookies to continue",
	"cookie consent required",
}

// detectBlock classifies a blocking response. Status codes are checked before
// body markers; an empty return means no block was detected.
func detectBlock(status int, body string) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return evidence.BlockForbidden
	case http.StatusTooManyRequests:
		return evidence.BlockRateLimited
	case http.StatusUnavailableForLegalReasons:
		return evidence.BlockLegal
	}

	lower := strings.ToLower(body)
	if strings.Contains(lower, "captcha") {
		return evidence.BlockCaptcha
	}
	for _, marker := range loginMarkers {
		if strings.Contains(lower, marker) {
			return evidence.BlockLoginRequired
		}
	}
	for _, marker := range consentMarkers {
		if strings.Contains(lower, marker) {
			return evidence.BlockConsentWall
		}
	}
	return ""
}
