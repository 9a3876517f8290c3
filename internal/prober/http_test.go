package prober

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/veriscan-io/veriscan-cli/internal/evidence"
)

const orgPage = `<!DOCTYPE html>
<html>
<head>
<title>Acme Corp - Industrial Anvils</title>
<meta name="description" content="Acme Corp makes anvils.">
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"Organization","name":"Acme Corp",
 "sameAs":["https://www.linkedin.com/company/acme-corp","https://x.com/acme"]}
</script>
</head>
<body><h1>Acme</h1></body>
</html>`

func TestCrawlExtractsHTMLSignals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, orgPage)
	}))
	defer srv.Close()

	p := &HTTPProber{}
	ev := p.Crawl(context.Background(), srv.URL)

	if ev.Errors != nil && ev.Errors.Code != "" {
		t.Fatalf("unexpected error: %+v", ev.Errors)
	}
	if ev.Fetch.HTTPStatus != http.StatusOK {
		t.Fatalf("status = %d, want 200", ev.Fetch.HTTPStatus)
	}
	if ev.Extracted == nil {
		t.Fatal("expected extracted signals")
	}
	if ev.Extracted.PageTitle != "Acme Corp - Industrial Anvils" {
		t.Errorf("title = %q", ev.Extracted.PageTitle)
	}
	if ev.Extracted.MetaDescription != "Acme Corp makes anvils." {
		t.Errorf("meta description = %q", ev.Extracted.MetaDescription)
	}
	if len(ev.Extracted.SchemaTypes) != 1 || ev.Extracted.SchemaTypes[0] != "Organization" {
		t.Errorf("schema types = %v", ev.Extracted.SchemaTypes)
	}
	if ev.Extracted.SameAsCount == 0 {
		t.Error("expected sameAs links to be counted")
	}
	if !ev.HasRichSignals() {
		t.Error("expected rich signals")
	}
	if ev.Integrity == nil || ev.Integrity.ContentHash == "" {
		t.Error("expected a content hash")
	}
}

func TestCrawlRobots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "User-agent: *\nDisallow: /admin\nSitemap: https://acme.example/sitemap.xml\n")
	}))
	defer srv.Close()

	p := &HTTPProber{}
	ev := p.Crawl(context.Background(), srv.URL+"/robots.txt")

	if ev.Extracted == nil {
		t.Fatal("expected extracted artifacts")
	}
	if v, ok := ev.Extracted.DetectedArtifacts["hasSitemap"].(bool); !ok || !v {
		t.Errorf("hasSitemap = %v", ev.Extracted.DetectedArtifacts["hasSitemap"])
	}
	if v, ok := ev.Extracted.DetectedArtifacts["hasDisallow"].(bool); !ok || !v {
		t.Errorf("hasDisallow = %v", ev.Extracted.DetectedArtifacts["hasDisallow"])
	}
}

func TestCrawlEmptyRobotsHasNoRichSignals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "# intentionally empty\n")
	}))
	defer srv.Close()

	p := &HTTPProber{}
	ev := p.Crawl(context.Background(), srv.URL+"/robots.txt")

	if ev.Extracted == nil {
		t.Fatal("expected extracted artifacts")
	}
	if v, ok := ev.Extracted.DetectedArtifacts["hasSitemap"].(bool); !ok || v {
		t.Errorf("hasSitemap = %v", ev.Extracted.DetectedArtifacts["hasSitemap"])
	}
	if ev.HasRichSignals() {
		t.Error("a robots.txt without directives must not count as a rich signal")
	}
}

func TestCrawlSitemap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<?xml version="1.0"?><urlset><url><loc>https://a/1</loc></url><url><loc>https://a/2</loc></url></urlset>`)
	}))
	defer srv.Close()

	p := &HTTPProber{}
	ev := p.Crawl(context.Background(), srv.URL+"/sitemap.xml")

	if ev.Extracted == nil {
		t.Fatal("expected extracted artifacts")
	}
	if n, ok := ev.Extracted.DetectedArtifacts["urlCount"].(int); !ok || n != 2 {
		t.Errorf("urlCount = %v", ev.Extracted.DetectedArtifacts["urlCount"])
	}
}

func TestCrawlEmptySitemapHasNoRichSignals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<?xml version="1.0"?><urlset></urlset>`)
	}))
	defer srv.Close()

	p := &HTTPProber{}
	ev := p.Crawl(context.Background(), srv.URL+"/sitemap.xml")

	if ev.Extracted == nil {
		t.Fatal("expected extracted artifacts")
	}
	if n, ok := ev.Extracted.DetectedArtifacts["urlCount"].(int); !ok || n != 0 {
		t.Errorf("urlCount = %v", ev.Extracted.DetectedArtifacts["urlCount"])
	}
	if ev.HasRichSignals() {
		t.Error("a sitemap with zero URLs must not count as a rich signal")
	}
}

func TestCrawlTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p := &HTTPProber{Timeout: 20 * time.Millisecond}
	ev := p.Crawl(context.Background(), srv.URL)

	if ev.Errors == nil || ev.Errors.Code != evidence.CodeTimeout {
		t.Fatalf("expected TIMEOUT, got %+v", ev.Errors)
	}
}

func TestCrawlConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	p := &HTTPProber{Timeout: time.Second}
	ev := p.Crawl(context.Background(), target)

	if ev.Errors == nil || ev.Errors.Code != evidence.CodeFetchError {
		t.Fatalf("expected FETCH_ERROR, got %+v", ev.Errors)
	}
}

func TestCrawlRecordsRedirectChain(t *testing.T) {
	var finalURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, finalURL, http.StatusMovedPermanently)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><head><title>done</title></head></html>")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	finalURL = srv.URL + "/end"

	p := &HTTPProber{}
	ev := p.Crawl(context.Background(), srv.URL+"/start")

	if ev.Fetch.FinalURL != finalURL {
		t.Errorf("finalUrl = %q, want %q", ev.Fetch.FinalURL, finalURL)
	}
	if len(ev.Fetch.RedirectChain) != 2 {
		t.Errorf("redirectChain = %v", ev.Fetch.RedirectChain)
	}
}

func TestDetectBlock(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"forbidden", 403, "", evidence.BlockForbidden},
		{"unauthorized", 401, "", evidence.BlockForbidden},
		{"rate limited", 429, "", evidence.BlockRateLimited},
		{"legal", 451, "", evidence.BlockLegal},
		{"captcha body", 200, "please complete the captcha to continue", evidence.BlockCaptcha},
		{"login wall", 200, "Sign in to continue to LinkedIn", evidence.BlockLoginRequired},
		{"consent wall", 200, "before you continue, accept cookies to proceed", evidence.BlockConsentWall},
		{"clean page", 200, "<html>hello</html>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectBlock(tt.status, tt.body); got != tt.want {
				t.Errorf("detectBlock(%d) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestIsSocialPlatformHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"www.linkedin.com", true},
		{"linkedin.com", true},
		{"x.com", true},
		{"www.trustpilot.com", true},
		{"acme.example", false},
		{"notlinkedin.example", false},
	}

	for _, tt := range tests {
		if got := isSocialPlatformHost(tt.host); got != tt.want {
			t.Errorf("isSocialPlatformHost(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

func TestIsRobotsTarget(t *testing.T) {
	u, _ := url.Parse("https://acme.example/robots.txt")
	if !isRobotsTarget(u.String()) {
		t.Error("expected robots.txt target to be recognized")
	}
	if isRobotsTarget("https://acme.example/sitemap.xml") {
		t.Error("sitemap should not be a robots target")
	}
}
