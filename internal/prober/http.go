package prober

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/veriscan-io/veriscan-cli/internal/evidence"
	consts "github.com/veriscan-io/veriscan-cli/internal/shared/constants"
)

// HTTPProber performs a single bounded-timeout GET against a resolved target
// URL and extracts structural signals into evidence.
type HTTPProber struct {
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client // optional; tests inject their own
}

func (p *HTTPProber) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return consts.CrawlTimeout
}

func (p *HTTPProber) userAgent() string {
	if p.UserAgent != "" {
		return p.UserAgent
	}
	return consts.CrawlUserAgent
}

func (p *HTTPProber) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return &http.Client{}
}

// Crawl fetches the target and returns evidence. It never returns an error:
// transport failures land in the evidence errors group and timeouts abort
// the in-flight request.
func (p *HTTPProber) Crawl(ctx context.Context, target string) *evidence.Evidence {
	ev := evidence.New(target, http.MethodGet, "CRAWL")
	budget := p.timeout()
	ev.Fetch = &evidence.Fetch{
		FetchedAt: time.Now().UTC(),
		TimeoutMs: budget.Milliseconds(),
	}

	reqCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		ev.SetError(evidence.CodeFetchError, "create request: "+err.Error())
		return ev
	}
	req.Header.Set("User-Agent", p.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := p.client().Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || reqCtx.Err() == context.DeadlineExceeded {
			ev.SetError(evidence.CodeTimeout, "request exceeded "+budget.String())
		} else {
			ev.SetError(evidence.CodeFetchError, err.Error())
		}
		return ev
	}
	defer resp.Body.Close()

	ev.Fetch.HTTPStatus = resp.StatusCode
	ev.Fetch.ContentType = resp.Header.Get("Content-Type")
	finalURL := resp.Request.URL.String()
	ev.Fetch.FinalURL = finalURL
	if finalURL != target {
		ev.Fetch.RedirectChain = []string{target, finalURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, consts.CrawlBodyLimitBytes))
	if err != nil {
		// Partial body is acceptable; extraction works on what arrived.
		if len(body) == 0 {
			ev.SetError(evidence.CodeFetchError, "read body: "+err.Error())
			return ev
		}
	}

	contentType := strings.ToLower(ev.Fetch.ContentType)
	switch {
	case strings.Contains(contentType, "text/html"):
		extractHTML(ev, string(body))
		if isSocialPlatformHost(hostOf(finalURL)) {
			if reason := detectBlock(resp.StatusCode, string(body)); reason != "" {
				ev.SetBlockReason(reason)
			}
		}
	case strings.Contains(contentType, "text/xml") || strings.Contains(contentType, "application/xml"):
		extractSitemap(ev, string(body))
	case isRobotsTarget(target) && resp.StatusCode == http.StatusOK:
		extractRobots(ev, string(body))
	}

	return ev
}

func hostOf(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func isRobotsTarget(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return strings.HasSuffix(u.Path, "/robots.txt")
}
