package prober

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/veriscan-io/veriscan-cli/internal/evidence"
	consts "github.com/veriscan-io/veriscan-cli/internal/shared/constants"
)

// contentHash computes a cheap rolling hash (djb2) over at most the first
// HashSampleLimit characters. Good enough to detect content drift between
// scans; not a cryptographic integrity guarantee.
func contentHash(body string) string {
	if len(body) > consts.HashSampleLimit {
		body = body[:consts.HashSampleLimit]
	}
	var h uint32 = 5381
	for i := 0; i < len(body); i++ {
		h = h*33 + uint32(body[i])
	}
	return fmt.Sprintf("%08x", h)
}

func htmlSample(body string) string {
	if len(body) > consts.HTMLSampleLimit {
		return body[:consts.HTMLSampleLimit]
	}
	return body
}

// extractHTML pulls structural signals out of an HTML body: title, meta
// description, schema.org types from JSON-LD and microdata, and the count of
// literal sameAs occurrences.
func extractHTML(ev *evidence.Evidence, body string) {
	ev.Integrity = &evidence.Integrity{
		ContentHash: contentHash(body),
		HTMLSample:  htmlSample(body),
	}
	extracted := &evidence.Extracted{
		SameAsCount: strings.Count(body, "sameAs"),
	}
	ev.Extracted = extracted

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return
	}

	extracted.PageTitle = strings.TrimSpace(doc.Find("title").First().Text())
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		extracted.MetaDescription = strings.TrimSpace(desc)
	}

	seen := make(map[string]bool)
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		// Malformed embedded JSON is common in the wild; skip it silently.
		var payload any
		if err := json.Unmarshal([]byte(sel.Text()), &payload); err != nil {
			return
		}
		for _, typ := range jsonLDTypes(payload) {
			if !seen[typ] {
				seen[typ] = true
				extracted.SchemaTypes = append(extracted.SchemaTypes, typ)
			}
		}
	})

	doc.Find("[itemtype]").Each(func(_ int, sel *goquery.Selection) {
		itemtype, _ := sel.Attr("itemtype")
		if typ := trailingSegment(itemtype); typ != "" && !seen[typ] {
			seen[typ] = true
			extracted.SchemaTypes = append(extracted.SchemaTypes, typ)
		}
	})

	keyFields := make(map[string]string)
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok && og != "" {
		keyFields["ogTitle"] = og
	}
	if canonical, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && canonical != "" {
		keyFields["canonicalUrl"] = canonical
	}
	if len(keyFields) > 0 {
		extracted.KeyFields = keyFields
	}
}

// jsonLDTypes collects @type values from a decoded JSON-LD payload,
// descending into arrays and @graph containers.
func jsonLDTypes(payload any) []string {
	var types []string
	switch v := payload.(type) {
	case []any:
		for _, item := range v {
			types = append(types, jsonLDTypes(item)...)
		}
	case map[string]any:
		switch typ := v["@type"].(type) {
		case string:
			types = append(types, typ)
		case []any:
			for _, t := range typ {
				if s, ok := t.(string); ok {
					types = append(types, s)
				}
			}
		}
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				types = append(types, jsonLDTypes(item)...)
			}
		}
	}
	return types
}

func trailingSegment(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// extractSitemap counts <loc> entries in an XML sitemap body.
func extractSitemap(ev *evidence.Evidence, body string) {
	ev.Integrity = &evidence.Integrity{ContentHash: contentHash(body)}
	ev.Extracted = &evidence.Extracted{
		DetectedArtifacts: map[string]any{
			"urlCount": strings.Count(body, "<loc>"),
		},
	}
}

// extractRobots records whether a robots.txt body carries sitemap or
// disallow directives.
func extractRobots(ev *evidence.Evidence, body string) {
	lower := strings.ToLower(body)
	ev.Integrity = &evidence.Integrity{ContentHash: contentHash(body)}
	ev.Extracted = &evidence.Extracted{
		DetectedArtifacts: map[string]any{
			"hasSitemap":  strings.Contains(lower, "sitemap:"),
			"hasDisallow": strings.Contains(lower, "disallow:"),
		},
	}
}
