package catalog

import "github.com/veriscan-io/veriscan-cli/internal/domain/surface"

// Category names used across the default catalog and reports.
const (
	CategoryWebFundamentals = "Web Fundamentals"
	CategorySEODiscovery    = "SEO & Discovery"
	CategoryEmailSecurity   = "Email Security (DNS)"
	CategorySocialPresence  = "Social Presence"
	CategoryDirectories     = "Directories & Reviews"
	CategoryKnowledgeGraph  = "Knowledge Graph"
	CategorySearchPresence  = "Search Presence"
	CategoryLocalPresence   = "Local Presence"
	CategoryAdsTransparency = "App & Ads Transparency"
	CategoryTrust           = "Trust & Transparency"
	CategoryEmployerBrand   = "Employer Brand"
)

// defaultCatalog lists every surface veriscan knows how to plan. Keys are
// stable identifiers; catalog_test.go validates uniqueness and kind
// resolution. Surfaces with a playbook ID require a human-guided process and
// are never auto-executed.
var defaultCatalog = []surface.Rule{
	// Well-known web artifacts
	{Key: "ROBOTS_TXT", Label: "robots.txt", Category: CategorySEODiscovery, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "SITEMAP_XML", Label: "XML sitemap", Category: CategorySEODiscovery, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "LLMS_TXT", Label: "llms.txt", Category: CategorySEODiscovery, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "SECURITY_TXT", Label: "security.txt", Category: CategoryTrust, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "FAVICON_ICO", Label: "Favicon", Category: CategoryWebFundamentals, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "APPLE_TOUCH_ICON", Label: "Apple touch icon", Category: CategoryWebFundamentals, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "WEB_MANIFEST", Label: "Web app manifest", Category: CategoryWebFundamentals, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "HUMANS_TXT", Label: "humans.txt", Category: CategoryWebFundamentals, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "ADS_TXT", Label: "ads.txt", Category: CategoryAdsTransparency, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "APP_ADS_TXT", Label: "app-ads.txt", Category: CategoryAdsTransparency, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "CONTACT_PAGE", Label: "Contact page", Category: CategoryWebFundamentals, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "ABOUT_PAGE", Label: "About page", Category: CategoryWebFundamentals, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},
	{Key: "PRIVACY_PAGE", Label: "Privacy policy", Category: CategoryTrust, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeWellKnownPath, Enabled: true},

	// Homepage and site-level crawls
	{Key: "HOMEPAGE", Label: "Homepage reachable", Category: CategoryWebFundamentals, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeHomepage, Enabled: true},
	{Key: "HOMEPAGE_SCHEMA_ORG", Label: "Homepage schema.org markup", Category: CategorySEODiscovery, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeHomepage, Enabled: true},
	{Key: "STRUCTURED_DATA_ORGANIZATION", Label: "Organization structured data", Category: CategorySEODiscovery, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeHomepage, Enabled: true},
	{Key: "OPENGRAPH_TAGS", Label: "Open Graph tags", Category: CategorySEODiscovery, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeHomepage, Enabled: true},
	{Key: "META_DESCRIPTION", Label: "Meta description", Category: CategorySEODiscovery, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeHomepage, Enabled: true},
	{Key: "CANONICAL_TAGS", Label: "Canonical link tags", Category: CategorySEODiscovery, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeHomepage, Enabled: true},
	{Key: "BLOG_PRESENCE", Label: "Blog section", Category: CategorySEODiscovery, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "CAREERS_PAGE", Label: "Careers page", Category: CategoryEmployerBrand, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "PRESS_PAGE", Label: "Press / media page", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "TERMS_PAGE", Label: "Terms of service", Category: CategoryTrust, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "COOKIE_POLICY", Label: "Cookie policy", Category: CategoryTrust, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "IMPRINT_PAGE", Label: "Imprint / legal notice", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "ACCESSIBILITY_STATEMENT", Label: "Accessibility statement", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "FAQ_PAGE", Label: "FAQ page", Category: CategoryWebFundamentals, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "TESTIMONIALS_PAGE", Label: "Testimonials page", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "CASE_STUDIES_PAGE", Label: "Case studies", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "NEWSLETTER_SIGNUP", Label: "Newsletter signup", Category: CategoryWebFundamentals, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},
	{Key: "RSS_FEED", Label: "RSS feed", Category: CategorySEODiscovery, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeSiteCrawl, Enabled: true},

	// DNS security and verification records
	{Key: "SPF_RECORD", Label: "SPF record", Category: CategoryEmailSecurity, Tier: surface.TierCritical, Provider: surface.ProviderDNS, CheckMode: surface.ModeDNSTXT, Enabled: true},
	{Key: "DMARC_RECORD", Label: "DMARC record", Category: CategoryEmailSecurity, Tier: surface.TierCritical, Provider: surface.ProviderDNS, CheckMode: surface.ModeDNSTXT, Enabled: true},
	{Key: "DKIM_RECORD", Label: "DKIM record (default selector)", Category: CategoryEmailSecurity, Tier: surface.TierRecommended, Provider: surface.ProviderDNS, CheckMode: surface.ModeDNSTXT, Enabled: true},
	{Key: "MTA_STS_RECORD", Label: "MTA-STS record", Category: CategoryEmailSecurity, Tier: surface.TierOptional, Provider: surface.ProviderDNS, CheckMode: surface.ModeDNSTXT, Enabled: true},
	{Key: "BIMI_RECORD", Label: "BIMI record", Category: CategoryEmailSecurity, Tier: surface.TierOptional, Provider: surface.ProviderDNS, CheckMode: surface.ModeDNSTXT, Enabled: true},
	{Key: "TLS_RPT_RECORD", Label: "TLS-RPT record", Category: CategoryEmailSecurity, Tier: surface.TierOptional, Provider: surface.ProviderDNS, CheckMode: surface.ModeDNSTXT, Enabled: true},
	{Key: "DOMAIN_VERIFICATION_TXT", Label: "Domain verification TXT records", Category: CategoryEmailSecurity, Tier: surface.TierOptional, Provider: surface.ProviderDNS, CheckMode: surface.ModeDNSTXT, Enabled: true},

	// Social profiles
	{Key: "LINKEDIN_COMPANY", Label: "LinkedIn company page", Category: CategorySocialPresence, Tier: surface.TierCritical, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "linkedin_slug", Enabled: true},
	{Key: "YOUTUBE_CHANNEL", Label: "YouTube channel", Category: CategorySocialPresence, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "youtube_handle", Enabled: true},
	{Key: "X_PROFILE", Label: "X (Twitter) profile", Category: CategorySocialPresence, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "x_handle", Enabled: true},
	{Key: "INSTAGRAM_PROFILE", Label: "Instagram profile", Category: CategorySocialPresence, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "instagram_handle", Enabled: true},
	{Key: "FACEBOOK_PAGE", Label: "Facebook page", Category: CategorySocialPresence, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "facebook_page", Enabled: true},

	// Directories and review sites
	{Key: "CRUNCHBASE_PROFILE", Label: "Crunchbase profile", Category: CategoryDirectories, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "crunchbase_url", Enabled: true},
	{Key: "G2_PROFILE", Label: "G2 profile", Category: CategoryDirectories, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "g2_url", Enabled: true},
	{Key: "CAPTERRA_PROFILE", Label: "Capterra listing", Category: CategoryDirectories, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "capterra_url", Enabled: true},
	{Key: "TRUSTPILOT_PROFILE", Label: "Trustpilot profile", Category: CategoryDirectories, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "trustpilot_url", Enabled: true},
	{Key: "CLUTCH_PROFILE", Label: "Clutch profile", Category: CategoryDirectories, Tier: surface.TierOptional, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "clutch_url", Enabled: true},

	// Knowledge graph
	{Key: "WIKIPEDIA_ARTICLE", Label: "Wikipedia article", Category: CategoryKnowledgeGraph, Tier: surface.TierRecommended, Provider: surface.ProviderCrawl, CheckMode: surface.ModeProfileURL, CanonicalInput: "wikipedia_url", Enabled: true},
	{Key: "WIKIDATA_ENTITY", Label: "Wikidata entity", Category: CategoryKnowledgeGraph, Tier: surface.TierOptional, Provider: surface.ProviderSERP, CanonicalInput: "wikidata_qid", Enabled: true},
	{Key: "GOOGLE_KNOWLEDGE_PANEL", Label: "Google knowledge panel", Category: CategoryKnowledgeGraph, Tier: surface.TierRecommended, Provider: surface.ProviderSERP, Enabled: true},

	// Search presence (external data providers)
	{Key: "SERP_BRAND_TOP_RESULT", Label: "Brand query top result", Category: CategorySearchPresence, Tier: surface.TierCritical, Provider: surface.ProviderSERP, Enabled: true},
	{Key: "SERP_SITELINKS", Label: "Sitelinks on brand query", Category: CategorySearchPresence, Tier: surface.TierOptional, Provider: surface.ProviderSERP, Enabled: true},
	{Key: "SERP_IMAGE_PACK", Label: "Image pack on brand query", Category: CategorySearchPresence, Tier: surface.TierOptional, Provider: surface.ProviderSERP, Enabled: true},
	{Key: "SERP_NEWS_RESULTS", Label: "News results on brand query", Category: CategorySearchPresence, Tier: surface.TierOptional, Provider: surface.ProviderSERP, Enabled: true},
	{Key: "SERP_LOCAL_PACK", Label: "Local pack on brand query", Category: CategoryLocalPresence, Tier: surface.TierRecommended, Provider: surface.ProviderSERP, Enabled: true},
	{Key: "AUTOCOMPLETE_BRAND", Label: "Search autocomplete for brand", Category: CategorySearchPresence, Tier: surface.TierOptional, Provider: surface.ProviderSuggest, Enabled: true},
	{Key: "RELATED_SEARCHES_BRAND", Label: "Related searches for brand", Category: CategorySearchPresence, Tier: surface.TierOptional, Provider: surface.ProviderSuggest, Enabled: true},
	{Key: "MAPS_SUGGEST_BRAND", Label: "Maps autocomplete for brand", Category: CategoryLocalPresence, Tier: surface.TierOptional, Provider: surface.ProviderSuggest, Enabled: true},

	// Owner-API surfaces
	{Key: "GOOGLE_BUSINESS_PROFILE", Label: "Google Business profile", Category: CategoryLocalPresence, Tier: surface.TierCritical, Provider: surface.ProviderOwnerAPI, CanonicalInput: "google_place_id", Enabled: true},
	{Key: "GOOGLE_REVIEWS", Label: "Google reviews", Category: CategoryLocalPresence, Tier: surface.TierRecommended, Provider: surface.ProviderOwnerAPI, CanonicalInput: "google_place_id", Enabled: true},

	// Human-guided playbook surfaces
	{Key: "BING_PLACES", Label: "Bing Places listing", Category: CategoryLocalPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-bing-places", Enabled: true},
	{Key: "APPLE_MAPS_LISTING", Label: "Apple Maps listing", Category: CategoryLocalPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-apple-maps", Enabled: true},
	{Key: "YELP_LISTING", Label: "Yelp listing", Category: CategoryDirectories, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-yelp", Enabled: true},
	{Key: "BBB_PROFILE", Label: "Better Business Bureau profile", Category: CategoryDirectories, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-bbb", Enabled: true},
	{Key: "GLASSDOOR_PROFILE", Label: "Glassdoor employer profile", Category: CategoryEmployerBrand, Tier: surface.TierRecommended, Provider: surface.ProviderManualReview, PlaybookID: "pb-glassdoor", Enabled: true},
	{Key: "INDEED_EMPLOYER_PAGE", Label: "Indeed employer page", Category: CategoryEmployerBrand, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-indeed", Enabled: true},
	{Key: "GITHUB_ORGANIZATION", Label: "GitHub organization", Category: CategorySocialPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-github", Enabled: true},
	{Key: "APP_STORE_LISTING", Label: "Apple App Store listing", Category: CategoryAdsTransparency, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-app-store", Enabled: true},
	{Key: "PLAY_STORE_LISTING", Label: "Google Play listing", Category: CategoryAdsTransparency, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-play-store", Enabled: true},
	{Key: "AMAZON_STOREFRONT", Label: "Amazon storefront", Category: CategoryDirectories, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-amazon", Enabled: true},
	{Key: "PINTEREST_PROFILE", Label: "Pinterest profile", Category: CategorySocialPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-pinterest", Enabled: true},
	{Key: "TIKTOK_PROFILE", Label: "TikTok profile", Category: CategorySocialPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-tiktok", Enabled: true},
	{Key: "REDDIT_PRESENCE", Label: "Reddit presence", Category: CategorySocialPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-reddit", Enabled: true},
	{Key: "MEDIUM_PUBLICATION", Label: "Medium publication", Category: CategorySocialPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-medium", Enabled: true},
	{Key: "PODCAST_DIRECTORY", Label: "Podcast directory listing", Category: CategorySocialPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-podcast", Enabled: true},
	{Key: "PRESS_RELEASE_WIRE", Label: "Press release wire presence", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-press-wire", Enabled: true},
	{Key: "INDUSTRY_ASSOCIATION_LISTING", Label: "Industry association listing", Category: CategoryDirectories, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-association", Enabled: true},
	{Key: "CHAMBER_OF_COMMERCE_LISTING", Label: "Chamber of commerce listing", Category: CategoryLocalPresence, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-chamber", Enabled: true},
	{Key: "DUNS_PROFILE", Label: "D-U-N-S profile", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-duns", Enabled: true},
	{Key: "OPENCORPORATES_LISTING", Label: "OpenCorporates listing", Category: CategoryTrust, Tier: surface.TierOptional, Provider: surface.ProviderManualReview, PlaybookID: "pb-opencorporates", Enabled: true},
}

// Default returns a copy of the built-in catalog with every rule's kind
// resolved.
func Default() []surface.Rule {
	out := make([]surface.Rule, len(defaultCatalog))
	copy(out, defaultCatalog)
	for i := range out {
		out[i].Normalize()
	}
	return out
}
