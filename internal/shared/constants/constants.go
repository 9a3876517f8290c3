package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// CrawlTimeout is the hard budget for a single HTTP probe. The in-flight
	// request is aborted on expiry.
	CrawlTimeout = 15 * time.Second
	// DNSTimeout is the hard budget for a single TXT lookup.
	DNSTimeout = 5 * time.Second
	// CrawlUserAgent identifies the scanner to probed sites.
	CrawlUserAgent = "VeriscanBot/1.0 (+https://veriscan.io/bot; digital footprint verification)"
)

const (
	// HashSampleLimit caps how many characters of a body feed the content hash.
	HashSampleLimit = 10000
	// HTMLSampleLimit caps the HTML sample stored in evidence for auditing.
	HTMLSampleLimit = 500
	// CrawlBodyLimitBytes caps how much of a response body is read at all.
	CrawlBodyLimitBytes = 2 * 1024 * 1024
)

const (
	// DefaultProbeConcurrency bounds the scan worker pool.
	DefaultProbeConcurrency = 8
	// DefaultProbeRateLimit is the global probes-per-second ceiling.
	DefaultProbeRateLimit = 10
)
