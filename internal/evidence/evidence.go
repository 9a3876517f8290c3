package evidence

import "time"

// Evidence is the auditable record of a single surface check. The JSON field
// names are a wire contract consumed by dashboards and exports; they must not
// be renamed.
type Evidence struct {
	Target        Target     `json:"target"`
	Fetch         *Fetch     `json:"fetch,omitempty"`
	Match         *Match     `json:"match,omitempty"`
	Extracted     *Extracted `json:"extracted,omitempty"`
	Integrity     *Integrity `json:"integrity,omitempty"`
	Errors        *Failure   `json:"errors,omitempty"`
	DNS           *DNS       `json:"dns,omitempty"`
	MissingFields []string   `json:"missingFields,omitempty"`
}

// Target identifies what was probed and how.
type Target struct {
	URL      string `json:"url,omitempty"`
	Method   string `json:"method,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// Fetch captures transport-level metadata for an HTTP probe.
type Fetch struct {
	HTTPStatus    int       `json:"httpStatus,omitempty"`
	FinalURL      string    `json:"finalUrl,omitempty"`
	RedirectChain []string  `json:"redirectChain,omitempty"`
	ContentType   string    `json:"contentType,omitempty"`
	FetchedAt     time.Time `json:"fetchedAt"`
	TimeoutMs     int64     `json:"timeoutMs,omitempty"`
}

// Match holds the scored verdict and its human-auditable signal lists.
type Match struct {
	Confidence      int      `json:"confidence"`
	MatchSignals    []string `json:"matchSignals,omitempty"`
	MismatchSignals []string `json:"mismatchSignals,omitempty"`
}

// Extracted holds structural signals pulled from a fetched body.
type Extracted struct {
	PageTitle         string            `json:"pageTitle,omitempty"`
	MetaDescription   string            `json:"metaDescription,omitempty"`
	SchemaTypes       []string          `json:"schemaTypes,omitempty"`
	SameAsCount       int               `json:"sameAsCount,omitempty"`
	DetectedArtifacts map[string]any    `json:"detectedArtifacts,omitempty"`
	KeyFields         map[string]string `json:"keyFields,omitempty"`
}

// Integrity lets a later reader verify what the scanner actually saw.
type Integrity struct {
	ContentHash string `json:"contentHash,omitempty"`
	HTMLSample  string `json:"htmlSample,omitempty"`
}

// Failure records a probe-level error. A populated Failure never aborts a
// scan; the classifier maps it to a result status.
type Failure struct {
	Code        string `json:"code,omitempty"`
	Message     string `json:"message,omitempty"`
	BlockReason string `json:"blockReason,omitempty"`
}

// DNS is present only for TXT-record probes.
type DNS struct {
	RecordType  string         `json:"recordType"`
	QueriedHost string         `json:"queriedHost"`
	Values      []string       `json:"values,omitempty"`
	ParsedFlags map[string]any `json:"parsedFlags,omitempty"`
}

// Error codes recorded in Failure.Code.
const (
	CodeTimeout    = "TIMEOUT"
	CodeFetchError = "FETCH_ERROR"
	CodeNXDomain   = "NXDOMAIN"
	CodeNoRecord   = "NO_RECORD"
	CodeDNSError   = "DNS_ERROR"
)

// Block reasons recorded in Failure.BlockReason for block-sensitive targets.
const (
	BlockForbidden     = "FORBIDDEN"
	BlockRateLimited   = "RATE_LIMITED"
	BlockLegal         = "LEGAL_BLOCK"
	BlockCaptcha       = "CAPTCHA"
	BlockConsentWall   = "CONSENT_WALL"
	BlockLoginRequired = "LOGIN_REQUIRED"
)

// New returns an Evidence shell for the given target.
func New(url, method, provider string) *Evidence {
	return &Evidence{Target: Target{URL: url, Method: method, Provider: provider}}
}

// ForMissingInputs returns the placeholder evidence recorded when target
// resolution failed before any probing.
func ForMissingInputs(provider string, missing []string) *Evidence {
	return &Evidence{
		Target:        Target{Provider: provider},
		MissingFields: missing,
	}
}

// SetError records a transport failure on the evidence.
func (e *Evidence) SetError(code, message string) {
	if e.Errors == nil {
		e.Errors = &Failure{}
	}
	e.Errors.Code = code
	e.Errors.Message = message
}

// SetBlockReason marks the response as a bot-block without failing the probe.
func (e *Evidence) SetBlockReason(reason string) {
	if e.Errors == nil {
		e.Errors = &Failure{}
	}
	e.Errors.BlockReason = reason
}

// HasRichSignals reports whether extraction found anything beyond a bare 2xx:
// schema.org types, sameAs references, or a truthy detected artifact.
// Extractors record what they looked for even when they found nothing, so a
// false flag or zero count must not count as a signal.
func (e *Evidence) HasRichSignals() bool {
	if e.Extracted == nil {
		return false
	}
	if len(e.Extracted.SchemaTypes) > 0 || e.Extracted.SameAsCount > 0 {
		return true
	}
	for _, v := range e.Extracted.DetectedArtifacts {
		switch val := v.(type) {
		case bool:
			if val {
				return true
			}
		case int:
			if val > 0 {
				return true
			}
		case float64:
			// Artifact counts reload from JSON as float64.
			if val > 0 {
				return true
			}
		case string:
			if val != "" {
				return true
			}
		}
	}
	return false
}
