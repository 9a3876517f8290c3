package scan

import (
	"math"
	"time"

	"github.com/google/uuid"

	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

// Mode selects which evidence providers a scan may use.
type Mode string

const (
	ModeCrawlOnly         Mode = "CRAWL_ONLY"
	ModeCrawlPlusProvider Mode = "CRAWL_PLUS_PROVIDER"
)

// Status is the scan lifecycle state. A scan has no failure state: individual
// probe failures are recorded on their rows and the scan still completes.
type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
)

// Summary aggregates a finished scan. PresentCount counts confirmed plus
// partial rows; Score weights partial rows at half. Both metrics ship
// side by side and downstream readers may use either.
type Summary struct {
	TotalSurfaces int                  `json:"totalSurfaces"`
	StatusCounts  map[ResultStatus]int `json:"statusCounts"`
	PresentCount  int                  `json:"presentCount"`
	AbsentCount   int                  `json:"absentCount"`
	Score         int                  `json:"score"`
}

// Scan is the parent aggregate for one verification run. It owns its result
// rows; the row count is fixed at creation time and equals the number of
// enabled surfaces, however many probes later fail.
type Scan struct {
	id          string
	clientID    string
	clientName  string
	mode        Mode
	status      Status
	startedAt   time.Time
	completedAt time.Time
	results     []*Result
	summary     *Summary
}

// NewScan creates a scan in RUNNING state.
func NewScan(clientID, clientName string, mode Mode) (*Scan, error) {
	if clientID == "" {
		return nil, sharedErrors.ErrInvalidClientID
	}
	if mode == "" {
		mode = ModeCrawlOnly
	}
	return &Scan{
		id:         "scan-" + uuid.NewString(),
		clientID:   clientID,
		clientName: clientName,
		mode:       mode,
		status:     StatusRunning,
		startedAt:  time.Now().UTC(),
		results:    make([]*Result, 0),
	}, nil
}

// Reconstruct rebuilds a scan from persisted data.
func Reconstruct(id, clientID, clientName string, mode Mode, status Status, startedAt, completedAt time.Time, results []*Result, summary *Summary) *Scan {
	return &Scan{
		id:          id,
		clientID:    clientID,
		clientName:  clientName,
		mode:        mode,
		status:      status,
		startedAt:   startedAt,
		completedAt: completedAt,
		results:     results,
		summary:     summary,
	}
}

// AddPlaceholder attaches a pre-created result row. Rows can only be added
// while the scan is running.
func (s *Scan) AddPlaceholder(r *Result) error {
	if s.status != StatusRunning {
		return sharedErrors.ErrScanAlreadyCompleted
	}
	s.results = append(s.results, r)
	return nil
}

// NewResultID mints a row identifier in the scan's namespace.
func (s *Scan) NewResultID() string {
	return "res-" + uuid.NewString()
}

// ComputeSummary tallies all rows. Call only after every dispatched probe has
// finished; it is a pure fold over the rows.
func (s *Scan) ComputeSummary() Summary {
	counts := make(map[ResultStatus]int, len(s.results))
	for _, r := range s.results {
		counts[r.Status()]++
	}

	confirmed := counts[StatusPresentConfirmed]
	partial := counts[StatusPresentPartial]
	total := len(s.results)

	score := 0
	if total > 0 {
		score = int(math.Round((float64(confirmed) + 0.5*float64(partial)) / float64(total) * 100))
	}

	return Summary{
		TotalSurfaces: total,
		StatusCounts:  counts,
		PresentCount:  confirmed + partial,
		AbsentCount:   counts[StatusAbsent],
		Score:         score,
	}
}

// Complete transitions the scan to COMPLETED with its summary. Completing
// twice is an error.
func (s *Scan) Complete(summary Summary) error {
	if s.status != StatusRunning {
		return sharedErrors.ErrScanAlreadyCompleted
	}
	s.status = StatusCompleted
	s.completedAt = time.Now().UTC()
	s.summary = &summary
	return nil
}

// Getters

func (s *Scan) ID() string             { return s.id }
func (s *Scan) ClientID() string       { return s.clientID }
func (s *Scan) ClientName() string     { return s.clientName }
func (s *Scan) Mode() Mode             { return s.mode }
func (s *Scan) Status() Status         { return s.status }
func (s *Scan) StartedAt() time.Time   { return s.startedAt }
func (s *Scan) CompletedAt() time.Time { return s.completedAt }
func (s *Scan) Results() []*Result     { return s.results }
func (s *Scan) Summary() *Summary      { return s.summary }
