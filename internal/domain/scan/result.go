package scan

import (
	"time"

	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"

	"github.com/veriscan-io/veriscan-cli/internal/evidence"
)

// ResultStatus is the classified outcome of one surface check.
type ResultStatus string

const (
	StatusQueued           ResultStatus = "QUEUED"
	StatusPresentConfirmed ResultStatus = "PRESENT_CONFIRMED"
	StatusPresentPartial   ResultStatus = "PRESENT_PARTIAL"
	StatusAbsent           ResultStatus = "ABSENT"
	StatusNeedsEntityInput ResultStatus = "NEEDS_ENTITY_INPUT"
	StatusManualRequired   ResultStatus = "MANUAL_REQUIRED"
	StatusRequiresProvider ResultStatus = "REQUIRES_PROVIDER"
	StatusError            ResultStatus = "ERROR"
	StatusSkipped          ResultStatus = "SKIPPED"
)

// IsTerminal reports whether the status is a final classification rather
// than a pre-execution plan state.
func (s ResultStatus) IsTerminal() bool {
	return s != StatusQueued
}

// Result is one surface's row in a scan. It is created once as a placeholder
// before any probing starts and finalized at most once afterwards.
type Result struct {
	id         string
	scanID     string
	surfaceKey string
	label      string
	category   string
	tier       string

	status     ResultStatus
	confidence int
	evidence   *evidence.Evidence
	errMessage string
	checkedAt  time.Time

	finalized bool
}

// NewPlaceholder creates the pre-execution row for a surface. planStatus is
// the statically computed plan state (QUEUED, MANUAL_REQUIRED,
// REQUIRES_PROVIDER, or NEEDS_ENTITY_INPUT); ev may carry missing-field
// placeholder evidence and may be nil.
func NewPlaceholder(id, scanID, surfaceKey, label, category, tier string, planStatus ResultStatus, confidence int, ev *evidence.Evidence) (*Result, error) {
	if surfaceKey == "" {
		return nil, sharedErrors.ErrEmptySurfaceKey
	}
	return &Result{
		id:         id,
		scanID:     scanID,
		surfaceKey: surfaceKey,
		label:      label,
		category:   category,
		tier:       tier,
		status:     planStatus,
		confidence: confidence,
		evidence:   ev,
	}, nil
}

// ReconstructResult rebuilds a result from persisted data.
func ReconstructResult(id, scanID, surfaceKey, label, category, tier string, status ResultStatus, confidence int, ev *evidence.Evidence, errMessage string, checkedAt time.Time) *Result {
	return &Result{
		id:         id,
		scanID:     scanID,
		surfaceKey: surfaceKey,
		label:      label,
		category:   category,
		tier:       tier,
		status:     status,
		confidence: confidence,
		evidence:   ev,
		errMessage: errMessage,
		checkedAt:  checkedAt,
		finalized:  status.IsTerminal(),
	}
}

// Finalize records the probe outcome on a pre-created row. A row can be
// finalized at most once; concurrent workers must never share a row.
func (r *Result) Finalize(status ResultStatus, confidence int, ev *evidence.Evidence, errMessage string) error {
	if r.finalized {
		return sharedErrors.ErrResultAlreadyFinal
	}
	r.status = status
	r.confidence = confidence
	if ev != nil {
		r.evidence = ev
	}
	r.errMessage = errMessage
	r.checkedAt = time.Now().UTC()
	r.finalized = true
	return nil
}

// Getters

func (r *Result) ID() string                   { return r.id }
func (r *Result) ScanID() string               { return r.scanID }
func (r *Result) SurfaceKey() string           { return r.surfaceKey }
func (r *Result) Label() string                { return r.label }
func (r *Result) Category() string             { return r.category }
func (r *Result) Tier() string                 { return r.tier }
func (r *Result) Status() ResultStatus         { return r.status }
func (r *Result) Confidence() int              { return r.confidence }
func (r *Result) Evidence() *evidence.Evidence { return r.evidence }
func (r *Result) ErrorMessage() string         { return r.errMessage }
func (r *Result) CheckedAt() time.Time         { return r.checkedAt }
func (r *Result) Finalized() bool              { return r.finalized }
