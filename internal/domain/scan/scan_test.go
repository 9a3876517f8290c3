package scan

import (
	"errors"
	"strings"
	"testing"

	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

func newTestScan(t *testing.T) *Scan {
	t.Helper()
	s, err := NewScan("client-1", "Acme Corp", ModeCrawlOnly)
	if err != nil {
		t.Fatalf("NewScan: %v", err)
	}
	return s
}

func placeholder(t *testing.T, s *Scan, key string, status ResultStatus) *Result {
	t.Helper()
	r, err := NewPlaceholder(s.NewResultID(), s.ID(), key, key, "Website", "CRITICAL", status, 50, nil)
	if err != nil {
		t.Fatalf("NewPlaceholder: %v", err)
	}
	if err := s.AddPlaceholder(r); err != nil {
		t.Fatalf("AddPlaceholder: %v", err)
	}
	return r
}

func TestNewScanStartsRunning(t *testing.T) {
	s := newTestScan(t)

	if s.Status() != StatusRunning {
		t.Errorf("status = %s, want RUNNING", s.Status())
	}
	if !strings.HasPrefix(s.ID(), "scan-") {
		t.Errorf("id = %q, want scan- prefix", s.ID())
	}
	if s.StartedAt().IsZero() {
		t.Error("startedAt should be set")
	}
}

func TestNewScanRequiresClient(t *testing.T) {
	if _, err := NewScan("", "Acme", ModeCrawlOnly); !errors.Is(err, sharedErrors.ErrInvalidClientID) {
		t.Fatalf("expected ErrInvalidClientID, got %v", err)
	}
}

func TestNewScanDefaultsMode(t *testing.T) {
	s, err := NewScan("client-1", "Acme", "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode() != ModeCrawlOnly {
		t.Errorf("mode = %s, want CRAWL_ONLY", s.Mode())
	}
}

func TestResultFinalizeOnce(t *testing.T) {
	s := newTestScan(t)
	r := placeholder(t, s, "HOMEPAGE", StatusQueued)

	if r.Finalized() {
		t.Fatal("placeholder must not be finalized")
	}

	if err := r.Finalize(StatusPresentConfirmed, 90, nil, ""); err != nil {
		t.Fatalf("first Finalize: %v", err)
	}
	if !r.Finalized() {
		t.Fatal("result should be finalized")
	}
	if r.CheckedAt().IsZero() {
		t.Error("checkedAt should be set on finalize")
	}

	err := r.Finalize(StatusAbsent, 20, nil, "")
	if !errors.Is(err, sharedErrors.ErrResultAlreadyFinal) {
		t.Fatalf("second Finalize: got %v, want ErrResultAlreadyFinal", err)
	}
	if r.Status() != StatusPresentConfirmed || r.Confidence() != 90 {
		t.Error("second Finalize must not change the row")
	}
}

func TestNewPlaceholderRequiresSurfaceKey(t *testing.T) {
	if _, err := NewPlaceholder("res-1", "scan-1", "", "", "", "", StatusQueued, 50, nil); !errors.Is(err, sharedErrors.ErrEmptySurfaceKey) {
		t.Fatalf("expected ErrEmptySurfaceKey, got %v", err)
	}
}

func TestComputeSummary(t *testing.T) {
	s := newTestScan(t)

	confirmed := placeholder(t, s, "HOMEPAGE", StatusQueued)
	partial := placeholder(t, s, "ROBOTS_TXT", StatusQueued)
	absent := placeholder(t, s, "LLMS_TXT", StatusQueued)
	placeholder(t, s, "BING_PLACES_LISTING", StatusManualRequired)

	if err := confirmed.Finalize(StatusPresentConfirmed, 90, nil, ""); err != nil {
		t.Fatal(err)
	}
	if err := partial.Finalize(StatusPresentPartial, 50, nil, ""); err != nil {
		t.Fatal(err)
	}
	if err := absent.Finalize(StatusAbsent, 20, nil, ""); err != nil {
		t.Fatal(err)
	}

	summary := s.ComputeSummary()

	if summary.TotalSurfaces != 4 {
		t.Errorf("totalSurfaces = %d, want 4", summary.TotalSurfaces)
	}
	// Present counts confirmed plus partial.
	if summary.PresentCount != 2 {
		t.Errorf("presentCount = %d, want 2", summary.PresentCount)
	}
	if summary.AbsentCount != 1 {
		t.Errorf("absentCount = %d, want 1", summary.AbsentCount)
	}
	// Score weights partial at half: (1 + 0.5) / 4 * 100 = 37.5, rounded 38.
	if summary.Score != 38 {
		t.Errorf("score = %d, want 38", summary.Score)
	}
	if summary.StatusCounts[StatusManualRequired] != 1 {
		t.Errorf("statusCounts = %v", summary.StatusCounts)
	}
}

func TestComputeSummaryEmptyScan(t *testing.T) {
	s := newTestScan(t)
	summary := s.ComputeSummary()
	if summary.Score != 0 || summary.TotalSurfaces != 0 {
		t.Errorf("empty scan summary = %+v", summary)
	}
}

func TestCompleteOnce(t *testing.T) {
	s := newTestScan(t)

	if err := s.Complete(s.ComputeSummary()); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %s, want COMPLETED", s.Status())
	}
	if s.CompletedAt().IsZero() {
		t.Error("completedAt should be set")
	}
	if s.Summary() == nil {
		t.Error("summary should be attached")
	}

	if err := s.Complete(s.ComputeSummary()); !errors.Is(err, sharedErrors.ErrScanAlreadyCompleted) {
		t.Fatalf("second Complete: got %v, want ErrScanAlreadyCompleted", err)
	}
}

func TestAddPlaceholderAfterCompletion(t *testing.T) {
	s := newTestScan(t)
	if err := s.Complete(s.ComputeSummary()); err != nil {
		t.Fatal(err)
	}

	r, err := NewPlaceholder(s.NewResultID(), s.ID(), "HOMEPAGE", "Homepage", "Website", "CRITICAL", StatusQueued, 50, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddPlaceholder(r); !errors.Is(err, sharedErrors.ErrScanAlreadyCompleted) {
		t.Fatalf("expected ErrScanAlreadyCompleted, got %v", err)
	}
}
