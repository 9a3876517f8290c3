package scan

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	"github.com/veriscan-io/veriscan-cli/internal/domain/surface"
	"github.com/veriscan-io/veriscan-cli/internal/evidence"
	"github.com/veriscan-io/veriscan-cli/internal/prober"
	"github.com/veriscan-io/veriscan-cli/internal/verdict"
)

// Provisional confidences assigned to placeholder rows before execution.
const (
	planConfidenceQueued  = 50
	planConfidenceBlocked = 30
)

// Config is the input for one scan run.
type Config struct {
	ClientID   string
	ClientName string
	Mode       scan.Mode
	Entity     *entity.CanonicalEntity
}

// Orchestrator owns the lifecycle of one scan: it plans every enabled
// surface, pre-creates result rows, executes the auto-resolvable subset
// through the probers, and completes the scan with its summary. A scan never
// fails as a whole; per-surface failures are recorded on their rows.
type Orchestrator struct {
	scans   scan.Repository
	catalog surface.Catalog
	http    *prober.HTTPProber
	dns     *prober.DNSProber
	runner  *prober.Runner
	logger  *zap.SugaredLogger
}

// NewOrchestrator creates a scan orchestrator.
func NewOrchestrator(scans scan.Repository, cat surface.Catalog, httpProber *prober.HTTPProber, dnsProber *prober.DNSProber, runner *prober.Runner, logger *zap.SugaredLogger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Orchestrator{
		scans:   scans,
		catalog: cat,
		http:    httpProber,
		dns:     dnsProber,
		runner:  runner,
		logger:  logger,
	}
}

// pending pairs a QUEUED placeholder with the rule that produced it. Each
// pending row is handed to exactly one worker.
type pending struct {
	rule   surface.Rule
	result *scan.Result
}

// Run executes a full scan and returns the completed aggregate.
func (o *Orchestrator) Run(ctx context.Context, cfg Config) (*scan.Scan, error) {
	s, err := scan.NewScan(cfg.ClientID, cfg.ClientName, cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("create scan: %w", err)
	}

	rules, err := o.catalog.Enabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("load surface catalog: %w", err)
	}

	// Every enabled surface gets its placeholder row before any probe runs,
	// so the scan's row count is fixed and queryable from here on.
	queue := make([]pending, 0, len(rules))
	for _, rule := range rules {
		planStatus, confidence, ev := planSurface(rule, cfg.Entity)
		row, err := scan.NewPlaceholder(s.NewResultID(), s.ID(), rule.Key, rule.Label, rule.Category, rule.Tier, planStatus, confidence, ev)
		if err != nil {
			return nil, fmt.Errorf("plan surface %s: %w", rule.Key, err)
		}
		if err := s.AddPlaceholder(row); err != nil {
			return nil, err
		}
		if planStatus == scan.StatusQueued {
			queue = append(queue, pending{rule: rule, result: row})
		}
	}

	if err := o.scans.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persist scan placeholders: %w", err)
	}

	o.logger.Infow("scan started",
		"scan_id", s.ID(),
		"client_id", s.ClientID(),
		"surfaces", len(rules),
		"queued", len(queue),
	)

	o.runner.Run(ctx, len(queue), func(ctx context.Context, i int) {
		o.executeSurface(ctx, cfg.Entity, queue[i].rule, queue[i].result)
	})

	// Join barrier reached: every dispatched probe finalized its row, the
	// tally below sees the complete picture.
	summary := s.ComputeSummary()
	if err := s.Complete(summary); err != nil {
		return nil, err
	}
	if err := o.scans.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("persist completed scan: %w", err)
	}

	o.logger.Infow("scan completed",
		"scan_id", s.ID(),
		"score", summary.Score,
		"present", summary.PresentCount,
		"absent", summary.AbsentCount,
	)
	return s, nil
}

// planSurface computes a surface's pre-execution state from static
// precedence alone: manual playbooks, external providers, then entity
// availability. Only QUEUED surfaces are ever probed.
func planSurface(rule surface.Rule, ent *entity.CanonicalEntity) (scan.ResultStatus, int, *evidence.Evidence) {
	if rule.RequiresManual() {
		return scan.StatusManualRequired, planConfidenceBlocked, nil
	}
	if rule.Provider.IsExternal() {
		return scan.StatusRequiresProvider, planConfidenceBlocked, nil
	}
	if ent == nil {
		return scan.StatusNeedsEntityInput, planConfidenceBlocked,
			evidence.ForMissingInputs(string(rule.Provider), []string{entity.FieldEntityProfile})
	}
	if ent.Web.CanonicalDomain == "" {
		return scan.StatusNeedsEntityInput, planConfidenceBlocked,
			evidence.ForMissingInputs(string(rule.Provider), []string{entity.FieldCanonicalDomain})
	}
	return scan.StatusQueued, planConfidenceQueued, nil
}

// executeSurface probes one QUEUED surface and finalizes its row. Panics are
// contained here: a single probe blowing up must not take down its siblings
// or the scan.
func (o *Orchestrator) executeSurface(ctx context.Context, ent *entity.CanonicalEntity, rule surface.Rule, row *scan.Result) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("probe panic: %v", r)
			o.logger.Errorw("surface probe panicked", "surface", rule.Key, "panic", r)
			if err := row.Finalize(scan.StatusError, verdict.Score(nil, ent, scan.StatusError).Confidence, nil, msg); err != nil {
				o.logger.Errorw("finalize after panic failed", "surface", rule.Key, "error", err)
			}
		}
	}()

	var ev *evidence.Evidence
	if rule.IsDNS() {
		ev = o.dns.Query(ctx, ent.Web.CanonicalDomain, rule.Kind.RecordType)
	} else {
		resolution := prober.ResolveTarget(ent, rule)
		if len(resolution.MissingInputs) > 0 {
			ev := evidence.ForMissingInputs(string(rule.Provider), resolution.MissingInputs)
			assessment := verdict.Score(ev, ent, scan.StatusNeedsEntityInput)
			o.finalize(row, rule, scan.StatusNeedsEntityInput, assessment, ev, "")
			return
		}
		ev = o.http.Crawl(ctx, resolution.URL)
	}

	isSocialTarget := rule.Kind.Class == surface.ClassProfile
	status := verdict.Classify(ev, isSocialTarget)
	assessment := verdict.Score(ev, ent, status)
	ev.Match = &evidence.Match{
		Confidence:      assessment.Confidence,
		MatchSignals:    assessment.MatchSignals,
		MismatchSignals: assessment.MismatchSignals,
	}

	errMsg := ""
	if ev.Errors != nil && ev.Errors.Code != "" {
		errMsg = ev.Errors.Message
	}
	o.finalize(row, rule, status, assessment, ev, errMsg)
}

func (o *Orchestrator) finalize(row *scan.Result, rule surface.Rule, status scan.ResultStatus, assessment verdict.Assessment, ev *evidence.Evidence, errMsg string) {
	if err := row.Finalize(status, assessment.Confidence, ev, errMsg); err != nil {
		o.logger.Errorw("finalize result failed", "surface", rule.Key, "error", err)
		return
	}
	o.logger.Debugw("surface checked", "surface", rule.Key, "status", status, "confidence", assessment.Confidence)
}
