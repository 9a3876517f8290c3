package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	"github.com/veriscan-io/veriscan-cli/internal/evidence"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
	"github.com/veriscan-io/veriscan-cli/internal/shared/security"
)

// scanDTO is the data transfer object for JSON serialization. Evidence is
// already a wire-contract type, so it embeds directly without remapping.
type scanDTO struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	ClientName  string        `json:"client_name,omitempty"`
	Mode        string        `json:"mode"`
	Status      string        `json:"status"`
	StartedAt   string        `json:"started_at"`
	CompletedAt string        `json:"completed_at,omitempty"`
	Results     []resultDTO   `json:"results"`
	Summary     *scan.Summary `json:"summary,omitempty"`
}

type resultDTO struct {
	ID           string             `json:"id"`
	SurfaceKey   string             `json:"surface_key"`
	Label        string             `json:"label,omitempty"`
	Category     string             `json:"category,omitempty"`
	Tier         string             `json:"tier,omitempty"`
	Status       string             `json:"status"`
	Confidence   int                `json:"confidence"`
	Evidence     *evidence.Evidence `json:"evidence,omitempty"`
	ErrorMessage string             `json:"error,omitempty"`
	CheckedAt    string             `json:"checked_at,omitempty"`
}

// ScanRepository implements the scan.Repository interface using one JSON
// file per scan under the results directory.
type ScanRepository struct {
	resultsDir string
	mu         sync.RWMutex
}

// NewScanRepository creates a new JSON-based scan repository
func NewScanRepository(resultsDir string) (*ScanRepository, error) {
	if resultsDir == "" {
		return nil, fmt.Errorf("results directory cannot be empty")
	}

	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	return &ScanRepository{
		resultsDir: resultsDir,
	}, nil
}

// Save persists a scan, overwriting any previous snapshot of the same scan.
// A running scan is saved once with its placeholder rows, so it stays
// queryable before completion.
func (r *ScanRepository) Save(ctx context.Context, s *scan.Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filePath := filepath.Join(r.resultsDir, s.ID()+".json")
	if !security.IsValidPath(filePath) {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	data, err := json.MarshalIndent(r.toDTO(s), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write scan file: %w", err)
	}

	return nil
}

// FindByID retrieves a scan by its ID
func (r *ScanRepository) FindByID(ctx context.Context, id string) (*scan.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filePath := filepath.Join(r.resultsDir, id+".json")
	if !security.IsValidPath(filePath) {
		return nil, fmt.Errorf("invalid file path: %s", filePath)
	}

	s, err := r.loadFromFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sharedErrors.ErrScanNotFound
		}
		return nil, err
	}

	return s, nil
}

// FindByClientID retrieves all scans for a client, newest first
func (r *ScanRepository) FindByClientID(ctx context.Context, clientID string) ([]*scan.Scan, error) {
	scans, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*scan.Scan, 0, len(scans))
	for _, s := range scans {
		if s.ClientID() == clientID {
			matched = append(matched, s)
		}
	}

	return matched, nil
}

// FindAll retrieves all scans, newest first
func (r *ScanRepository) FindAll(ctx context.Context) ([]*scan.Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.resultsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*scan.Scan{}, nil
		}
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	scans := make([]*scan.Scan, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		s, err := r.loadFromFile(filepath.Join(r.resultsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to load scan %s: %w", entry.Name(), err)
		}
		scans = append(scans, s)
	}

	sort.Slice(scans, func(i, j int) bool {
		return scans[i].StartedAt().After(scans[j].StartedAt())
	})

	return scans, nil
}

// Delete removes a scan by its ID
func (r *ScanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filePath := filepath.Join(r.resultsDir, id+".json")
	if !security.IsValidPath(filePath) {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return sharedErrors.ErrScanNotFound
		}
		return fmt.Errorf("failed to delete scan file: %w", err)
	}

	return nil
}

// Helper methods

func (r *ScanRepository) loadFromFile(filePath string) (*scan.Scan, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var dto scanDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scan: %w", err)
	}

	return r.fromDTO(dto)
}

func (r *ScanRepository) toDTO(s *scan.Scan) scanDTO {
	dto := scanDTO{
		ID:         s.ID(),
		ClientID:   s.ClientID(),
		ClientName: s.ClientName(),
		Mode:       string(s.Mode()),
		Status:     string(s.Status()),
		Summary:    s.Summary(),
	}

	if !s.StartedAt().IsZero() {
		dto.StartedAt = s.StartedAt().Format(time.RFC3339)
	}
	if !s.CompletedAt().IsZero() {
		dto.CompletedAt = s.CompletedAt().Format(time.RFC3339)
	}

	dto.Results = make([]resultDTO, 0, len(s.Results()))
	for _, res := range s.Results() {
		dto.Results = append(dto.Results, r.resultToDTO(res))
	}

	return dto
}

func (r *ScanRepository) resultToDTO(res *scan.Result) resultDTO {
	dto := resultDTO{
		ID:           res.ID(),
		SurfaceKey:   res.SurfaceKey(),
		Label:        res.Label(),
		Category:     res.Category(),
		Tier:         res.Tier(),
		Status:       string(res.Status()),
		Confidence:   res.Confidence(),
		Evidence:     res.Evidence(),
		ErrorMessage: res.ErrorMessage(),
	}

	if !res.CheckedAt().IsZero() {
		dto.CheckedAt = res.CheckedAt().Format(time.RFC3339)
	}

	return dto
}

func (r *ScanRepository) fromDTO(dto scanDTO) (*scan.Scan, error) {
	var startedAt, completedAt time.Time
	var err error

	if dto.StartedAt != "" {
		startedAt, err = time.Parse(time.RFC3339, dto.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started at time: %w", err)
		}
	}

	if dto.CompletedAt != "" {
		completedAt, err = time.Parse(time.RFC3339, dto.CompletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed at time: %w", err)
		}
	}

	results := make([]*scan.Result, 0, len(dto.Results))
	for _, rd := range dto.Results {
		res, err := r.resultFromDTO(dto.ID, rd)
		if err != nil {
			return nil, fmt.Errorf("failed to convert result %s: %w", rd.ID, err)
		}
		results = append(results, res)
	}

	return scan.Reconstruct(
		dto.ID,
		dto.ClientID,
		dto.ClientName,
		scan.Mode(dto.Mode),
		scan.Status(dto.Status),
		startedAt,
		completedAt,
		results,
		dto.Summary,
	), nil
}

func (r *ScanRepository) resultFromDTO(scanID string, dto resultDTO) (*scan.Result, error) {
	var checkedAt time.Time
	var err error

	if dto.CheckedAt != "" {
		checkedAt, err = time.Parse(time.RFC3339, dto.CheckedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse checked at time: %w", err)
		}
	}

	return scan.ReconstructResult(
		dto.ID,
		scanID,
		dto.SurfaceKey,
		dto.Label,
		dto.Category,
		dto.Tier,
		scan.ResultStatus(dto.Status),
		dto.Confidence,
		dto.Evidence,
		dto.ErrorMessage,
		checkedAt,
	), nil
}
