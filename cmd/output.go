package cmd

import (
	"time"

	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	"github.com/veriscan-io/veriscan-cli/internal/evidence"
)

// scanOutput mirrors the persisted scan shape for JSON output and reports.
type scanOutput struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id"`
	ClientName  string         `json:"client_name,omitempty"`
	Mode        string         `json:"mode"`
	Status      string         `json:"status"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Summary     *scan.Summary  `json:"summary,omitempty"`
	Results     []resultOutput `json:"results"`
}

type resultOutput struct {
	SurfaceKey   string             `json:"surface_key"`
	Label        string             `json:"label,omitempty"`
	Category     string             `json:"category,omitempty"`
	Tier         string             `json:"tier,omitempty"`
	Status       string             `json:"status"`
	Confidence   int                `json:"confidence"`
	Evidence     *evidence.Evidence `json:"evidence,omitempty"`
	ErrorMessage string             `json:"error,omitempty"`
}

func scanToOutput(s *scan.Scan) scanOutput {
	out := scanOutput{
		ID:         s.ID(),
		ClientID:   s.ClientID(),
		ClientName: s.ClientName(),
		Mode:       string(s.Mode()),
		Status:     string(s.Status()),
		StartedAt:  s.StartedAt(),
		Summary:    s.Summary(),
	}

	if !s.CompletedAt().IsZero() {
		t := s.CompletedAt()
		out.CompletedAt = &t
	}

	out.Results = make([]resultOutput, 0, len(s.Results()))
	for _, r := range s.Results() {
		out.Results = append(out.Results, resultOutput{
			SurfaceKey:   r.SurfaceKey(),
			Label:        r.Label(),
			Category:     r.Category(),
			Tier:         r.Tier(),
			Status:       string(r.Status()),
			Confidence:   r.Confidence(),
			Evidence:     r.Evidence(),
			ErrorMessage: r.ErrorMessage(),
		})
	}

	return out
}
