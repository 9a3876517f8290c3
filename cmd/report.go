package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
	"github.com/veriscan-io/veriscan-cli/internal/shared/security"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a footprint report from a completed scan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, _ := cmd.Flags().GetString("id")
		format, _ := cmd.Flags().GetString("format")
		outFile, _ := cmd.Flags().GetString("out")
		if id == "" {
			return errors.New("--id is required")
		}

		s, err := container.ScanRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, sharedErrors.ErrScanNotFound) {
				return fmt.Errorf("scan %s not found", id)
			}
			return fmt.Errorf("failed to get scan: %w", err)
		}

		var data []byte
		switch strings.ToLower(format) {
		case "json":
			data, err = generateJSONReport(s)
		case "pdf":
			data, err = generatePDFReportBytes(s)
		default:
			return fmt.Errorf("unsupported format %q (use json or pdf)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		if outFile == "" {
			outFile = fmt.Sprintf("%s-report.%s", s.ID(), strings.ToLower(format))
		}
		target, err := security.ResolveWithin(resultsDir, outFile)
		if err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}

		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Printf("%s report written to %s\n", colorSuccess("Generated"), target)
		return nil
	},
}

func generateJSONReport(s *scan.Scan) ([]byte, error) {
	return json.MarshalIndent(scanToOutput(s), jsonPrefix, jsonIndent)
}

func generatePDFReportBytes(s *scan.Scan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Digital Footprint Report: %s", s.ClientName()), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Scan ID: %s", s.ID()), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Client ID: %s", s.ClientID()), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Mode: %s", s.Mode()), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Started: %s", s.StartedAt().Format(time.RFC3339)), "", 1, "", false, 0, "")
	if !s.CompletedAt().IsZero() {
		pdf.CellFormat(0, 6, fmt.Sprintf("Completed: %s", s.CompletedAt().Format(time.RFC3339)), "", 1, "", false, 0, "")
	}
	pdf.Ln(5)

	// Summary section
	if summary := s.Summary(); summary != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Footprint Score: %d/100 | Present: %d | Absent: %d | Surfaces: %d",
			summary.Score, summary.PresentCount, summary.AbsentCount, summary.TotalSurfaces), "", 1, "", false, 0, "")
		for status, n := range summary.StatusCounts {
			pdf.CellFormat(0, 5, fmt.Sprintf("  %s: %d", status, n), "", 1, "", false, 0, "")
		}
		pdf.Ln(5)
	}

	// Results section grouped by category
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Surface Results", "", 1, "", false, 0, "")
	pdf.Ln(2)

	lastCategory := ""
	for _, r := range s.Results() {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		if r.Category() != lastCategory {
			lastCategory = r.Category()
			pdf.SetFont("Arial", "B", 11)
			pdf.SetFillColor(240, 240, 240)
			pdf.CellFormat(0, 7, lastCategory, "", 1, "", true, 0, "")
			pdf.Ln(1)
		}

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s - %s (confidence %d)", r.Label(), r.Status(), r.Confidence()), "", 1, "", false, 0, "")

		pdf.SetFont("Arial", "", 8)
		if ev := r.Evidence(); ev != nil {
			if ev.Fetch != nil && ev.Fetch.FinalURL != "" {
				pdf.CellFormat(0, 4, fmt.Sprintf("  URL: %s (HTTP %d)", ev.Fetch.FinalURL, ev.Fetch.HTTPStatus), "", 1, "", false, 0, "")
			}
			if ev.DNS != nil && len(ev.DNS.Values) > 0 {
				pdf.MultiCell(0, 4, fmt.Sprintf("  TXT: %s", strings.Join(ev.DNS.Values, "; ")), "", "", false)
			}
			if len(ev.MissingFields) > 0 {
				pdf.CellFormat(0, 4, fmt.Sprintf("  Missing inputs: %s", strings.Join(ev.MissingFields, ", ")), "", 1, "", false, 0, "")
			}
		}
		if r.ErrorMessage() != "" {
			pdf.SetFont("Arial", "I", 8)
			pdf.MultiCell(0, 4, fmt.Sprintf("  Error: %s", r.ErrorMessage()), "", "", false)
		}

		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func init() {
	reportCmd.Flags().String("id", "", "scan ID")
	reportCmd.Flags().String("format", "json", "report format (json or pdf)")
	reportCmd.Flags().String("out", "", "output file name (relative to results dir)")
}
