package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	scanapp "github.com/veriscan-io/veriscan-cli/internal/application/scan"
	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run and inspect digital footprint scans",
}

var scanRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan every enabled surface for a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Setup signal handling
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		go func() {
			select {
			case sig := <-sigCh:
				fmt.Printf("\n%s Received %s, finalizing in-flight probes...\n", colorWarn("!"), sig.String())
				cancel()
			case <-ctx.Done():
			}
		}()

		clientID, _ := cmd.Flags().GetString("client")
		modeFlag, _ := cmd.Flags().GetString("mode")
		if clientID == "" {
			return errors.New("--client is required")
		}

		mode := scan.Mode(modeFlag)
		if mode != scan.ModeCrawlOnly && mode != scan.ModeCrawlPlusProvider {
			return fmt.Errorf("invalid mode %q (use %s or %s)", modeFlag, scan.ModeCrawlOnly, scan.ModeCrawlPlusProvider)
		}

		c, err := container.ClientService.GetClient(ctx, clientID)
		if err != nil {
			if errors.Is(err, sharedErrors.ErrClientNotFound) {
				return fmt.Errorf("client %s not found", clientID)
			}
			return fmt.Errorf("failed to get client: %w", err)
		}

		fmt.Printf("%s Starting scan for client: %s\n", colorInfo("→"), c.Name())
		if c.Entity() == nil {
			fmt.Printf("%s No entity profile set; surfaces will be marked NEEDS_ENTITY_INPUT\n", colorWarn("!"))
		}

		start := time.Now()
		s, err := container.ScanOrchestrator.Run(ctx, scanapp.Config{
			ClientID:   c.ID(),
			ClientName: c.Name(),
			Mode:       mode,
			Entity:     c.Entity(),
		})
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		summary := s.Summary()
		fmt.Printf("\n%s Scan %s completed in %s\n", colorSuccess("✓"), s.ID(), time.Since(start).Round(time.Millisecond))
		fmt.Printf("  Surfaces: %d | Present: %d | Absent: %d | Score: %d/100\n",
			summary.TotalSurfaces, summary.PresentCount, summary.AbsentCount, summary.Score)
		printStatusBreakdown(summary)
		fmt.Printf("%s View details: veriscan scan view --id %s\n", colorInfo("→"), s.ID())
		return nil
	},
}

var scanListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scans, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clientID, _ := cmd.Flags().GetString("client")

		var scans []*scan.Scan
		var err error
		if clientID != "" {
			scans, err = container.ScanRepo.FindByClientID(ctx, clientID)
		} else {
			scans, err = container.ScanRepo.FindAll(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list scans: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCLIENT\tSTATUS\tSTARTED\tSCORE")
		for _, s := range scans {
			score := "-"
			if s.Summary() != nil {
				score = fmt.Sprintf("%d", s.Summary().Score)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.ID(), s.ClientName(), formatStatusWithColor(string(s.Status())),
				s.StartedAt().Format(time.RFC3339), score)
		}
		return w.Flush()
	},
}

var scanViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View a single scan with its surface results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, _ := cmd.Flags().GetString("id")
		statusFilter, _ := cmd.Flags().GetString("status")
		asJSON, _ := cmd.Flags().GetBool("json")
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

		if asJSON {
			b, _ := json.MarshalIndent(scanToOutput(s), jsonPrefix, jsonIndent)
			fmt.Println(string(b))
			return nil
		}

		fmt.Printf("Scan %s (%s) client=%s mode=%s\n",
			s.ID(), formatStatusWithColor(string(s.Status())), s.ClientName(), s.Mode())
		if summary := s.Summary(); summary != nil {
			fmt.Printf("Score %d/100 | present %d | absent %d | surfaces %d\n\n",
				summary.Score, summary.PresentCount, summary.AbsentCount, summary.TotalSurfaces)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SURFACE\tSTATUS\tCONFIDENCE\tNOTE")
		for _, r := range s.Results() {
			if statusFilter != "" && string(r.Status()) != statusFilter {
				continue
			}
			note := r.ErrorMessage()
			if note == "" && r.Evidence() != nil && r.Evidence().Fetch != nil {
				note = r.Evidence().Fetch.FinalURL
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				r.SurfaceKey(), formatStatusWithColor(string(r.Status())), r.Confidence(), note)
		}
		return w.Flush()
	},
}

func printStatusBreakdown(summary *scan.Summary) {
	if summary == nil {
		return
	}
	for _, status := range []scan.ResultStatus{
		scan.StatusPresentConfirmed,
		scan.StatusPresentPartial,
		scan.StatusAbsent,
		scan.StatusNeedsEntityInput,
		scan.StatusManualRequired,
		scan.StatusRequiresProvider,
		scan.StatusError,
		scan.StatusSkipped,
	} {
		if n := summary.StatusCounts[status]; n > 0 {
			fmt.Printf("  %s: %d\n", formatStatusWithColor(string(status)), n)
		}
	}
}

func init() {
	scanRunCmd.Flags().String("client", "", "client ID to scan")
	scanRunCmd.Flags().String("mode", string(scan.ModeCrawlOnly), "scan mode (CRAWL_ONLY or CRAWL_PLUS_PROVIDER)")
	scanRunCmd.Flags().Int("concurrency", 0, "maximum concurrent probes")
	scanRunCmd.Flags().Int("rate-limit", 0, "probes per second")
	scanRunCmd.Flags().Int("timeout", 0, "HTTP probe timeout in seconds")

	scanListCmd.Flags().String("client", "", "filter by client ID")

	scanViewCmd.Flags().String("id", "", "scan ID")
	scanViewCmd.Flags().String("status", "", "only show results with this status")
	scanViewCmd.Flags().Bool("json", false, "print the full scan as JSON")

	scanCmd.AddCommand(scanRunCmd)
	scanCmd.AddCommand(scanListCmd)
	scanCmd.AddCommand(scanViewCmd)
}
