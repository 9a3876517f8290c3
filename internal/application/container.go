package application

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	clientapp "github.com/veriscan-io/veriscan-cli/internal/application/client"
	scanapp "github.com/veriscan-io/veriscan-cli/internal/application/scan"
	"github.com/veriscan-io/veriscan-cli/internal/domain/client"
	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	"github.com/veriscan-io/veriscan-cli/internal/domain/surface"
	"github.com/veriscan-io/veriscan-cli/internal/infrastructure/persistence/json"
	"github.com/veriscan-io/veriscan-cli/internal/prober"
)

// ProbeOptions tune the network side of a scan. Zero values fall back to the
// engine defaults.
type ProbeOptions struct {
	Concurrency int
	RateLimit   int
	HTTPTimeout time.Duration
	DNSTimeout  time.Duration
	UserAgent   string
	Nameservers []string
}

// Container holds all application services and repositories
// This is a simple dependency injection container
type Container struct {
	// Repositories
	ClientRepo client.Repository
	ScanRepo   scan.Repository
	Catalog    surface.Catalog

	// Services
	ClientService    *clientapp.Service
	ScanOrchestrator *scanapp.Orchestrator
}

// NewContainer creates a new application service container
func NewContainer(dataDir, resultsDir, catalogPath string, opts ProbeOptions, logger *zap.SugaredLogger) (*Container, error) {
	clientRepo, err := json.NewClientRepository(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create client repository: %w", err)
	}

	scanRepo, err := json.NewScanRepository(resultsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan repository: %w", err)
	}

	catalog, err := json.NewCatalogRepository(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create surface catalog: %w", err)
	}

	httpProber := &prober.HTTPProber{
		Timeout:   opts.HTTPTimeout,
		UserAgent: opts.UserAgent,
	}
	dnsProber := &prober.DNSProber{
		Timeout:     opts.DNSTimeout,
		Nameservers: opts.Nameservers,
	}
	runner := &prober.Runner{
		Concurrency: opts.Concurrency,
		RateLimit:   opts.RateLimit,
	}

	clientService := clientapp.NewService(clientRepo)
	scanOrchestrator := scanapp.NewOrchestrator(scanRepo, catalog, httpProber, dnsProber, runner, logger)

	return &Container{
		ClientRepo:       clientRepo,
		ScanRepo:         scanRepo,
		Catalog:          catalog,
		ClientService:    clientService,
		ScanOrchestrator: scanOrchestrator,
	}, nil
}
