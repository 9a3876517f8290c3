package scan

import "context"

// Repository defines the interface for scan persistence
type Repository interface {
	// Save persists a scan with all its result rows. Saving an already
	// persisted scan overwrites it, which keeps a running scan queryable
	// while probes execute.
	Save(ctx context.Context, s *Scan) error

	// FindByID retrieves a scan by its ID
	FindByID(ctx context.Context, id string) (*Scan, error)

	// FindByClientID retrieves all scans for a client, newest first
	FindByClientID(ctx context.Context, clientID string) ([]*Scan, error)

	// FindAll retrieves all scans
	FindAll(ctx context.Context) ([]*Scan, error)

	// Delete removes a scan by its ID
	Delete(ctx context.Context, id string) error
}
