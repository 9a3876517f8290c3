package client

import "context"

// Repository defines the interface for client profile persistence
type Repository interface {
	// Save persists a client profile
	Save(ctx context.Context, c *Client) error

	// FindByID retrieves a client by its ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// FindByName retrieves a client by its exact name
	FindByName(ctx context.Context, name string) (*Client, error)

	// FindAll retrieves all clients
	FindAll(ctx context.Context) ([]*Client, error)

	// Delete removes a client by its ID
	Delete(ctx context.Context, id string) error
}
