package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/veriscan-io/veriscan-cli/internal/domain/client"
	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

// Service provides application-level client operations
type Service struct {
	repo client.Repository
}

// NewService creates a new client service
func NewService(repo client.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateClient creates a new client profile
func (s *Service) CreateClient(ctx context.Context, name string) (*client.Client, error) {
	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, fmt.Errorf("client %q: %w", name, sharedErrors.ErrClientAlreadyExists)
	}

	c, err := client.NewClient(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	return c, nil
}

// GetClient retrieves a client by ID
func (s *Service) GetClient(ctx context.Context, id string) (*client.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

// ListClients retrieves all clients
func (s *Service) ListClients(ctx context.Context) ([]*client.Client, error) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

// SetEntity replaces a client's canonical entity profile
func (s *Service) SetEntity(ctx context.Context, id string, ent *entity.CanonicalEntity) (*client.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	c.SetEntity(ent)

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	return c, nil
}

// SetEntityFromFile loads a canonical entity profile from a JSON file and
// attaches it to the client.
func (s *Service) SetEntityFromFile(ctx context.Context, id, path string) (*client.Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entity file: %w", err)
	}

	var ent entity.CanonicalEntity
	if err := json.Unmarshal(data, &ent); err != nil {
		return nil, fmt.Errorf("failed to parse entity file: %w", err)
	}

	return s.SetEntity(ctx, id, &ent)
}

// DeleteClient removes a client by ID
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
