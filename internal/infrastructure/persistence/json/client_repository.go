package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/veriscan-io/veriscan-cli/internal/domain/client"
	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
	"github.com/veriscan-io/veriscan-cli/internal/shared/security"
)

// clientDTO is the data transfer object for JSON serialization
type clientDTO struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Entity    *entity.CanonicalEntity `json:"entity,omitempty"`
	CreatedAt string                  `json:"created_at"`
	UpdatedAt string                  `json:"updated_at,omitempty"`
}

// ClientRepository implements the client.Repository interface using JSON file storage
type ClientRepository struct {
	filePath string
	mu       sync.RWMutex
}

// NewClientRepository creates a new JSON-based client repository
func NewClientRepository(dataDir string) (*ClientRepository, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, "clients.json")
	if !security.IsValidPath(filePath) {
		return nil, fmt.Errorf("invalid file path: %s", filePath)
	}

	repo := &ClientRepository{
		filePath: filePath,
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := repo.saveToFile([]clientDTO{}); err != nil {
			return nil, fmt.Errorf("failed to initialize clients file: %w", err)
		}
	}

	return repo, nil
}

// Save persists a client profile
func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.loadFromFile()
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	dto := r.toDTO(c)

	found := false
	for i, existing := range clients {
		if existing.ID == dto.ID {
			clients[i] = dto
			found = true
			break
		}
	}

	if !found {
		clients = append(clients, dto)
	}

	if err := r.saveToFile(clients); err != nil {
		return fmt.Errorf("failed to save clients: %w", err)
	}

	return nil
}

// FindByID retrieves a client by its ID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients, err := r.loadFromFile()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	for _, dto := range clients {
		if dto.ID == id {
			return r.fromDTO(dto)
		}
	}

	return nil, sharedErrors.ErrClientNotFound
}

// FindByName retrieves a client by its exact name
func (r *ClientRepository) FindByName(ctx context.Context, name string) (*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients, err := r.loadFromFile()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	for _, dto := range clients {
		if dto.Name == name {
			return r.fromDTO(dto)
		}
	}

	return nil, sharedErrors.ErrClientNotFound
}

// FindAll retrieves all clients
func (r *ClientRepository) FindAll(ctx context.Context) ([]*client.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients, err := r.loadFromFile()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	result := make([]*client.Client, 0, len(clients))
	for _, dto := range clients {
		c, err := r.fromDTO(dto)
		if err != nil {
			return nil, fmt.Errorf("failed to convert client %s: %w", dto.ID, err)
		}
		result = append(result, c)
	}

	return result, nil
}

// Delete removes a client by its ID
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, err := r.loadFromFile()
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	found := false
	for i, dto := range clients {
		if dto.ID == id {
			clients = append(clients[:i], clients[i+1:]...)
			found = true
			break
		}
	}

	if !found {
		return sharedErrors.ErrClientNotFound
	}

	if err := r.saveToFile(clients); err != nil {
		return fmt.Errorf("failed to save clients: %w", err)
	}

	return nil
}

// Helper methods

func (r *ClientRepository) loadFromFile() ([]clientDTO, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []clientDTO{}, nil
		}
		return nil, err
	}

	var clients []clientDTO
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *ClientRepository) saveToFile(clients []clientDTO) error {
	data, err := json.MarshalIndent(clients, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.filePath, data, 0644)
}

func (r *ClientRepository) toDTO(c *client.Client) clientDTO {
	dto := clientDTO{
		ID:     c.ID(),
		Name:   c.Name(),
		Entity: c.Entity(),
	}

	if !c.CreatedAt().IsZero() {
		dto.CreatedAt = c.CreatedAt().Format(time.RFC3339)
	}
	if !c.UpdatedAt().IsZero() {
		dto.UpdatedAt = c.UpdatedAt().Format(time.RFC3339)
	}

	return dto
}

func (r *ClientRepository) fromDTO(dto clientDTO) (*client.Client, error) {
	var createdAt, updatedAt time.Time
	var err error

	if dto.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, dto.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created at time: %w", err)
		}
	}

	if dto.UpdatedAt != "" {
		updatedAt, err = time.Parse(time.RFC3339, dto.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated at time: %w", err)
		}
	}

	return client.Reconstruct(dto.ID, dto.Name, dto.Entity, createdAt, updatedAt), nil
}
