package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

// Client is a business whose digital footprint gets verified. It owns the
// canonical entity profile that the scan engine reads; the entity may be nil
// until the operator supplies one.
type Client struct {
	id        string
	name      string
	entity    *entity.CanonicalEntity
	createdAt time.Time
	updatedAt time.Time
}

// NewClient creates a client with validation.
func NewClient(name string) (*Client, error) {
	if name == "" {
		return nil, sharedErrors.ErrEmptyClientName
	}
	now := time.Now().UTC()
	return &Client{
		id:        "client-" + uuid.NewString(),
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct creates a client from persisted data (for repository use).
func Reconstruct(id, name string, ent *entity.CanonicalEntity, createdAt, updatedAt time.Time) *Client {
	return &Client{
		id:        id,
		name:      name,
		entity:    ent,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SetEntity replaces the canonical entity profile.
func (c *Client) SetEntity(ent *entity.CanonicalEntity) {
	c.entity = ent
	c.updatedAt = time.Now().UTC()
}

// Getters

func (c *Client) ID() string                       { return c.id }
func (c *Client) Name() string                     { return c.name }
func (c *Client) Entity() *entity.CanonicalEntity  { return c.entity }
func (c *Client) CreatedAt() time.Time             { return c.createdAt }
func (c *Client) UpdatedAt() time.Time             { return c.updatedAt }
