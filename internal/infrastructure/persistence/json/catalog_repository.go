package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/veriscan-io/veriscan-cli/internal/catalog"
	"github.com/veriscan-io/veriscan-cli/internal/domain/surface"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

// CatalogRepository serves the surface catalog: the built-in rule set,
// optionally overlaid with rules from a JSON file. An override rule replaces
// the built-in rule with the same key, so a file can disable or retune
// individual surfaces without restating the whole catalog.
type CatalogRepository struct {
	overridePath string

	mu     sync.Mutex
	loaded []surface.Rule
}

// NewCatalogRepository creates a catalog backed by the built-in rules.
// overridePath may be empty; if set, the file is read lazily on first use.
func NewCatalogRepository(overridePath string) (*CatalogRepository, error) {
	if overridePath != "" {
		if _, err := os.Stat(overridePath); err != nil {
			return nil, fmt.Errorf("catalog override file: %w", err)
		}
	}

	return &CatalogRepository{
		overridePath: overridePath,
	}, nil
}

// Enabled returns all enabled rules, normalized and in catalog order.
func (r *CatalogRepository) Enabled(ctx context.Context) ([]surface.Rule, error) {
	rules, err := r.all()
	if err != nil {
		return nil, err
	}

	enabled := make([]surface.Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Enabled {
			enabled = append(enabled, rule)
		}
	}

	return enabled, nil
}

// All returns every rule including disabled ones.
func (r *CatalogRepository) All(ctx context.Context) ([]surface.Rule, error) {
	return r.all()
}

func (r *CatalogRepository) all() ([]surface.Rule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded != nil {
		return r.loaded, nil
	}

	rules := catalog.Default()
	if r.overridePath != "" {
		overrides, err := r.loadOverrides()
		if err != nil {
			return nil, err
		}
		rules = mergeOverrides(rules, overrides)
	}

	r.loaded = rules
	return rules, nil
}

func (r *CatalogRepository) loadOverrides() ([]surface.Rule, error) {
	data, err := os.ReadFile(r.overridePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog override: %w", err)
	}

	var overrides []surface.Rule
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse catalog override: %w", err)
	}

	seen := make(map[string]bool, len(overrides))
	for i := range overrides {
		overrides[i].Normalize()
		if overrides[i].Key == "" {
			return nil, sharedErrors.ErrEmptySurfaceKey
		}
		if seen[overrides[i].Key] {
			return nil, fmt.Errorf("%w: %s", sharedErrors.ErrDuplicateSurfaceKey, overrides[i].Key)
		}
		seen[overrides[i].Key] = true
	}

	return overrides, nil
}

// mergeOverrides keeps base order for overridden keys and appends new keys
// at the end, so exactly one active rule exists per key.
func mergeOverrides(base, overrides []surface.Rule) []surface.Rule {
	byKey := make(map[string]surface.Rule, len(overrides))
	for _, o := range overrides {
		byKey[o.Key] = o
	}

	merged := make([]surface.Rule, 0, len(base)+len(overrides))
	for _, rule := range base {
		if o, ok := byKey[rule.Key]; ok {
			merged = append(merged, o)
			delete(byKey, rule.Key)
			continue
		}
		merged = append(merged, rule)
	}

	for _, o := range overrides {
		if _, ok := byKey[o.Key]; ok {
			merged = append(merged, o)
		}
	}

	return merged
}
