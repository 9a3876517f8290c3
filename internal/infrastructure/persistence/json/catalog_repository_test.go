package json

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/veriscan-io/veriscan-cli/internal/catalog"
	"github.com/veriscan-io/veriscan-cli/internal/domain/surface"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

func writeOverrideFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func findRule(rules []surface.Rule, key string) (surface.Rule, bool) {
	for _, r := range rules {
		if r.Key == key {
			return r, true
		}
	}
	return surface.Rule{}, false
}

func TestCatalogRepositoryServesBuiltins(t *testing.T) {
	repo, err := NewCatalogRepository("")
	if err != nil {
		t.Fatal(err)
	}

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(catalog.Default()) {
		t.Fatalf("All returned %d rules, built-in catalog has %d", len(all), len(catalog.Default()))
	}

	enabled, err := repo.Enabled(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range enabled {
		if !r.Enabled {
			t.Fatalf("disabled rule %s reached Enabled()", r.Key)
		}
	}
}

func TestCatalogRepositoryRejectsMissingOverrideFile(t *testing.T) {
	if _, err := NewCatalogRepository(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing override file")
	}
}

func TestCatalogRepositoryOverrideReplacesInPlace(t *testing.T) {
	path := writeOverrideFile(t, `[
		{"surfaceKey": "HOMEPAGE", "label": "Homepage", "category": "Web Fundamentals", "importanceTier": "CRITICAL", "evidenceProvider": "CRAWL", "enabled": false},
		{"surfaceKey": "PARTNER_ABOUT_PAGE", "label": "Partner about page", "category": "Custom", "importanceTier": "OPTIONAL", "evidenceProvider": "CRAWL", "checkMode": "WELL_KNOWN_PATH", "enabled": true}
	]`)

	repo, err := NewCatalogRepository(path)
	if err != nil {
		t.Fatal(err)
	}

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(catalog.Default())+1 {
		t.Fatalf("merged catalog has %d rules, want %d", len(all), len(catalog.Default())+1)
	}

	// The overridden rule keeps its built-in position.
	builtinIdx := -1
	for i, r := range catalog.Default() {
		if r.Key == "HOMEPAGE" {
			builtinIdx = i
			break
		}
	}
	if builtinIdx < 0 {
		t.Fatal("HOMEPAGE missing from built-in catalog")
	}
	if all[builtinIdx].Key != "HOMEPAGE" || all[builtinIdx].Enabled {
		t.Errorf("position %d = %s enabled=%v, override should disable HOMEPAGE in place",
			builtinIdx, all[builtinIdx].Key, all[builtinIdx].Enabled)
	}

	// The novel key lands at the end.
	if all[len(all)-1].Key != "PARTNER_ABOUT_PAGE" {
		t.Errorf("last rule = %s, want appended override", all[len(all)-1].Key)
	}

	enabled, err := repo.Enabled(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := findRule(enabled, "HOMEPAGE"); ok {
		t.Error("disabled HOMEPAGE override still enabled")
	}
	custom, ok := findRule(enabled, "PARTNER_ABOUT_PAGE")
	if !ok {
		t.Fatal("appended override missing from Enabled()")
	}
	if custom.Kind.Class != surface.ClassWellKnownPath {
		t.Errorf("override kind = %v, Normalize should run on loaded rules", custom.Kind.Class)
	}
}

func TestCatalogRepositoryRejectsBadOverrides(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		path := writeOverrideFile(t, `[{"surfaceKey": "", "label": "Nameless", "enabled": true}]`)
		repo, err := NewCatalogRepository(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := repo.All(context.Background()); !errors.Is(err, sharedErrors.ErrEmptySurfaceKey) {
			t.Fatalf("expected ErrEmptySurfaceKey, got %v", err)
		}
	})

	t.Run("duplicate key", func(t *testing.T) {
		path := writeOverrideFile(t, `[
			{"surfaceKey": "HOMEPAGE", "label": "A", "enabled": true},
			{"surfaceKey": "HOMEPAGE", "label": "B", "enabled": true}
		]`)
		repo, err := NewCatalogRepository(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := repo.All(context.Background()); !errors.Is(err, sharedErrors.ErrDuplicateSurfaceKey) {
			t.Fatalf("expected ErrDuplicateSurfaceKey, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeOverrideFile(t, `{not json`)
		repo, err := NewCatalogRepository(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := repo.All(context.Background()); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
