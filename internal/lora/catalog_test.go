package lora

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:    "default catalog is valid",
			mutate:  func(c *Catalog) {},
			wantErr: "",
		},
		{
			name:    "zero cap",
			mutate:  func(c *Catalog) { c.MaxTotal = 0 },
			wantErr: "max_total",
		},
		{
			name: "all quotas zero",
			mutate: func(c *Catalog) {
				for cat := range c.Limits {
					c.Limits[cat] = 0
				}
			},
			wantErr: "quota",
		},
		{
			name:    "weight out of range",
			mutate:  func(c *Catalog) { c.Entries[0].Weight = 1.5 },
			wantErr: "weight",
		},
		{
			name:    "unknown category",
			mutate:  func(c *Catalog) { c.Entries[0].Category = "vibes" },
			wantErr: "category",
		},
		{
			name:    "entry without keywords",
			mutate:  func(c *Catalog) { c.Entries[0].Keywords = nil },
			wantErr: "keywords",
		},
		{
			name: "fallback not in catalog",
			mutate: func(c *Catalog) {
				c.Fallbacks = append(c.Fallbacks, Fallback{Name: "ghost", Weight: 0.3})
			},
			wantErr: "fallback",
		},
		{
			name: "duplicate entry name",
			mutate: func(c *Catalog) {
				c.Entries = append(c.Entries, c.Entries[0])
			},
			wantErr: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Default()
			tt.mutate(cat)
			err := cat.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	data := `
entries:
  - name: soft_focus
    weight: 0.35
    category: style
    keywords: ["soft focus", "dreamy", "hazy"]
    sdxl_ok: true
    trigger: soft focus look
  - name: crisp_detail
    weight: 0.5
    category: utility
    keywords: ["detail", "crisp"]
    sdxl_ok: true
fallbacks:
  - name: crisp_detail
    weight: 0.25
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, cat.Entries, 2)
	assert.Equal(t, CategoryStyle, cat.Entries[0].Category)
	assert.Equal(t, "soft focus look", cat.Entries[0].Trigger)

	// Quotas and cap fall back to the built-in defaults.
	def := Default()
	assert.Equal(t, def.MaxTotal, cat.MaxTotal)
	assert.Equal(t, def.Limits[CategoryUtility], cat.Limits[CategoryUtility])
}

func TestLoadRejectsMalformedCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	data := `
entries:
  - name: broken
    weight: 2.0
    category: style
    keywords: ["x"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
