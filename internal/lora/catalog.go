package lora

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the static modifier configuration: the entries themselves,
// the ordered fallback list, per-category quotas, and the global cap.
// It is loaded once at startup and read-only afterwards.
type Catalog struct {
	Entries   []Entry          `yaml:"entries"`
	Fallbacks []Fallback       `yaml:"fallbacks"`
	Limits    map[Category]int `yaml:"limits"`
	MaxTotal  int              `yaml:"max_total"`
}

// Load reads a catalog from a YAML file and validates it. Quotas or the
// global cap left unset in the file fall back to the built-in defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	def := Default()
	if cat.Limits == nil {
		cat.Limits = def.Limits
	}
	if cat.MaxTotal == 0 {
		cat.MaxTotal = def.MaxTotal
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &cat, nil
}

// Validate checks the catalog for configuration errors. A malformed
// catalog is rejected here, at load time; the selector itself is total
// and assumes a validated catalog.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("catalog has no entries")
	}
	if c.MaxTotal < 1 {
		return fmt.Errorf("max_total must be at least 1, got %d", c.MaxTotal)
	}

	anyQuota := false
	for cat, limit := range c.Limits {
		if !cat.Valid() {
			return fmt.Errorf("quota for unknown category %q", cat)
		}
		if limit < 0 {
			return fmt.Errorf("negative quota %d for category %q", limit, cat)
		}
		if limit > 0 {
			anyQuota = true
		}
	}
	if !anyQuota {
		return fmt.Errorf("every category quota is zero; nothing could ever be selected")
	}

	seen := make(map[string]bool, len(c.Entries))
	for i, e := range c.Entries {
		if e.Name == "" {
			return fmt.Errorf("entry %d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate entry %q", e.Name)
		}
		seen[e.Name] = true
		if e.Weight < 0 || e.Weight > 1 {
			return fmt.Errorf("entry %q: weight %.2f outside [0, 1]", e.Name, e.Weight)
		}
		if !e.Category.Valid() {
			return fmt.Errorf("entry %q: unknown category %q", e.Name, e.Category)
		}
		if len(e.Keywords) == 0 {
			return fmt.Errorf("entry %q: no keywords", e.Name)
		}
		for _, k := range e.Keywords {
			if k == "" {
				return fmt.Errorf("entry %q: empty keyword", e.Name)
			}
		}
	}

	for _, f := range c.Fallbacks {
		if !seen[f.Name] {
			return fmt.Errorf("fallback %q not present in catalog", f.Name)
		}
		if f.Weight < 0 || f.Weight > 1 {
			return fmt.Errorf("fallback %q: weight %.2f outside [0, 1]", f.Name, f.Weight)
		}
	}

	return nil
}

// limit returns the quota for a category, defaulting to one when the
// catalog does not list it explicitly.
func (c *Catalog) limit(cat Category) int {
	if l, ok := c.Limits[cat]; ok {
		return l
	}
	return 1
}

// find returns the entry with the given name, or nil.
func (c *Catalog) find(name string) *Entry {
	for i := range c.Entries {
		if c.Entries[i].Name == name {
			return &c.Entries[i]
		}
	}
	return nil
}
