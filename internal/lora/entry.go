// Package lora selects weighted style/content modifiers for an image
// prompt from a static keyword-triggered catalog.
package lora

// Category is the closed set of catalog entry kinds. Per-category quotas
// key off this set, so an entry can never reference an unknown category.
type Category string

const (
	CategoryAdapter Category = "adapter"
	CategoryUtility Category = "utility"
	CategoryRealism Category = "realism"
	CategoryStyle   Category = "style"
	CategorySlider  Category = "slider"
	CategoryMorph   Category = "morph"
	CategoryNSFW    Category = "nsfw"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryAdapter,
	CategoryUtility,
	CategoryRealism,
	CategoryStyle,
	CategorySlider,
	CategoryMorph,
	CategoryNSFW,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Entry is one catalog item. Entries are immutable for the process
// lifetime; the selector references them, it never copies or mutates.
type Entry struct {
	// Model file name, also used inside the rendered <lora:...> token
	Name string `yaml:"name"`

	// Default application weight in [0, 1]
	Weight float64 `yaml:"weight"`

	Category Category `yaml:"category"`

	// Lower-case words/phrases that activate the entry via substring match
	Keywords []string `yaml:"keywords"`

	// Whether the entry is usable with SDXL-family checkpoints
	SDXLOk bool `yaml:"sdxl_ok"`

	Notes string `yaml:"notes,omitempty"`

	// Human-readable phrase appended to the prompt after the token;
	// when empty a readable form is derived from the name
	Trigger string `yaml:"trigger,omitempty"`
}

// Fallback names a catalog entry to apply, with an override weight, when
// no entry matches the turn at all.
type Fallback struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}
