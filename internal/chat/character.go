package chat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Character holds everything the pipeline needs about a persona: the image
// prompt scaffolding plus the presentation hints the collaborators use.
type Character struct {
	Name           string   `yaml:"-"`
	SystemPrompt   string   `yaml:"system_prompt"`
	BasePrompt     string   `yaml:"base_prompt"`
	NegativePrompt string   `yaml:"negative_prompt"`
	Tone           string   `yaml:"tone,omitempty"`
	StyleTags      []string `yaml:"style_tags,omitempty"`
	NSFWAllowed    bool     `yaml:"nsfw_allowed,omitempty"`
}

// LoadCharacters reads a YAML mapping of name -> character and injects
// each key as the character's name.
func LoadCharacters(path string) (map[string]Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading characters: %w", err)
	}

	var raw map[string]Character
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing characters: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no characters defined in %s", path)
	}

	out := make(map[string]Character, len(raw))
	for name, c := range raw {
		if c.BasePrompt == "" {
			return nil, fmt.Errorf("character %q has no base_prompt", name)
		}
		c.Name = name
		out[name] = c
	}
	return out, nil
}
