package config

import (
	"fmt"

	"github.com/fernandosanchezjr/bitpatterns/patterns"
)

const DefaultWidth = 32

type Config struct {
	Width    uint    `yaml:"width,omitempty"`
	Entries  []Entry `yaml:"patterns"`
}

type Entry struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Width  uint   `yaml:"width,omitempty"`
	Length int    `yaml:"length"`
	Seed   uint32 `yaml:"seed,omitempty"`
	Nibble *byte  `yaml:"nibble,omitempty"`
}

// Patterns converts the plan entries, applying the plan width where an entry
// has none.
func (c *Config) Patterns() ([]patterns.Pattern, error) {
	var defaultWidth = c.Width
	if defaultWidth == 0 {
		defaultWidth = DefaultWidth
	}
	var result = make([]patterns.Pattern, 0, len(c.Entries))
	for pos, entry := range c.Entries {
		kind, err := patterns.ParseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", pos, err)
		}
		var width = entry.Width
		if width == 0 {
			width = defaultWidth
		}
		var name = entry.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", kind, pos)
		}
		var seed = entry.Seed
		if entry.Nibble != nil {
			seed = patterns.NibbleSeed(*entry.Nibble, patterns.Width(width))
		}
		p := patterns.Pattern{
			Name:   name,
			Kind:   kind,
			Width:  patterns.Width(width),
			Length: entry.Length,
			Seed:   seed,
		}
		if err = p.Validate(); err != nil {
			return nil, fmt.Errorf("pattern %d: %w", pos, err)
		}
		result = append(result, p)
	}
	return result, nil
}
