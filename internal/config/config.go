// Package config handles configuration loading and named point lookup.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/geopoint/internal/geo"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Points []Point `yaml:"points" json:"points"`

	resolver map[string]int
}

// Point is a named location. Position uses the "<lat> <lon> [alt]" text form.
type Point struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Aliases     []string        `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Position    geo.Coordinates `yaml:"position" json:"position"`
}

// UnmarshalYAML decodes a point and requires a valid position.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Aliases     []string `yaml:"aliases"`
		Position    string   `yaml:"position"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if strings.TrimSpace(raw.Position) == "" {
		return fmt.Errorf("line %d: point %q: position is required", value.Line, raw.Name)
	}

	pos, err := geo.Parse(raw.Position)
	if err != nil {
		return fmt.Errorf("line %d: point %q: %w", value.Line, raw.Name, err)
	}

	*p = Point{
		Name:        raw.Name,
		Description: raw.Description,
		Aliases:     raw.Aliases,
		Position:    pos,
	}
	return nil
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML configuration and validates point names.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Index(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve finds a point by name or alias. Lookup is case-insensitive.
// Resolve never modifies c, so it is safe for concurrent use once Index has run.
func (c *Config) Resolve(name string) (Point, bool) {
	key := normalizeName(name)

	if c.resolver == nil {
		// Not indexed, scan in file order
		for _, p := range c.Points {
			if normalizeName(p.Name) == key {
				return p, true
			}
			for _, alias := range p.Aliases {
				if normalizeName(alias) == key {
					return p, true
				}
			}
		}
		return Point{}, false
	}

	idx, ok := c.resolver[key]
	if !ok {
		return Point{}, false
	}

	return c.Points[idx], true
}

// Index validates point names and builds the lookup table used by Resolve.
// Parse calls it; configs assembled in code must call it before sharing c.
func (c *Config) Index() error {
	resolver := make(map[string]int, len(c.Points))

	for i, p := range c.Points {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("point #%d: name is required", i)
		}

		keys := append([]string{p.Name}, p.Aliases...)
		for _, key := range keys {
			key = normalizeName(key)
			if prev, ok := resolver[key]; ok {
				return fmt.Errorf("point %q: name %q already used by %q", p.Name, key, c.Points[prev].Name)
			}
			resolver[key] = i
		}
	}

	c.resolver = resolver
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
