package runtimeconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

var ErrConfigFormatUnknown = errors.New("mvb config: unsupported config file extension")

// Patterns is a list of glob patterns. Config files may give a single string.
type Patterns []string

// UnmarshalYAML accepts a scalar or a sequence.
func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*p = Patterns{single}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*p = Patterns(list)
	return nil
}

// UnmarshalTOML accepts a string or an array of strings.
func (p *Patterns) UnmarshalTOML(node *unstable.Node) error {
	switch node.Kind {
	case unstable.String:
		*p = Patterns{string(node.Data)}
		return nil
	case unstable.Array:
		list := Patterns{}
		children := node.Children()
		for children.Next() {
			child := children.Node()
			if child.Kind != unstable.String {
				return fmt.Errorf("mvb config: glob pattern must be a string, got %s", child.Kind)
			}
			list = append(list, string(child.Data))
		}
		*p = list
		return nil
	default:
		return fmt.Errorf("mvb config: glob patterns must be a string or an array, got %s", node.Kind)
	}
}

// Compact drops blank patterns.
func (p Patterns) Compact() []string {
	out := make([]string, 0, len(p))
	for _, pattern := range p {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// LoadFile decodes a YAML (.yaml, .yml) or TOML (.toml) file over
// DefaultConfig and validates the result.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("mvb config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(raw)).EnableUnmarshalerInterface().Decode(&cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrConfigFormatUnknown, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("mvb config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
