package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Descriptor is the on-disk bootstrap metadata
type Descriptor struct {
	Kernel string `yaml:"kernel" toml:"kernel"`
}

// ReadDescriptor reads and parses a descriptor file, choosing the format from
// the file extension.
func ReadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return ParseDescriptor(data, filepath.Ext(path))
}

// ParseDescriptor parses descriptor content. ext is ".yaml", ".yml" or ".toml".
func ParseDescriptor(data []byte, ext string) (*Descriptor, error) {
	var d Descriptor

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("invalid YAML descriptor: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("invalid TOML descriptor: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported descriptor format: %q", ext)
	}

	d.Kernel = strings.TrimSpace(d.Kernel)
	if d.Kernel == "" {
		return nil, fmt.Errorf("descriptor does not name a kernel")
	}
	return &d, nil
}
