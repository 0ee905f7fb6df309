package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a level file.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a level description and checks the map header. Problems
// inside layers are not errors; the loader skips them with a warning.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	applyDefaults(&m)
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func applyDefaults(m *Map) {
	if m.Orientation == "" {
		m.Orientation = "orthogonal"
	}
	for i := range m.Layers {
		layer := &m.Layers[i]
		if layer.Type == TileLayerType {
			if layer.Width == 0 {
				layer.Width = m.Width
			}
			if layer.Height == 0 {
				layer.Height = m.Height
			}
		}
	}
}

func validate(m *Map) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", m.Width, m.Height)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("tile size must be positive, got %gx%g", m.TileWidth, m.TileHeight)
	}
	return nil
}
