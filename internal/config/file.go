package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrUnknownPreset = errors.New("unknown preset")

type Preset struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MineCount int `yaml:"minecount"`
}

// File holds user defaults read from YAML.
type File struct {
	Mine      string            `yaml:"mine"`
	OpenFirst bool              `yaml:"open_first"`
	Presets   map[string]Preset `yaml:"presets"`
}

func builtinPresets() map[string]Preset {
	return map[string]Preset{
		"beginner":     {Width: 9, Height: 9, MineCount: 10},
		"intermediate": {Width: 16, Height: 16, MineCount: 40},
		"expert":       {Width: 30, Height: 16, MineCount: 99},
	}
}

func DefaultFile() *File {
	return &File{
		Mine:    DefaultMine,
		Presets: builtinPresets(),
	}
}

// LoadFile reads a defaults file. Presets it defines override the built-in
// ones of the same name.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}

	if file.Mine == "" {
		file.Mine = DefaultMine
	}
	presets := builtinPresets()
	for name, p := range file.Presets {
		presets[name] = p
	}
	file.Presets = presets

	return &file, nil
}

func (f *File) Preset(name string) (Preset, error) {
	p, ok := f.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return p, nil
}
