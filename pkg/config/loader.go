// Package config loads wizard definitions from YAML or JSON, validates them
// and exposes the embedded presets plus the environment used by the CLI.
package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwizard/pkg/model"
)

//go:embed presets/*.yaml
var presetsFS embed.FS

var validate = validator.New()

// Load reads and validates a wizard definition from fsys.
func Load(fsys fs.FS, path string) (model.FormModel, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFile reads and validates a wizard definition from disk.
func LoadFile(path string) (model.FormModel, error) {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return Load(os.DirFS(dir), name)
}

// Preset returns one of the embedded wizard definitions ("activity", "place").
func Preset(name string) (model.FormModel, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	form, err := Load(presetsFS, "presets/"+key+".yaml")
	if errors.Is(err, fs.ErrNotExist) {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return form, err
}

// Presets lists the embedded preset names.
func Presets() []string {
	entries, err := fs.ReadDir(presetsFS, "presets")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

// Parse decodes data according to the extension of path and validates the
// result.
func Parse(data []byte, path string) (model.FormModel, error) {
	var form model.FormModel
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &form); err != nil {
			return model.FormModel{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &form); err != nil {
			return model.FormModel{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return model.FormModel{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := Validate(form); err != nil {
		return model.FormModel{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := model.Decorate(&form, model.LabelDecorator(nil)); err != nil {
		return model.FormModel{}, fmt.Errorf("config: decorate %s: %w", path, err)
	}
	return form, nil
}

// Validate checks struct tags plus the range rules the tags cannot express:
// minimum and maximum come together, minimum <= maximum, and a start pair
// requires a range.
func Validate(form model.FormModel) error {
	if err := validate.Struct(form); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("duplicate field %q", field.Name)
		}
		seen[field.Name] = struct{}{}

		if (field.Minimum == nil) != (field.Maximum == nil) {
			return fmt.Errorf("%w: field %q needs both minimum and maximum", ErrInvalidRange, field.Name)
		}
		if field.HasRange() && *field.Minimum > *field.Maximum {
			return fmt.Errorf("%w: field %q minimum %v exceeds maximum %v", ErrInvalidRange, field.Name, *field.Minimum, *field.Maximum)
		}
		if len(field.Start) > 0 && !field.HasRange() {
			return fmt.Errorf("%w: field %q has a start pair but no range", ErrInvalidRange, field.Name)
		}
	}
	return nil
}
