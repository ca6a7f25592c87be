// Package event loads invocation requests from event files.
package event

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/davidbz/spendwatch/internal/domain"
)

// file mirrors domain.InvocationRequest with tags for every supported format.
type file struct {
	UseCurrentMonth  *bool `json:"use_current_month"  yaml:"use_current_month"`
	UsePreviousMonth bool  `json:"use_previous_month" yaml:"use_previous_month"`
	Year             int   `json:"year"               yaml:"year"`
	Month            int   `json:"month"              yaml:"month"`
}

func (f file) request() domain.InvocationRequest {
	return domain.InvocationRequest{
		UseCurrentMonth:  f.UseCurrentMonth,
		UsePreviousMonth: f.UsePreviousMonth,
		Year:             f.Year,
		Month:            f.Month,
	}
}

// LoadRequest reads a TOML, YAML or JSON event file. Keys absent from the
// file keep their invocation defaults.
func LoadRequest(filePath string) (domain.InvocationRequest, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return domain.InvocationRequest{}, fmt.Errorf("error accessing event file: %w", err)
	}

	if fileInfo.IsDir() {
		return domain.InvocationRequest{}, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return domain.InvocationRequest{}, fmt.Errorf("error reading event file: %w", err)
	}

	return Parse(fileExtension, fileData)
}

// Parse decodes event data in the format named by extension.
func Parse(extension string, data []byte) (domain.InvocationRequest, error) {
	var event file

	switch extension {
	case ".toml":
		return parseTOML(data)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &event); err != nil {
			return domain.InvocationRequest{}, fmt.Errorf("%w: error parsing YAML file: %w", domain.ErrInvalidRequest, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &event); err != nil {
			return domain.InvocationRequest{}, fmt.Errorf("%w: error parsing JSON file: %w", domain.ErrInvalidRequest, err)
		}
	default:
		return domain.InvocationRequest{}, fmt.Errorf("unsupported event file format: %s", extension)
	}

	return event.request(), nil
}

func parseTOML(data []byte) (domain.InvocationRequest, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return domain.InvocationRequest{}, fmt.Errorf("%w: error parsing TOML file: %w", domain.ErrInvalidRequest, err)
	}

	var event file

	if tree.Has("use_current_month") {
		value, ok := tree.Get("use_current_month").(bool)
		if !ok {
			return domain.InvocationRequest{}, fmt.Errorf("%w: use_current_month must be a boolean", domain.ErrInvalidRequest)
		}
		event.UseCurrentMonth = &value
	}

	if tree.Has("use_previous_month") {
		value, ok := tree.Get("use_previous_month").(bool)
		if !ok {
			return domain.InvocationRequest{}, fmt.Errorf("%w: use_previous_month must be a boolean", domain.ErrInvalidRequest)
		}
		event.UsePreviousMonth = value
	}

	if event.Year, err = tomlInt(tree, "year"); err != nil {
		return domain.InvocationRequest{}, err
	}
	if event.Month, err = tomlInt(tree, "month"); err != nil {
		return domain.InvocationRequest{}, err
	}

	return event.request(), nil
}

func tomlInt(tree *toml.Tree, key string) (int, error) {
	if !tree.Has(key) {
		return 0, nil
	}

	value, ok := tree.Get(key).(int64)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidRequest, key)
	}
	return int(value), nil
}
