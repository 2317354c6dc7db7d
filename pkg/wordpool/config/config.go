// Package config loads optional YAML configuration: extra corpus sources
// and deployment-specific denylist terms.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordpool/pkg/wordpool/source"
	"github.com/cognicore/wordpool/pkg/wordpool/validate"
)

// SourceEntry is one corpus definition in a sources file.
type SourceEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Class       string `yaml:"class"`
}

type sourcesFile struct {
	Sources []SourceEntry `yaml:"sources"`
}

// LoadSources loads extra corpus definitions from a YAML file.
func LoadSources(path string) ([]source.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	out := make([]source.Source, 0, len(f.Sources))
	for _, e := range f.Sources {
		if e.ID == "" {
			return nil, fmt.Errorf("source entry without id in %s", path)
		}
		class, err := validate.ParseClass(e.Class)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", e.ID, err)
		}
		out = append(out, source.Source{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			URL:         e.URL,
			Class:       class,
		})
	}
	return out, nil
}

// Denylist represents extra denylist terms configuration.
type Denylist struct {
	Terms []string `yaml:"terms"`
}

// LoadDenylist loads extra denylist terms from a YAML file.
func LoadDenylist(path string) (*Denylist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Denylist
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
