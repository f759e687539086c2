package keypad

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlLayout is the on-disk schema of a layout file:
//
//	sentinel: "_"
//	rows:
//	  - "ABCDE"
//	  - "FGHIJ"
//	  - "KLMNO"
//	  - "_123_"
type yamlLayout struct {
	Sentinel string   `yaml:"sentinel"`
	Rows     []string `yaml:"rows"`
}

// LoadYAML reads and validates a layout from a YAML file.
func LoadYAML(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read layout file %q", path)
	}
	l, err := UnmarshalYAML(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "invalid layout file %q", path)
	}
	return l, nil
}

// UnmarshalYAML validates and builds a Layout from YAML contents.
func UnmarshalYAML(data []byte) (*Layout, error) {
	var doc yamlLayout
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse layout YAML")
	}
	if len(doc.Sentinel) != 1 {
		return nil, errors.Errorf("layout sentinel must be a single character, got %q", doc.Sentinel)
	}
	return ParseRows(Key(doc.Sentinel[0]), doc.Rows)
}
