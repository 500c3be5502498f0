package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CustomField declares an extra recognizer set loaded from a fields file.
// Patterns are ordinary regular expressions; the first capture group of the
// first matching pattern becomes the value.
type CustomField struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases,omitempty"`
	Patterns []string `yaml:"patterns"`
}

// FieldsFile is the optional YAML file extending or replacing the built-in
// canonical field set.
type FieldsFile struct {
	// DisableBuiltins drops the built-in strategies so only custom fields and
	// the contextual fallback apply.
	DisableBuiltins bool `yaml:"disable_builtins,omitempty"`

	// Aliases maps extra synonyms onto canonical field names,
	// e.g. "employee no" -> employee_id.
	Aliases map[string]string `yaml:"aliases,omitempty"`

	Fields []CustomField `yaml:"fields,omitempty"`
}

// LoadFieldsFile reads and parses a fields file from disk.
func LoadFieldsFile(path string) (*FieldsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fields file: %w", err)
	}

	var ff FieldsFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse fields file: %w", err)
	}

	for _, cf := range ff.Fields {
		if cf.Name == "" {
			return nil, fmt.Errorf("fields file entry missing name")
		}
		if len(cf.Patterns) == 0 {
			return nil, fmt.Errorf("custom field %q has no patterns", cf.Name)
		}
	}

	return &ff, nil
}
