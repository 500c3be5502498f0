// Package reference implements the fields reference command: a YAML listing
// of every canonical field and alias the extractor knows, so callers can see
// what names are worth requesting.
package reference

import (
	"fmt"

	"github.com/docstack/docfield/models"
	"github.com/docstack/docfield/pkg/fields"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type fieldsReference struct {
	Fields  []string          `yaml:"fields"`
	Aliases map[string]string `yaml:"aliases"`
	Note    string            `yaml:"note"`
}

func FieldsAction(c *cli.Context) error {
	extractor := fields.New()

	if c.IsSet("fields-file") {
		ff, err := models.LoadFieldsFile(c.String("fields-file"))
		if err != nil {
			return fmt.Errorf("failed to load fields file: %w", err)
		}
		extractor, err = fields.FromFieldsFile(ff)
		if err != nil {
			return fmt.Errorf("failed to build extractor: %w", err)
		}
	}

	ref := fieldsReference{
		Fields:  extractor.KnownFields(),
		Aliases: extractor.Aliases(),
		Note:    "any other name falls back to label matching, e.g. \"Department: Engineering\"",
	}

	data, err := yaml.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to marshal fields reference: %w", err)
	}

	fmt.Print(string(data))
	return nil
}
