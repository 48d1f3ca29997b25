package utils

import (
	"fmt"

	"github.com/quillsign/quillsign/internal/domain/field"
	"gopkg.in/yaml.v2"
)

type fieldTemplateFile struct {
	Name   string                    `yaml:"name"`
	Fields []field.TemplateFieldSpec `yaml:"fields"`
}

// ParseFieldTemplate reads a YAML field-template document into field specs.
// Geometry and type validity are checked here so a malformed template is
// rejected before any field row is written.
func ParseFieldTemplate(data []byte) ([]field.TemplateFieldSpec, error) {
	var tpl fieldTemplateFile
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("invalid template yaml: %w", err)
	}
	if len(tpl.Fields) == 0 {
		return nil, fmt.Errorf("template contains no fields")
	}

	for i, spec := range tpl.Fields {
		if spec.Page < 1 {
			return nil, fmt.Errorf("field %d: page must be >= 1", i)
		}
		if spec.W <= 0 || spec.H <= 0 {
			return nil, fmt.Errorf("field %d: width and height must be positive", i)
		}
		if !field.Type(spec.Type).Valid() {
			return nil, fmt.Errorf("field %d: unknown type %q", i, spec.Type)
		}
	}

	return tpl.Fields, nil
}
