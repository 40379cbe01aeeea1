// Package schemafile loads record schema declarations from YAML files, for
// callers that register schemas declaratively instead of in code.
//
//	record: packet
//	fields:
//	  - name: foo
//	    kind: scalar
//	    size: 4
//	  - name: bar
//	    kind: array
//	    size: 1
package schemafile

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tuannm99/varlayout"
)

type FieldDef struct {
	Name string `mapstructure:"name"`
	Kind string `mapstructure:"kind"`
	Size int    `mapstructure:"size"`
}

type Def struct {
	Record string     `mapstructure:"record"`
	Fields []FieldDef `mapstructure:"fields"`
}

func Load(path string) (*Def, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var def Def
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("unmarshal schema file: %w", err)
	}

	return &def, nil
}

// Build turns the declaration into an immutable schema. Kind strings are
// "scalar" and "array"; size is the element size in bytes.
func (d *Def) Build() (*varlayout.Schema, error) {
	b := varlayout.NewSchemaBuilder()
	for _, f := range d.Fields {
		switch f.Kind {
		case "scalar":
			b.Scalar(f.Name, f.Size)
		case "array":
			b.Array(f.Name, f.Size)
		default:
			return nil, fmt.Errorf("field %q: unknown kind %q", f.Name, f.Kind)
		}
	}
	return b.Build()
}
