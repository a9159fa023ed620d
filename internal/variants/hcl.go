package variants

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclDescriptor is the decoding target for an HCL descriptor file.
type hclDescriptor struct {
	File   string      `hcl:"file,optional"`
	Levels []*hclLevel `hcl:"level,block"`
}

// hclLevel keeps options as a raw expression so both a "A;B" string and a
// list of option strings are accepted.
type hclLevel struct {
	Options hcl.Expression `hcl:"options"`
}

// ParseHCL parses an HCL descriptor such as:
//
//	file = "Shared.fx"
//	level { options = "TEXTURE;_" }
//	level { options = ["SKINNING=2", "_"] }
func ParseHCL(filename string, data []byte) (*Descriptor, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, malformed(filename, diags)
	}

	var root hclDescriptor
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, malformed(filename, diags)
	}

	desc := &Descriptor{
		SourceFile: root.File,
		Levels:     make([]Level, 0, len(root.Levels)),
	}
	for i, l := range root.Levels {
		level, err := levelFromExpression(l.Options)
		if err != nil {
			return nil, malformed(filename, fmt.Errorf("level %d: %w", i, err))
		}
		desc.Levels = append(desc.Levels, level)
	}
	return desc, nil
}

func levelFromExpression(expr hcl.Expression) (Level, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, errors.New("options must be a known, non-null value")
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		return parseLevel(val.AsString()), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		level := make(Level, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if elem.IsNull() || !elem.Type().Equals(cty.String) {
				return nil, fmt.Errorf("option must be a string, got %s", elem.Type().FriendlyName())
			}
			level = append(level, parseOption(elem.AsString()))
		}
		return level, nil
	default:
		return nil, fmt.Errorf("options must be a string or a list of strings, got %s", ty.FriendlyName())
	}
}
