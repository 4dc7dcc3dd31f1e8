// Package catalog is the single source of truth for the assistant's tool
// surface. The specs here are converted to Eino ToolInfo for the vendor
// adapters and drive argument validation in the dispatcher.
package catalog

import (
	"fmt"

	"github.com/cloudwego/eino/schema"
)

// Param describes one tool parameter, mirroring a JSON-schema property.
type Param struct {
	// Type is the JSON-schema type: string, number, integer, boolean,
	// array, or object.
	Type string
	// Desc explains the parameter to the model.
	Desc string
	// Enum restricts string parameters to a fixed value set.
	Enum []string
	// Required marks the parameter as mandatory.
	Required bool
	// Items describes array elements when Type is array.
	Items *Param
	// Properties describes object members when Type is object.
	Properties map[string]*Param
}

// Spec declares one tool: its name, its description shown to the model,
// and its parameter schema.
type Spec struct {
	Name        string
	Description string
	Params      map[string]*Param
}

// ValidateArgs checks that every required top-level parameter is present.
func (s *Spec) ValidateArgs(args map[string]interface{}) error {
	for name, p := range s.Params {
		if !p.Required {
			continue
		}
		if _, ok := args[name]; !ok {
			return fmt.Errorf("missing required argument %q", name)
		}
	}
	return nil
}

var dataTypes = map[string]schema.DataType{
	"string":  schema.String,
	"number":  schema.Number,
	"integer": schema.Integer,
	"boolean": schema.Boolean,
	"array":   schema.Array,
	"object":  schema.Object,
}

func (p *Param) parameterInfo() *schema.ParameterInfo {
	info := &schema.ParameterInfo{
		Type:     dataTypes[p.Type],
		Desc:     p.Desc,
		Enum:     p.Enum,
		Required: p.Required,
	}
	if p.Items != nil {
		info.ElemInfo = p.Items.parameterInfo()
	}
	if len(p.Properties) > 0 {
		info.SubParams = make(map[string]*schema.ParameterInfo, len(p.Properties))
		for name, sub := range p.Properties {
			info.SubParams[name] = sub.parameterInfo()
		}
	}
	return info
}

// ToolInfo converts the spec to the Eino tool declaration.
func (s *Spec) ToolInfo() *schema.ToolInfo {
	params := make(map[string]*schema.ParameterInfo, len(s.Params))
	for name, p := range s.Params {
		params[name] = p.parameterInfo()
	}
	return &schema.ToolInfo{
		Name:        s.Name,
		Desc:        s.Description,
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}
}

// List returns all tool specs in declaration order. The order is stable so
// vendor payloads and parity checks are deterministic.
func List() []*Spec {
	out := make([]*Spec, len(specs))
	copy(out, specs)
	return out
}

// Lookup returns the spec for a tool name, or nil if unknown.
func Lookup(name string) *Spec {
	for _, s := range specs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// ToolInfos converts the whole catalog for the vendor adapters.
func ToolInfos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(specs))
	for _, s := range specs {
		infos = append(infos, s.ToolInfo())
	}
	return infos
}
