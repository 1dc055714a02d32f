package cloudformation

// Template is a compiled CloudFormation template. Sections this tool does not
// touch are carried as raw values so a parse/merge/write round trip preserves
// them.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion,omitempty" yaml:"AWSTemplateFormatVersion,omitempty"`
	Description              string                 `json:"Description,omitempty" yaml:"Description,omitempty"`
	Metadata                 map[string]interface{} `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
	Parameters               map[string]interface{} `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Mappings                 map[string]interface{} `json:"Mappings,omitempty" yaml:"Mappings,omitempty"`
	Conditions               map[string]interface{} `json:"Conditions,omitempty" yaml:"Conditions,omitempty"`
	Transform                interface{}            `json:"Transform,omitempty" yaml:"Transform,omitempty"`
	Resources                map[string]Resource    `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]interface{} `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

// Resource is one template resource. Only Type and Properties are read by the
// matcher; the remaining fields are preserved for write-back.
type Resource struct {
	Type           string                 `json:"Type" yaml:"Type"`
	Properties     map[string]interface{} `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn      interface{}            `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"` // string or []string
	Condition      string                 `json:"Condition,omitempty" yaml:"Condition,omitempty"`
	DeletionPolicy string                 `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
	UpdatePolicy   map[string]interface{} `json:"UpdatePolicy,omitempty" yaml:"UpdatePolicy,omitempty"`
	Metadata       map[string]interface{} `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
}

// StringProperty returns a string-valued property, or "" when the property is
// absent or not a plain string (intrinsic functions stay opaque).
func (r Resource) StringProperty(key string) string {
	v, ok := r.Properties[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
