package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// Formats recognised by the built-in widgets.
const (
	FormatHTML  = "html"
	FormatImage = "uri-image"
)

// Field describes one wizard input. Numeric fields with both Minimum and
// Maximum become range widgets whose Start pair seeds the handles; array
// fields carrying a Row template become formsets.
type Field struct {
	Name     string            `json:"name" yaml:"name" validate:"required"`
	Type     FieldType         `json:"type" yaml:"type" validate:"required,oneof=string integer number boolean array object"`
	Format   string            `json:"format,omitempty" yaml:"format,omitempty"`
	Label    string            `json:"label,omitempty" yaml:"label,omitempty"`
	Required bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Enum     []string          `json:"enum,omitempty" yaml:"enum,omitempty"`
	Minimum  *float64          `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum  *float64          `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Start    []float64         `json:"start,omitempty" yaml:"start,omitempty" validate:"omitempty,len=2"`
	Prefix   string            `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Row      string            `json:"row,omitempty" yaml:"row,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	UIHints  map[string]string `json:"uiHints,omitempty" yaml:"uiHints,omitempty"`
}

// HasRange reports whether both numeric bounds are set.
func (f Field) HasRange() bool {
	return f.Minimum != nil && f.Maximum != nil
}

// IsNumeric reports whether the field carries a number.
func (f Field) IsNumeric() bool {
	return f.Type == FieldTypeNumber || f.Type == FieldTypeInteger
}

// FormModel is one wizard step: a heading, the preview slot prefix and the
// ordered fields.
type FormModel struct {
	Name       string            `json:"name" yaml:"name" validate:"required"`
	Heading    string            `json:"heading,omitempty" yaml:"heading,omitempty"`
	SlotPrefix string            `json:"slotPrefix,omitempty" yaml:"slotPrefix,omitempty"`
	Fields     []Field           `json:"fields" yaml:"fields" validate:"required,min=1,dive"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Field returns the field with the given name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Float is a helper for populating Minimum/Maximum literals.
func Float(v float64) *float64 {
	return &v
}
