package collection

// FieldType is the widget kind tag consumed by the admin form renderer.
type FieldType string

// Supported field types.
const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeRichText FieldType = "richtext"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeDate     FieldType = "date"
	TypeDatetime FieldType = "datetime"
	TypeSelect   FieldType = "select"
	TypeEmail    FieldType = "email"
	TypeURL      FieldType = "url"
)

// Known reports whether t is a supported field type.
func (t FieldType) Known() bool {
	switch t {
	case TypeText, TypeTextarea, TypeRichText, TypeNumber, TypeBoolean,
		TypeDate, TypeDatetime, TypeSelect, TypeEmail, TypeURL:
		return true
	}
	return false
}

// IsString reports whether values of this type are stored as strings.
func (t FieldType) IsString() bool {
	switch t {
	case TypeNumber, TypeBoolean:
		return false
	}
	return true
}

// Default display formats for temporal columns.
const (
	DefaultDatetimeFormat = "dd-mm-yyyy, hh:mm:ss TT"
	DefaultDateFormat     = "dd-mm-yyyy"
)

// Choice is one selectable value of a select field.
type Choice struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Field describes one attribute of a collection document.
// Min and Max bound string length for string types and the value for numbers.
type Field struct {
	Min         *float64  `yaml:"min,omitempty" json:"min,omitempty"`
	Max         *float64  `yaml:"max,omitempty" json:"max,omitempty"`
	Name        string    `yaml:"name" json:"name"`
	Type        FieldType `yaml:"type,omitempty" json:"type"`
	Label       string    `yaml:"label,omitempty" json:"label"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Options     []Choice  `yaml:"options,omitempty" json:"options,omitempty"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
}

// Column describes one list-view column.
type Column struct {
	Name   string    `yaml:"name" json:"name"`
	Label  string    `yaml:"label,omitempty" json:"label"`
	Type   FieldType `yaml:"type,omitempty" json:"type"`
	Format string    `yaml:"format,omitempty" json:"format,omitempty"`
}

// Collection is one manageable data entity.
type Collection struct {
	Slug    string   `yaml:"slug" json:"slug"`
	Label   string   `yaml:"label,omitempty" json:"label"`
	Fields  []Field  `yaml:"fields,omitempty" json:"fields"`
	Columns []Column `yaml:"columns,omitempty" json:"columns"`
}

// Field returns the field with the given name.
func (c Collection) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldNames returns field names in declaration order.
func (c Collection) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}
