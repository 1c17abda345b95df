package model

import (
	"sort"
	"strings"
)

// FieldType is the simplified enum for CMS-friendly field kinds.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeRichText FieldType = "richtext"
	FieldTypeEmail    FieldType = "email"
	FieldTypeDate     FieldType = "date"
	FieldTypeDateTime FieldType = "datetime"
	FieldTypeTime     FieldType = "time"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeHidden   FieldType = "hidden"
)

// Field describes a single editable attribute of a content model.
type Field struct {
	Name     string            `json:"name"`
	Type     FieldType         `json:"type"`
	Label    string            `json:"label,omitempty"`
	Required bool              `json:"required"`
	Help     string            `json:"help,omitempty"`
	Default  any               `json:"default,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Ref identifies a registered model by application label and model name.
type Ref struct {
	App  string `json:"app"`
	Name string `json:"name"`
}

// Key returns the canonical registry key for the reference.
func (r Ref) Key() string {
	return strings.ToLower(strings.TrimSpace(r.App)) + "." + strings.ToLower(strings.TrimSpace(r.Name))
}

// Model is the introspected metadata the forms layer consumes. Orderable
// models expose a sortable position the admin inline form can surface.
type Model struct {
	App       string  `json:"app"`
	Name      string  `json:"name"`
	Label     string  `json:"label,omitempty"`
	Orderable bool    `json:"orderable,omitempty"`
	Fields    []Field `json:"fields"`
}

// Ref returns the registry reference for the model.
func (m Model) Ref() Ref {
	return Ref{App: m.App, Name: m.Name}
}

// Field looks up a declared field by name.
func (m Model) Field(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames returns the declared field names in declaration order.
func (m Model) FieldNames() []string {
	if len(m.Fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Object is the minimal contract persisted records expose to the forms layer.
// Implementations are supplied by the surrounding application; the forms
// packages never persist anything themselves.
type Object interface {
	ModelRef() Ref
	ObjectID() string
	FieldValue(name string) (any, bool)
}

// Orderable marks records carrying a user-adjustable sort position.
type Orderable interface {
	OrderIndex() int
}

func sortedRefs(refs []Ref) []Ref {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Key() < refs[j].Key() })
	return refs
}
