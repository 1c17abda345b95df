package model

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI derives model metadata from a named component schema inside an
// OpenAPI 3 document. It lets deployments describe editable content through a
// service contract instead of Go structs; nested objects and arrays are not
// editable inline and are skipped.
func FromOpenAPI(ctx context.Context, raw []byte, app, schemaName string) (Model, error) {
	if len(raw) == 0 {
		return Model{}, fmt.Errorf("model: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Model{}, fmt.Errorf("model: load openapi document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return Model{}, fmt.Errorf("model: openapi document has no component schemas")
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return Model{}, fmt.Errorf("model: schema %q not found", schemaName)
	}
	schema := ref.Value

	m := Model{
		App:   strings.ToLower(strings.TrimSpace(app)),
		Name:  strings.ToLower(schemaName),
		Label: schemaName,
	}
	if m.App == "" {
		return Model{}, fmt.Errorf("model: app label is required")
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		kind, ok := schemaFieldType(prop.Value)
		if !ok {
			continue
		}
		_, isRequired := required[name]
		m.Fields = append(m.Fields, Field{
			Name:     name,
			Type:     kind,
			Label:    labelFromName(name, prop.Value.Title),
			Required: isRequired,
			Help:     prop.Value.Description,
			Default:  prop.Value.Default,
		})
	}

	if len(m.Fields) == 0 {
		return Model{}, fmt.Errorf("model: schema %q has no editable properties", schemaName)
	}
	return m, nil
}

// SchemaNames lists the component schema names declared by an OpenAPI
// document, sorted for stable presentation.
func SchemaNames(ctx context.Context, raw []byte) ([]string, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("model: load openapi document: %w", err)
	}
	if doc.Components == nil {
		return nil, nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func schemaFieldType(schema *openapi3.Schema) (FieldType, bool) {
	types := schema.Type
	format := strings.ToLower(strings.TrimSpace(schema.Format))
	switch {
	case types.Is(openapi3.TypeString):
		switch format {
		case "date":
			return FieldTypeDate, true
		case "date-time":
			return FieldTypeDateTime, true
		case "time":
			return FieldTypeTime, true
		case "email":
			return FieldTypeEmail, true
		case "html", "richtext":
			return FieldTypeRichText, true
		default:
			return FieldTypeText, true
		}
	case types.Is(openapi3.TypeInteger):
		return FieldTypeInteger, true
	case types.Is(openapi3.TypeNumber):
		return FieldTypeNumber, true
	case types.Is(openapi3.TypeBoolean):
		return FieldTypeBoolean, true
	default:
		// Arrays and objects have no inline edit widget.
		return "", false
	}
}

func labelFromName(name, title string) string {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		return trimmed
	}
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.TrimSpace(cleaned)
}
