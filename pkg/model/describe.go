package model

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
)

// Describe builds model metadata from a prototype struct. Field kinds are
// inferred from Go types and can be overridden through the `cms` struct tag:
//
//	type Article struct {
//		Title     string    `cms:"title,required"`
//		Body      string    `cms:"body,richtext"`
//		StartDate time.Time `cms:"start_date,date"`
//		Contact   string    `cms:"contact,email,label=Contact Address"`
//		internal  string    // unexported fields are skipped
//		Skipped   string    `cms:"-"`
//	}
//
// Orderability is detected by asserting the Orderable interface against the
// prototype (value or pointer receiver).
func Describe(app string, prototype any) (Model, error) {
	if prototype == nil {
		return Model{}, fmt.Errorf("model: prototype is nil")
	}

	rt := reflect.TypeOf(prototype)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return Model{}, fmt.Errorf("model: prototype must be a struct, got %s", rt.Kind())
	}

	m := Model{
		App:       strings.ToLower(strings.TrimSpace(app)),
		Name:      strings.ToLower(rt.Name()),
		Label:     rt.Name(),
		Orderable: isOrderable(prototype),
	}
	if m.App == "" {
		return Model{}, fmt.Errorf("model: app label is required")
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		field, skip, err := describeField(sf)
		if err != nil {
			return Model{}, err
		}
		if skip {
			continue
		}
		m.Fields = append(m.Fields, field)
	}

	if len(m.Fields) == 0 {
		return Model{}, fmt.Errorf("model: %s.%s declares no usable fields", m.App, m.Name)
	}
	return m, nil
}

// MustDescribe mirrors Describe but panics on error, simplifying package-level
// registration in applications.
func MustDescribe(app string, prototype any) Model {
	m, err := Describe(app, prototype)
	if err != nil {
		panic(err)
	}
	return m
}

func describeField(sf reflect.StructField) (Field, bool, error) {
	tag := sf.Tag.Get("cms")
	if tag == "-" {
		return Field{}, true, nil
	}

	field := Field{
		Name:  snakeCase(sf.Name),
		Type:  inferType(sf.Type),
		Label: sf.Name,
	}

	if tag == "" {
		return field, false, nil
	}

	tokens := strings.Split(tag, ",")
	if name := strings.TrimSpace(tokens[0]); name != "" {
		field.Name = name
	}
	for _, token := range tokens[1:] {
		token = strings.TrimSpace(token)
		switch {
		case token == "":
		case token == "required":
			field.Required = true
		case strings.HasPrefix(token, "label="):
			field.Label = strings.TrimPrefix(token, "label=")
		case strings.HasPrefix(token, "help="):
			field.Help = strings.TrimPrefix(token, "help=")
		case isFieldType(token):
			field.Type = FieldType(token)
		default:
			return Field{}, false, fmt.Errorf("model: unknown tag token %q on field %s", token, sf.Name)
		}
	}
	return field, false, nil
}

func isFieldType(token string) bool {
	switch FieldType(token) {
	case FieldTypeText, FieldTypeRichText, FieldTypeEmail, FieldTypeDate,
		FieldTypeDateTime, FieldTypeTime, FieldTypeInteger, FieldTypeNumber,
		FieldTypeBoolean, FieldTypeHidden:
		return true
	}
	return false
}

var timeType = reflect.TypeOf(time.Time{})

func inferType(rt reflect.Type) FieldType {
	if rt == timeType {
		return FieldTypeDateTime
	}
	switch rt.Kind() {
	case reflect.Bool:
		return FieldTypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FieldTypeInteger
	case reflect.Float32, reflect.Float64:
		return FieldTypeNumber
	case reflect.Pointer:
		return inferType(rt.Elem())
	default:
		return FieldTypeText
	}
}

func isOrderable(prototype any) bool {
	if _, ok := prototype.(Orderable); ok {
		return true
	}
	rv := reflect.ValueOf(prototype)
	if rv.Kind() != reflect.Pointer && rv.CanAddr() {
		rv = rv.Addr()
	}
	if rv.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		rv = ptr
	}
	_, ok := rv.Interface().(Orderable)
	return ok
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
