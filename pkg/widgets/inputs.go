package widgets

import (
	"bytes"
	"fmt"
	"html"
	"time"
)

const (
	dateFormat     = "2006-01-02"
	timeFormat     = "15:04"
	datetimeFormat = "2006-01-02T15:04"
)

func renderInput(buf *bytes.Buffer, inputType, name, value string, attrs Attrs) {
	buf.WriteString(`<input type="`)
	buf.WriteString(inputType)
	buf.WriteString(`" name="`)
	buf.WriteString(html.EscapeString(name))
	buf.WriteByte('"')
	if value != "" {
		buf.WriteString(` value="`)
		buf.WriteString(html.EscapeString(value))
		buf.WriteByte('"')
	}
	writeAttrs(buf, attrs)
	buf.WriteByte('>')
}

func stringValue(value any, layout string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(layout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(layout)
	default:
		return fmt.Sprint(v)
	}
}

// TextInput renders a plain single-line text control.
type TextInput struct{ noAssets }

func (TextInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "text", name, stringValue(value, datetimeFormat), attrs)
	return nil
}

// PasswordInput never echoes a previously submitted value.
type PasswordInput struct{ noAssets }

func (PasswordInput) Render(buf *bytes.Buffer, name string, _ any, attrs Attrs) error {
	renderInput(buf, "password", name, "", attrs)
	return nil
}

// EmailInput renders an HTML email control.
type EmailInput struct{ noAssets }

func (EmailInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "email", name, stringValue(value, datetimeFormat), attrs)
	return nil
}

// HiddenInput renders an invisible control.
type HiddenInput struct{ noAssets }

func (HiddenInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "hidden", name, stringValue(value, datetimeFormat), attrs)
	return nil
}

// NumberInput renders a numeric control.
type NumberInput struct{ noAssets }

func (NumberInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "number", name, stringValue(value, datetimeFormat), attrs)
	return nil
}

// CheckboxInput renders a boolean control; truthy values mark it checked.
type CheckboxInput struct{ noAssets }

func (CheckboxInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	attrs = attrs.Clone()
	if isTruthy(value) {
		attrs["checked"] = ""
	}
	renderInput(buf, "checkbox", name, "", attrs)
	return nil
}

func isTruthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch v {
		case "true", "on", "1", "checked":
			return true
		}
	}
	return false
}

// DateInput renders a date picker control.
type DateInput struct{ noAssets }

func (DateInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "date", name, stringValue(value, dateFormat), attrs)
	return nil
}

// TimeInput renders a time-of-day control.
type TimeInput struct{ noAssets }

func (TimeInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "time", name, stringValue(value, timeFormat), attrs)
	return nil
}

// DateTimeInput renders a combined datetime-local control.
type DateTimeInput struct{ noAssets }

func (DateTimeInput) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "datetime-local", name, stringValue(value, datetimeFormat), attrs)
	return nil
}

// Textarea renders a multi-line text control.
type Textarea struct {
	noAssets
	Rows int
	Cols int
}

func (w Textarea) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	attrs = attrs.Clone()
	if w.Rows > 0 {
		attrs["rows"] = fmt.Sprint(w.Rows)
	}
	if w.Cols > 0 {
		attrs["cols"] = fmt.Sprint(w.Cols)
	}
	buf.WriteString(`<textarea name="`)
	buf.WriteString(html.EscapeString(name))
	buf.WriteByte('"')
	writeAttrs(buf, attrs)
	buf.WriteByte('>')
	buf.WriteString(html.EscapeString(stringValue(value, datetimeFormat)))
	buf.WriteString(`</textarea>`)
	return nil
}
