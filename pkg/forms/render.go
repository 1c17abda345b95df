package forms

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goliatone/go-cms-forms/pkg/render"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

var (
	engineOnce sync.Once
	engine     *render.Engine
	engineErr  error
)

func chromeEngine() (*render.Engine, error) {
	engineOnce.Do(func() {
		var files fs.FS
		files, engineErr = fs.Sub(embeddedTemplates, "templates")
		if engineErr != nil {
			return
		}
		engine, engineErr = render.NewEngine(files)
	})
	return engine, engineErr
}

// RenderHTML renders the full form: form tag, hidden bookkeeping inputs, and
// per-field chrome around each widget's markup.
func (f *Form) RenderHTML() ([]byte, error) {
	eng, err := chromeEngine()
	if err != nil {
		return nil, err
	}

	var fieldsMarkup strings.Builder
	for _, field := range f.fields {
		markup, err := f.renderField(eng, field)
		if err != nil {
			return nil, err
		}
		fieldsMarkup.WriteString(markup)
	}

	out, err := eng.RenderTemplate("form.tmpl", map[string]any{
		"method":        f.Method,
		"action":        f.Action,
		"hidden_fields": f.HiddenFields(),
		"form_errors":   f.errs.Form,
		"fields":        fieldsMarkup.String(),
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RenderField renders a single named field with its chrome, for callers
// placing fields individually.
func (f *Form) RenderField(name string) ([]byte, error) {
	eng, err := chromeEngine()
	if err != nil {
		return nil, err
	}
	field, ok := f.Field(name)
	if !ok {
		return nil, fmt.Errorf("forms: unknown field %q", name)
	}
	markup, err := f.renderField(eng, field)
	if err != nil {
		return nil, err
	}
	return []byte(markup), nil
}

func (f *Form) renderField(eng *render.Engine, field *Field) (string, error) {
	attrs := field.Attrs.Clone()
	if attrs["id"] == "" {
		attrs["id"] = "id_" + field.Name
	}

	var control bytes.Buffer
	if err := field.Widget.Render(&control, field.Name, f.valueFor(field), attrs); err != nil {
		return "", fmt.Errorf("forms: render widget for %q: %w", field.Name, err)
	}

	return eng.RenderTemplate("field.tmpl", map[string]any{
		"name":       field.Name,
		"label":      field.Label,
		"control_id": attrs["id"],
		"required":   field.Required,
		"widget":     control.String(),
		"errors":     f.errs.Field(field.Name),
		"help":       field.Help,
		"css_class":  strings.ToLower(string(field.Type)),
	})
}

func (f *Form) valueFor(field *Field) any {
	if !f.bound {
		return field.Initial
	}
	if _, ok := field.Widget.(widgets.SplitDateTime); ok {
		if t, err := widgets.ParseSplit(f.data, field.Name); err == nil {
			return t
		}
		return f.data.Get(field.Name + "_0")
	}
	return f.data.Get(field.Name)
}

// Assets aggregates stylesheet and script dependencies across the form's
// widgets, deduplicated in first-use order.
func (f *Form) Assets() (stylesheets []string, scripts []widgets.Script) {
	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})
	for _, field := range f.fields {
		styles, fieldScripts := field.Widget.Assets()
		for _, href := range styles {
			if href == "" {
				continue
			}
			if _, exists := seenStyles[href]; exists {
				continue
			}
			seenStyles[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
		for _, script := range fieldScripts {
			if script.Src == "" {
				continue
			}
			if _, exists := seenScripts[script.Src]; exists {
				continue
			}
			seenScripts[script.Src] = struct{}{}
			scripts = append(scripts, script)
		}
	}
	return stylesheets, scripts
}
