package widgets

import (
	"bytes"
	"html"
	"sort"
	"strings"
)

// Script describes a JavaScript dependency a widget needs emitted once per
// page.
type Script struct {
	Src   string
	Defer bool
}

// Widget renders a single form control. Implementations write markup into buf
// and declare any client-side assets they depend on. Widgets hold no
// per-request state; attrs carry everything instance-specific.
type Widget interface {
	Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error
	Assets() (stylesheets []string, scripts []Script)
}

// Attrs holds HTML attributes for a rendered control. Rendering is
// deterministic: attributes are written in sorted order, values escaped, and
// empty values emitted as bare attributes (e.g. required).
type Attrs map[string]string

// Clone returns a copy callers can mutate independently.
func (a Attrs) Clone() Attrs {
	if len(a) == 0 {
		return Attrs{}
	}
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// AddClass appends a CSS class token, preserving any existing class list.
func (a Attrs) AddClass(class string) {
	class = strings.TrimSpace(class)
	if class == "" {
		return
	}
	existing := strings.TrimSpace(a["class"])
	if existing == "" {
		a["class"] = class
		return
	}
	for _, token := range strings.Fields(existing) {
		if token == class {
			return
		}
	}
	a["class"] = existing + " " + class
}

func writeAttrs(b *bytes.Buffer, attrs Attrs) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		if value := attrs[key]; value != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(value))
			b.WriteByte('"')
		}
	}
}

// noAssets is embedded by widgets without client-side dependencies.
type noAssets struct{}

func (noAssets) Assets() ([]string, []Script) { return nil, nil }
