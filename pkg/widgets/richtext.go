package widgets

import (
	"bytes"

	"github.com/goliatone/go-cms-forms/pkg/settings"
)

// RichTextClass is the CSS hook client-side editor scripts attach to.
const RichTextClass = "richtext-editor"

// RichText wraps a multi-line text control, tagging it with RichTextClass and
// declaring the editor bootstrap scripts from settings. It performs no
// validation; sanitisation happens during form cleaning.
type RichText struct {
	Textarea
	scripts []string
}

// NewRichText builds a rich-text widget using the currently configured editor
// scripts.
func NewRichText() *RichText {
	return &RichText{scripts: settings.Current().ScriptURLs()}
}

func (w *RichText) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	attrs = attrs.Clone()
	attrs.AddClass(RichTextClass)
	return w.Textarea.Render(buf, name, value, attrs)
}

func (w *RichText) Assets() ([]string, []Script) {
	if len(w.scripts) == 0 {
		return nil, nil
	}
	scripts := make([]Script, 0, len(w.scripts))
	for _, src := range w.scripts {
		scripts = append(scripts, Script{Src: src, Defer: true})
	}
	return nil, scripts
}
