package widgets

import (
	"bytes"
	"html"

	"github.com/goliatone/go-cms-forms/pkg/settings"
)

// OrderWidget renders a hidden numeric position next to up/down arrow
// controls. Reordering itself happens client-side; this widget is markup
// only.
type OrderWidget struct {
	prefix string
}

// NewOrderWidget builds an ordering widget against the configured admin asset
// prefix.
func NewOrderWidget() *OrderWidget {
	return &OrderWidget{prefix: settings.Current().AdminAssetPrefix}
}

func (w *OrderWidget) Render(buf *bytes.Buffer, name string, value any, attrs Attrs) error {
	renderInput(buf, "hidden", name, stringValue(value, datetimeFormat), attrs)
	buf.WriteString(`<span class="ordering">`)
	for _, arrow := range []string{"up", "down"} {
		buf.WriteString(`<img src="`)
		buf.WriteString(html.EscapeString(w.prefix + "img/admin/arrow-" + arrow + ".gif"))
		buf.WriteString(`" alt="`)
		buf.WriteString(arrow)
		buf.WriteString(`">`)
	}
	buf.WriteString(`</span>`)
	return nil
}

// Assets declares the drag-and-drop scripts the admin inline UI attaches to
// ordering controls.
func (w *OrderWidget) Assets() ([]string, []Script) {
	return nil, []Script{
		{Src: w.prefix + "js/jquery-ui.min.js"},
		{Src: w.prefix + "js/admin/dynamic_inline.js", Defer: true},
	}
}
