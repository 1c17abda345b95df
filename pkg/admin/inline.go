// Package admin builds the forms the admin change view embeds inline under a
// parent record.
package admin

import (
	"net/url"

	"github.com/goliatone/go-cms-forms/pkg/forms"
	"github.com/goliatone/go-cms-forms/pkg/model"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

// OrderFieldName is the synthetic field exposing an orderable record's
// position.
const OrderFieldName = "_order"

// NewInlineForm builds a model-bound form over all declared fields. When the
// model is orderable an optional position field using the ordering widget is
// appended so the admin UI can drag-sort rows. The object may be nil for an
// empty extra row; data may be nil for an unbound form.
func NewInlineForm(m model.Model, obj model.Object, data url.Values) *forms.Form {
	form := forms.New()

	for _, meta := range m.Fields {
		field := forms.NewField(meta, nil)
		if obj != nil {
			if value, ok := obj.FieldValue(meta.Name); ok {
				field.Initial = value
			}
		}
		form.AddField(field)
	}

	if m.Orderable {
		order := &forms.Field{
			Name:   OrderFieldName,
			Label:  "Order",
			Type:   model.FieldTypeInteger,
			Widget: widgets.NewOrderWidget(),
			Attrs:  widgets.Attrs{},
		}
		if orderable, ok := obj.(model.Orderable); ok {
			order.Initial = orderable.OrderIndex()
		}
		form.AddField(order)
	}

	if data != nil {
		form.Bind(data)
	}
	return form
}
