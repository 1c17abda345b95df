// Package editable builds the in-place edit forms used to change one or more
// fields of a single persisted record from a listing or detail view.
package editable

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/goliatone/go-cms-forms/pkg/forms"
	"github.com/goliatone/go-cms-forms/pkg/model"
	"github.com/goliatone/go-cms-forms/pkg/settings"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

// Hidden bookkeeping field names carried by every edit form so the receiving
// endpoint can reconstruct the edit target.
const (
	HiddenApp    = "app"
	HiddenModel  = "model"
	HiddenID     = "id"
	HiddenFields = "fields"
)

// GetEditForm returns a form restricted to the comma-separated fieldNames of
// the object's registered model. Date, datetime and email fields swap in
// their specialized widgets; every field's class list gains the lower-cased
// field-type name and its element id becomes "<fieldname>-<form uid>" so
// several edit forms can render on one page without colliding. Pass nil data
// for an unbound form.
func GetEditForm(obj model.Object, fieldNames string, data url.Values, files *multipart.Form) (*forms.Form, error) {
	if obj == nil {
		return nil, fmt.Errorf("editable: object is required")
	}

	ref := obj.ModelRef()
	m, ok := model.Lookup(ref.App, ref.Name)
	if !ok {
		return nil, fmt.Errorf("editable: model %q is not registered", ref.Key())
	}

	names, err := splitFieldNames(fieldNames)
	if err != nil {
		return nil, err
	}

	conf := settings.Current()
	overrides := widgets.EditOverrides()

	form := forms.New(forms.WithHidden(
		forms.Hidden(HiddenApp, m.App),
		forms.Hidden(HiddenModel, m.Name),
		forms.Hidden(HiddenID, obj.ObjectID()),
		forms.Hidden(HiddenFields, fieldNames),
	))

	for _, name := range names {
		meta, ok := m.Field(name)
		if !ok {
			return nil, fmt.Errorf("editable: model %q has no field %q", ref.Key(), name)
		}

		var widget widgets.Widget
		if ctor, ok := overrides[meta.Type]; ok {
			widget = ctor()
		}
		field := forms.NewField(meta, widget)

		field.Attrs.AddClass(strings.ToLower(string(meta.Type)))
		field.Attrs["id"] = name + "-" + form.UID()
		if conf.UseHTML5Required && meta.Required {
			field.Attrs["required"] = ""
		}

		if value, ok := obj.FieldValue(name); ok {
			field.Initial = value
		}

		form.AddField(field)
	}

	if data != nil || files != nil {
		form.BindMultipart(data, files)
	}
	return form, nil
}

func splitFieldNames(fieldNames string) ([]string, error) {
	parts := strings.Split(fieldNames, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("editable: no field names supplied")
	}
	return names, nil
}
