package editable

import (
	"fmt"
	"net/url"
	"strings"
)

// EditTarget identifies exactly what an in-line edit submission mutates. It
// is reconstructed from the hidden bookkeeping fields every edit form
// carries.
type EditTarget struct {
	App      string
	Model    string
	ObjectID string
	Fields   []string
}

// DecodeTarget reads an edit target back out of submitted form data.
func DecodeTarget(data url.Values) (EditTarget, error) {
	target := EditTarget{
		App:      strings.TrimSpace(data.Get(HiddenApp)),
		Model:    strings.TrimSpace(data.Get(HiddenModel)),
		ObjectID: strings.TrimSpace(data.Get(HiddenID)),
	}
	fields, err := splitFieldNames(data.Get(HiddenFields))
	if err != nil {
		return EditTarget{}, fmt.Errorf("editable: submission carries no field list")
	}
	target.Fields = fields

	if target.App == "" || target.Model == "" || target.ObjectID == "" {
		return EditTarget{}, fmt.Errorf("editable: submission is missing target bookkeeping fields")
	}
	return target, nil
}

// FieldList returns the comma-separated form of the target's field names.
func (t EditTarget) FieldList() string {
	return strings.Join(t.Fields, ",")
}
