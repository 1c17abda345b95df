package forms

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/goliatone/go-cms-forms/pkg/model"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

// Validator checks a submitted raw value and returns a user-facing message as
// an error when it does not pass. Validators only run on non-empty values;
// presence is the form's concern.
type Validator func(raw string) error

// Field is one visible input of a form.
type Field struct {
	Name       string
	Label      string
	Type       model.FieldType
	Required   bool
	Help       string
	Initial    any
	Widget     widgets.Widget
	Attrs      widgets.Attrs
	Validators []Validator
}

// NewField builds a form field from model metadata, resolving a widget when
// none is supplied.
func NewField(meta model.Field, widget widgets.Widget) *Field {
	if widget == nil {
		widget = widgets.Resolve(meta)
	}
	return &Field{
		Name:     meta.Name,
		Label:    meta.Label,
		Type:     meta.Type,
		Required: meta.Required,
		Help:     meta.Help,
		Initial:  meta.Default,
		Widget:   widget,
		Attrs:    widgets.Attrs{},
	}
}

// ValidateEmail accepts syntactically valid addresses.
func ValidateEmail(raw string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(raw)); err != nil {
		return errors.New("Enter a valid email address")
	}
	return nil
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int) Validator {
	return func(raw string) error {
		if len([]rune(raw)) > n {
			return fmt.Errorf("Ensure this value has at most %d characters", n)
		}
		return nil
	}
}
