package widgets

import (
	"strings"
	"sync"

	"github.com/goliatone/go-cms-forms/pkg/model"
)

// Named widget identifiers accepted as explicit metadata hints.
const (
	WidgetText     = "text"
	WidgetPassword = "password"
	WidgetEmail    = "email"
	WidgetHidden   = "hidden"
	WidgetNumber   = "number"
	WidgetCheckbox = "checkbox"
	WidgetTextarea = "textarea"
	WidgetRichText = "richtext"
	WidgetDate     = "date"
	WidgetTime     = "time"
	WidgetDateTime = "datetime"
	WidgetSplit    = "split-datetime"
	WidgetOrder    = "order"
)

// Constructor builds a fresh widget instance.
type Constructor func() Widget

// Registry resolves widgets for model fields. An explicit "widget" metadata
// hint wins; otherwise the field kind selects from the type table. The
// zero-configuration Defaults table is immutable; callers mutate only their
// own registries.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Constructor
	byKind map[model.FieldType]Constructor
}

// NewRegistry constructs a registry pre-populated with the built-in widgets.
func NewRegistry() *Registry {
	r := &Registry{
		byName: map[string]Constructor{
			WidgetText:     func() Widget { return TextInput{} },
			WidgetPassword: func() Widget { return PasswordInput{} },
			WidgetEmail:    func() Widget { return EmailInput{} },
			WidgetHidden:   func() Widget { return HiddenInput{} },
			WidgetNumber:   func() Widget { return NumberInput{} },
			WidgetCheckbox: func() Widget { return CheckboxInput{} },
			WidgetTextarea: func() Widget { return Textarea{Rows: 4} },
			WidgetRichText: func() Widget { return NewRichText() },
			WidgetDate:     func() Widget { return DateInput{} },
			WidgetTime:     func() Widget { return TimeInput{} },
			WidgetDateTime: func() Widget { return DateTimeInput{} },
			WidgetSplit:    func() Widget { return SplitDateTime{} },
			WidgetOrder:    func() Widget { return NewOrderWidget() },
		},
		byKind: map[model.FieldType]Constructor{},
	}
	for kind, name := range defaultKinds {
		r.byKind[kind] = r.byName[name]
	}
	return r
}

// defaultKinds is the generic widget per field kind. Date, datetime and email
// fields get plain text inputs here; the richer controls are the edit-form
// overrides.
var defaultKinds = map[model.FieldType]string{
	model.FieldTypeText:     WidgetText,
	model.FieldTypeRichText: WidgetRichText,
	model.FieldTypeEmail:    WidgetText,
	model.FieldTypeDate:     WidgetText,
	model.FieldTypeDateTime: WidgetText,
	model.FieldTypeTime:     WidgetText,
	model.FieldTypeInteger:  WidgetNumber,
	model.FieldTypeNumber:   WidgetNumber,
	model.FieldTypeBoolean:  WidgetCheckbox,
	model.FieldTypeHidden:   WidgetHidden,
}

// Register adds or replaces a named constructor.
func (r *Registry) Register(name string, ctor Constructor) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || ctor == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[name] = ctor
}

// RegisterKind replaces the default widget for a field kind.
func (r *Registry) RegisterKind(kind model.FieldType, ctor Constructor) {
	if ctor == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKind[kind] = ctor
}

// Resolve returns a widget for the field. Explicit hints are honoured before
// kind lookup; unknown kinds fall back to a text input.
func (r *Registry) Resolve(field model.Field) Widget {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if field.Metadata != nil {
		if hint := strings.ToLower(strings.TrimSpace(field.Metadata["widget"])); hint != "" {
			if ctor, ok := r.byName[hint]; ok {
				return ctor()
			}
		}
	}
	if ctor, ok := r.byKind[field.Type]; ok {
		return ctor()
	}
	return TextInput{}
}

// EditOverrides is the fixed mapping from field kinds to the specialized
// widgets the in-line edit form swaps in.
func EditOverrides() map[model.FieldType]Constructor {
	return map[model.FieldType]Constructor{
		model.FieldTypeDate:     func() Widget { return DateInput{} },
		model.FieldTypeDateTime: func() Widget { return SplitDateTime{} },
		model.FieldTypeEmail:    func() Widget { return EmailInput{} },
	}
}

var defaultWidgetRegistry = NewRegistry()

// Resolve resolves against the package default registry.
func Resolve(field model.Field) Widget {
	return defaultWidgetRegistry.Resolve(field)
}
