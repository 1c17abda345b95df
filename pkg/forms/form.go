package forms

import (
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-cms-forms/pkg/model"
	"github.com/goliatone/go-cms-forms/pkg/sanitize"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

// Validation messages surfaced to end users.
const (
	MsgRequired        = "This field is required"
	MsgInvalidDate     = "Enter a valid date"
	MsgInvalidTime     = "Enter a valid time"
	MsgInvalidDateTime = "Enter a valid date and time"
	MsgInvalidInteger  = "Enter a whole number"
	MsgInvalidNumber   = "Enter a number"
)

// CleanHook runs after all field validators, for validation that spans
// multiple fields. Hooks record failures through AddError/AddFieldError.
type CleanHook func(f *Form)

// Form is a request-scoped collection of fields plus hidden bookkeeping
// values. Construct, optionally Bind submitted data, then IsValid, then read
// CleanedData or Errors. Forms are not safe for concurrent use.
type Form struct {
	// Method and Action feed the rendered <form> element.
	Method string
	Action string

	uid        string
	fields     []*Field
	hidden     map[string]string
	cleanHooks []CleanHook

	data    url.Values
	files   *multipart.Form
	bound   bool
	cleaned map[string]any
	errs    Errors
}

// Option configures a form during construction.
type Option func(*Form)

// WithHidden seeds hidden bookkeeping fields.
func WithHidden(fields ...HiddenField) Option {
	return func(f *Form) {
		f.hidden = MergeHiddenFields(f.hidden, fields...)
	}
}

// WithCleanHook registers a whole-form validation hook.
func WithCleanHook(hook CleanHook) Option {
	return func(f *Form) {
		if hook != nil {
			f.cleanHooks = append(f.cleanHooks, hook)
		}
	}
}

// WithAction sets the form submission target.
func WithAction(action string) Option {
	return func(f *Form) { f.Action = action }
}

// New constructs an empty POST form with a process-unique instance id.
func New(options ...Option) *Form {
	f := &Form{
		Method: "post",
		uid:    uuid.NewString(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// UID returns the per-instance identifier used to build distinct element ids
// when several forms render on one page.
func (f *Form) UID() string { return f.uid }

// AddField appends a field, replacing any previous field with the same name.
func (f *Form) AddField(field *Field) {
	if field == nil || strings.TrimSpace(field.Name) == "" {
		return
	}
	if field.Attrs == nil {
		field.Attrs = widgets.Attrs{}
	}
	for idx, existing := range f.fields {
		if existing.Name == field.Name {
			f.fields[idx] = field
			return
		}
	}
	f.fields = append(f.fields, field)
}

// Field looks up a field by name.
func (f *Form) Field(name string) (*Field, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			return field, true
		}
	}
	return nil, false
}

// Fields returns the visible fields in declaration order.
func (f *Form) Fields() []*Field { return f.fields }

// FieldNames returns the visible field names in declaration order.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		names = append(names, field.Name)
	}
	return names
}

// SetHidden records a hidden bookkeeping value.
func (f *Form) SetHidden(name string, value any) {
	f.hidden = MergeHiddenFields(f.hidden, Hidden(name, value))
}

// HiddenFields returns the hidden bookkeeping fields sorted by name.
func (f *Form) HiddenFields() []HiddenField {
	return SortedHiddenFields(f.hidden)
}

// Bind attaches submitted data to the form.
func (f *Form) Bind(data url.Values) {
	f.data = data
	f.bound = data != nil
}

// BindMultipart attaches submitted data plus uploaded files.
func (f *Form) BindMultipart(data url.Values, files *multipart.Form) {
	f.Bind(data)
	f.files = files
}

// IsBound reports whether submitted data is attached.
func (f *Form) IsBound() bool { return f.bound }

// Files returns any uploaded files bound to the form.
func (f *Form) Files() *multipart.Form { return f.files }

// Data returns the bound submission values.
func (f *Form) Data() url.Values { return f.data }

// IsValid runs the full cleaning pass: per-field presence, validators, and
// type coercion, then whole-form hooks. It returns true when no errors were
// recorded. An unbound form is never valid.
func (f *Form) IsValid() bool {
	if !f.bound {
		return false
	}
	f.errs = Errors{}
	f.cleaned = make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		f.cleanField(field)
	}
	for _, hook := range f.cleanHooks {
		hook(f)
	}
	f.errs.normalize()
	return !f.errs.HasErrors()
}

// CleanedData returns the coerced values collected by the last IsValid call.
func (f *Form) CleanedData() map[string]any { return f.cleaned }

// Cleaned returns one coerced value.
func (f *Form) Cleaned(name string) any {
	if f.cleaned == nil {
		return nil
	}
	return f.cleaned[name]
}

// CleanedString returns one coerced value as a string, or "" when absent or
// not a string.
func (f *Form) CleanedString(name string) string {
	if s, ok := f.Cleaned(name).(string); ok {
		return s
	}
	return ""
}

// Errors exposes the messages recorded by the last IsValid call.
func (f *Form) Errors() *Errors { return &f.errs }

// AddError records a form-level message.
func (f *Form) AddError(message string) { f.errs.Add(message) }

// AddFieldError records a field-level message and drops the field's cleaned
// value.
func (f *Form) AddFieldError(name, message string) {
	f.errs.AddField(name, message)
	delete(f.cleaned, name)
}

func (f *Form) cleanField(field *Field) {
	if _, ok := field.Widget.(widgets.SplitDateTime); ok {
		f.cleanSplit(field)
		return
	}

	raw := strings.TrimSpace(f.data.Get(field.Name))
	if raw == "" {
		if field.Required {
			f.errs.AddField(field.Name, MsgRequired)
			return
		}
		f.cleaned[field.Name] = ""
		return
	}

	for _, validate := range field.Validators {
		if err := validate(raw); err != nil {
			f.errs.AddField(field.Name, err.Error())
			return
		}
	}

	value, message := coerce(field.Type, raw)
	if message != "" {
		f.errs.AddField(field.Name, message)
		return
	}
	f.cleaned[field.Name] = value
}

func (f *Form) cleanSplit(field *Field) {
	if widgets.SplitEmpty(f.data, field.Name) {
		if field.Required {
			f.errs.AddField(field.Name, MsgRequired)
			return
		}
		f.cleaned[field.Name] = nil
		return
	}
	t, err := widgets.ParseSplit(f.data, field.Name)
	if err != nil {
		f.errs.AddField(field.Name, MsgInvalidDateTime)
		return
	}
	f.cleaned[field.Name] = t
}

func coerce(kind model.FieldType, raw string) (any, string) {
	switch kind {
	case model.FieldTypeDate:
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, MsgInvalidDate
		}
		return t, ""
	case model.FieldTypeDateTime:
		for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02T15:04:05"} {
			if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
				return t, ""
			}
		}
		return nil, MsgInvalidDateTime
	case model.FieldTypeTime:
		for _, layout := range []string{"15:04", "15:04:05"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, ""
			}
		}
		return nil, MsgInvalidTime
	case model.FieldTypeInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, MsgInvalidInteger
		}
		return n, ""
	case model.FieldTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, MsgInvalidNumber
		}
		return n, ""
	case model.FieldTypeBoolean:
		switch strings.ToLower(raw) {
		case "on", "true", "1", "checked":
			return true, ""
		default:
			return false, ""
		}
	case model.FieldTypeEmail:
		if err := ValidateEmail(raw); err != nil {
			return nil, err.Error()
		}
		return raw, ""
	case model.FieldTypeRichText:
		return sanitize.Clean(raw), ""
	default:
		return raw, ""
	}
}
