package editable

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-cms-forms/pkg/model"
	"github.com/goliatone/go-cms-forms/pkg/settings"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

type record struct {
	ref    model.Ref
	id     string
	values map[string]any
}

func (r record) ModelRef() model.Ref { return r.ref }
func (r record) ObjectID() string    { return r.id }
func (r record) FieldValue(name string) (any, bool) {
	value, ok := r.values[name]
	return value, ok
}

func registerArticle(t *testing.T, app string) (model.Model, record) {
	t.Helper()
	m := model.Model{
		App:  app,
		Name: "article",
		Fields: []model.Field{
			{Name: "title", Type: model.FieldTypeText, Label: "Title", Required: true},
			{Name: "start_date", Type: model.FieldTypeDate, Label: "Start date"},
			{Name: "publish", Type: model.FieldTypeDateTime, Label: "Publish"},
			{Name: "contact", Type: model.FieldTypeEmail, Label: "Contact"},
		},
	}
	if err := model.Register(m); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	obj := record{
		ref: m.Ref(),
		id:  "42",
		values: map[string]any{
			"title":      "Launch notes",
			"start_date": time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	return m, obj
}

func TestGetEditFormFieldSubset(t *testing.T) {
	_, obj := registerArticle(t, "edsubset")

	form, err := GetEditForm(obj, "title,start_date", nil, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}

	names := form.FieldNames()
	if len(names) != 2 || names[0] != "title" || names[1] != "start_date" {
		t.Fatalf("field names = %v, want [title start_date]", names)
	}

	start, _ := form.Field("start_date")
	if _, ok := start.Widget.(widgets.DateInput); !ok {
		t.Fatalf("start_date widget is %T, want DateInput", start.Widget)
	}
	if got, want := start.Attrs["id"], "start_date-"+form.UID(); got != want {
		t.Fatalf("start_date id = %q, want %q", got, want)
	}
	if !strings.Contains(start.Attrs["class"], "date") {
		t.Fatalf("start_date class = %q, want date token", start.Attrs["class"])
	}
	if start.Initial == nil {
		t.Fatal("start_date should carry the object value")
	}

	title, _ := form.Field("title")
	if got, want := title.Attrs["id"], "title-"+form.UID(); got != want {
		t.Fatalf("title id = %q, want %q", got, want)
	}
	if title.Initial != "Launch notes" {
		t.Fatalf("title initial = %v", title.Initial)
	}
}

func TestGetEditFormHiddenBookkeeping(t *testing.T) {
	_, obj := registerArticle(t, "edhidden")

	form, err := GetEditForm(obj, "title,start_date", nil, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}

	hidden := make(map[string]string)
	for _, field := range form.HiddenFields() {
		hidden[field.Name] = field.Value
	}
	want := map[string]string{
		HiddenApp:    "edhidden",
		HiddenModel:  "article",
		HiddenID:     "42",
		HiddenFields: "title,start_date",
	}
	for name, value := range want {
		if hidden[name] != value {
			t.Errorf("hidden %q = %q, want %q", name, hidden[name], value)
		}
	}
}

func TestGetEditFormWidgetOverrides(t *testing.T) {
	_, obj := registerArticle(t, "edoverride")

	form, err := GetEditForm(obj, "publish,contact", nil, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}

	publish, _ := form.Field("publish")
	if _, ok := publish.Widget.(widgets.SplitDateTime); !ok {
		t.Fatalf("publish widget is %T, want SplitDateTime", publish.Widget)
	}
	contact, _ := form.Field("contact")
	if _, ok := contact.Widget.(widgets.EmailInput); !ok {
		t.Fatalf("contact widget is %T, want EmailInput", contact.Widget)
	}
}

func TestGetEditFormDistinctIDs(t *testing.T) {
	_, obj := registerArticle(t, "eddistinct")

	first, err := GetEditForm(obj, "title", nil, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}
	second, err := GetEditForm(obj, "title", nil, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}

	a, _ := first.Field("title")
	b, _ := second.Field("title")
	if a.Attrs["id"] == b.Attrs["id"] {
		t.Fatalf("two forms share element id %q", a.Attrs["id"])
	}
}

func TestGetEditFormHTML5Required(t *testing.T) {
	_, obj := registerArticle(t, "edrequired")

	conf := settings.Defaults()
	conf.UseHTML5Required = true
	settings.Apply(conf)
	t.Cleanup(func() { settings.Apply(settings.Defaults()) })

	form, err := GetEditForm(obj, "title,start_date", nil, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}

	title, _ := form.Field("title")
	if _, ok := title.Attrs["required"]; !ok {
		t.Fatal("required field should carry the required attribute")
	}
	start, _ := form.Field("start_date")
	if _, ok := start.Attrs["required"]; ok {
		t.Fatal("optional field should not carry the required attribute")
	}
}

func TestGetEditFormBinds(t *testing.T) {
	_, obj := registerArticle(t, "edbind")

	data := url.Values{
		"title":      {"Revised"},
		"start_date": {"2026-09-02"},
	}
	form, err := GetEditForm(obj, "title,start_date", data, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}
	if !form.IsBound() {
		t.Fatal("form should be bound")
	}
	if !form.IsValid() {
		t.Fatalf("expected valid form, got %v", form.Errors())
	}
	if form.CleanedString("title") != "Revised" {
		t.Fatalf("cleaned title = %v", form.Cleaned("title"))
	}
}

func TestGetEditFormRejectsInvalidEmail(t *testing.T) {
	_, obj := registerArticle(t, "edemail")

	form, err := GetEditForm(obj, "contact", url.Values{"contact": {"not-an-address"}}, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}
	if form.IsValid() {
		t.Fatalf("malformed address accepted: %v", form.Cleaned("contact"))
	}
	if got := form.Errors().Field("contact"); len(got) != 1 || got[0] != "Enter a valid email address" {
		t.Fatalf("contact errors = %v", got)
	}

	form, err = GetEditForm(obj, "contact", url.Values{"contact": {"reader@example.com"}}, nil)
	if err != nil {
		t.Fatalf("GetEditForm failed: %v", err)
	}
	if !form.IsValid() {
		t.Fatalf("expected valid form, got %v", form.Errors())
	}
	if form.CleanedString("contact") != "reader@example.com" {
		t.Fatalf("cleaned contact = %v", form.Cleaned("contact"))
	}
}

func TestGetEditFormErrors(t *testing.T) {
	_, obj := registerArticle(t, "ederrors")

	if _, err := GetEditForm(nil, "title", nil, nil); err == nil {
		t.Fatal("expected error for nil object")
	}
	if _, err := GetEditForm(obj, "", nil, nil); err == nil {
		t.Fatal("expected error for empty field list")
	}
	if _, err := GetEditForm(obj, " , ,", nil, nil); err == nil {
		t.Fatal("expected error for blank field list")
	}
	if _, err := GetEditForm(obj, "title,missing", nil, nil); err == nil {
		t.Fatal("expected error for unknown field")
	}

	stranger := record{ref: model.Ref{App: "nowhere", Name: "ghost"}, id: "1"}
	if _, err := GetEditForm(stranger, "title", nil, nil); err == nil {
		t.Fatal("expected error for unregistered model")
	}
}

func TestDecodeTarget(t *testing.T) {
	data := url.Values{
		HiddenApp:    {"blog"},
		HiddenModel:  {"article"},
		HiddenID:     {"42"},
		HiddenFields: {"title,start_date"},
	}
	target, err := DecodeTarget(data)
	if err != nil {
		t.Fatalf("DecodeTarget failed: %v", err)
	}
	if target.App != "blog" || target.Model != "article" || target.ObjectID != "42" {
		t.Fatalf("unexpected target %+v", target)
	}
	if target.FieldList() != "title,start_date" {
		t.Fatalf("FieldList = %q", target.FieldList())
	}

	if _, err := DecodeTarget(url.Values{HiddenApp: {"blog"}}); err == nil {
		t.Fatal("expected error for incomplete submission")
	}
}
