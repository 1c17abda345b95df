package forms

import (
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-cms-forms/pkg/model"
	"github.com/goliatone/go-cms-forms/pkg/widgets"
)

func TestRenderHTML(t *testing.T) {
	f := New(WithHidden(
		Hidden("app", "blog"),
		Hidden("id", "7"),
	), WithAction("/edit/"))
	title := textField("title", true)
	title.Initial = "Launch notes"
	title.Help = "Shown in listings"
	f.AddField(title)

	out, err := f.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<form method="post" action="/edit/">`,
		`<input type="hidden" name="app" value="blog">`,
		`<input type="hidden" name="id" value="7">`,
		`<label for="id_title">title *</label>`,
		`<input type="text" name="title" value="Launch notes" id="id_title">`,
		`class="form-field text"`,
		`<small class="field-help">Shown in listings</small>`,
		`</form>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in:\n%s", want, html)
		}
	}
}

func TestRenderHTMLShowsErrors(t *testing.T) {
	f := New()
	f.AddField(textField("title", true))
	f.Bind(url.Values{})
	if f.IsValid() {
		t.Fatal("expected validation failure")
	}
	f.AddError("Something went wrong")

	out, err := f.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, `<p class="form-error">Something went wrong</p>`) {
		t.Fatalf("missing form error in:\n%s", html)
	}
	if !strings.Contains(html, `<small class="field-error">`+MsgRequired+`</small>`) {
		t.Fatalf("missing field error in:\n%s", html)
	}
	if !strings.Contains(html, `class="form-field text error"`) {
		t.Fatalf("missing error class in:\n%s", html)
	}
}

func TestRenderHTMLBoundValue(t *testing.T) {
	f := New()
	title := textField("title", true)
	title.Initial = "Original"
	f.AddField(title)
	f.Bind(url.Values{"title": {"Revised"}})

	out, err := f.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if !strings.Contains(string(out), `value="Revised"`) {
		t.Fatalf("bound value should win over initial:\n%s", out)
	}
}

func TestRenderField(t *testing.T) {
	f := New()
	f.AddField(textField("title", false))

	out, err := f.RenderField("title")
	if err != nil {
		t.Fatalf("RenderField failed: %v", err)
	}
	if !strings.Contains(string(out), `name="title"`) {
		t.Fatalf("unexpected markup:\n%s", out)
	}

	if _, err := f.RenderField("missing"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestRenderFieldKeepsExplicitID(t *testing.T) {
	f := New()
	field := textField("title", false)
	field.Attrs["id"] = "title-custom"
	f.AddField(field)

	out, err := f.RenderField("title")
	if err != nil {
		t.Fatalf("RenderField failed: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `id="title-custom"`) {
		t.Fatalf("explicit id lost:\n%s", html)
	}
	if !strings.Contains(html, `for="title-custom"`) {
		t.Fatalf("label should target the explicit id:\n%s", html)
	}
}

func TestFormAssets(t *testing.T) {
	f := New()
	f.AddField(&Field{Name: "body", Type: model.FieldTypeRichText, Widget: widgets.NewRichText(), Attrs: widgets.Attrs{}})
	f.AddField(&Field{Name: "summary", Type: model.FieldTypeRichText, Widget: widgets.NewRichText(), Attrs: widgets.Attrs{}})
	f.AddField(textField("title", false))

	_, scripts := f.Assets()
	seen := make(map[string]int)
	for _, script := range scripts {
		seen[script.Src]++
	}
	if len(seen) == 0 {
		t.Fatal("expected editor scripts")
	}
	for src, count := range seen {
		if count != 1 {
			t.Fatalf("script %q emitted %d times", src, count)
		}
	}
}
