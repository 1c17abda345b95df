// Command cmsforms-preview renders an in-line edit form for a model described
// by an OpenAPI component schema, so themes and editor integrations can be
// checked without a running CMS. Schema and fields are prompted for
// interactively when the flags are omitted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-cms-forms/pkg/editable"
	"github.com/goliatone/go-cms-forms/pkg/model"
)

func main() {
	source := flag.String("source", "schema.json", "OpenAPI document path")
	app := flag.String("app", "preview", "application label to register the model under")
	schema := flag.String("schema", "", "component schema name (prompted when empty)")
	fields := flag.String("fields", "", "comma-separated field names (prompted when empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	raw, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("Failed to read source: %v", err)
	}

	schemaName := strings.TrimSpace(*schema)
	if schemaName == "" {
		schemaName, err = pickSchema(ctx, raw)
		if err != nil {
			log.Fatalf("Failed to pick schema: %v", err)
		}
	}

	m, err := model.FromOpenAPI(ctx, raw, *app, schemaName)
	if err != nil {
		log.Fatalf("Failed to build model: %v", err)
	}
	if err := model.Register(m); err != nil {
		log.Fatalf("Failed to register model: %v", err)
	}

	fieldList := strings.TrimSpace(*fields)
	if fieldList == "" {
		fieldList, err = pickFields(m)
		if err != nil {
			log.Fatalf("Failed to pick fields: %v", err)
		}
	}

	form, err := editable.GetEditForm(previewObject{ref: m.Ref()}, fieldList, nil, nil)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}
	html, err := form.RenderHTML()
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(string(html))
}

func pickSchema(ctx context.Context, raw []byte) (string, error) {
	names, err := model.SchemaNames(ctx, raw)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("document declares no component schemas")
	}
	if len(names) == 1 {
		return names[0], nil
	}

	var picked string
	prompt := &survey.Select{
		Message: "Schema to preview:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return picked, nil
}

func pickFields(m model.Model) (string, error) {
	var picked []string
	prompt := &survey.MultiSelect{
		Message: "Fields to edit:",
		Options: m.FieldNames(),
	}
	if err := survey.AskOne(prompt, &picked, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.Join(picked, ","), nil
}

// previewObject is an empty record standing in for a real persisted row.
type previewObject struct {
	ref model.Ref
}

func (o previewObject) ModelRef() model.Ref           { return o.ref }
func (o previewObject) ObjectID() string              { return "0" }
func (o previewObject) FieldValue(string) (any, bool) { return nil, false }
