package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine is a small pongo2-backed template renderer with a per-path cache.
// Templates load from an fs.FS so packages can embed their chrome alongside
// the code.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

// NewEngine constructs an engine over the supplied filesystem.
func NewEngine(files fs.FS) (*Engine, error) {
	if files == nil {
		return nil, errors.New("render: template filesystem is required")
	}
	return &Engine{
		set:   pongo2.NewSet("cmsforms", pongo2.NewFSLoader(files)),
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate executes the named template with the supplied context.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}
	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("render: execute %q: %w", name, err)
	}
	return buf.String(), nil
}

// RenderString parses and executes inline template content.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("render: parse template string: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("render: execute template string: %w", err)
	}
	return buf.String(), nil
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}
