package settings

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings carries the deployment configuration the forms layer reads. All
// values are read-only from the forms packages' perspective.
type Settings struct {
	// AdminAssetPrefix is prepended to admin image and script paths emitted
	// by widgets (ordering arrows, inline admin scripts).
	AdminAssetPrefix string `yaml:"admin_asset_prefix"`
	// RichTextScripts lists the client-side editor bootstrap scripts the
	// rich-text widget declares, relative to AdminAssetPrefix unless
	// absolute.
	RichTextScripts []string `yaml:"richtext_scripts"`
	// UseHTML5Required enables the bare "required" attribute on required
	// edit-form fields.
	UseHTML5Required bool `yaml:"use_html5_required"`
	// VerificationRequired creates new signups inactive, pending an
	// out-of-band confirmation step.
	VerificationRequired bool `yaml:"verification_required"`
}

// Defaults returns the built-in configuration.
func Defaults() Settings {
	return Settings{
		AdminAssetPrefix: "/static/admin/",
		RichTextScripts: []string{
			"richtext/editor.min.js",
			"richtext/setup.js",
		},
	}
}

// ScriptURLs resolves the rich-text script list against the admin asset
// prefix, leaving absolute URLs untouched.
func (s Settings) ScriptURLs() []string {
	if len(s.RichTextScripts) == 0 {
		return nil
	}
	urls := make([]string, 0, len(s.RichTextScripts))
	for _, script := range s.RichTextScripts {
		script = strings.TrimSpace(script)
		if script == "" {
			continue
		}
		if strings.Contains(script, "://") || strings.HasPrefix(script, "/") {
			urls = append(urls, script)
			continue
		}
		urls = append(urls, s.AdminAssetPrefix+script)
	}
	return urls
}

func (s Settings) clone() Settings {
	s.RichTextScripts = slices.Clone(s.RichTextScripts)
	return s
}

var (
	mu      sync.RWMutex
	current = Defaults()
	refresh func(*Settings)
)

// Current returns the active settings. When a refresh hook is registered it
// runs first, so deployments with editable settings can pull fresh values
// before each read.
func Current() Settings {
	mu.Lock()
	defer mu.Unlock()
	if refresh != nil {
		refresh(&current)
	}
	return current.clone()
}

// Apply replaces the active settings.
func Apply(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	current = s.clone()
}

// SetRefresh registers a hook invoked before every Current call. Pass nil to
// remove a previously registered hook.
func SetRefresh(hook func(*Settings)) {
	mu.Lock()
	defer mu.Unlock()
	refresh = hook
}

// Load parses YAML settings, overlaying the defaults.
func Load(r io.Reader) (Settings, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: read: %w", err)
	}
	s := Defaults()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: parse: %w", err)
	}
	return s, nil
}

// LoadFile reads YAML settings from disk.
func LoadFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
