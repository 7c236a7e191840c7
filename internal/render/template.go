// Package render loads the order confirmation template and renders order
// payloads through it. Interpolated values are HTML-escaped unless the
// template explicitly marks them with the safe filter.
package render

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// DefaultTemplateName is the template rendered when no other is configured.
const DefaultTemplateName = "confirmation.html"

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Option configures where Load resolves the template from.
type Option func(*config)

type config struct {
	dir  string
	fsys fs.FS
	name string
}

// WithDir loads templates from a directory on disk instead of the embedded set.
func WithDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from fsys instead of the embedded set.
func WithFS(fsys fs.FS) Option {
	return func(cfg *config) {
		cfg.fsys = fsys
	}
}

// WithName selects the template file to load.
func WithName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// Template is a parsed confirmation template. It is immutable after Load and
// safe for concurrent use.
type Template struct {
	name string
	tpl  *pongo2.Template
}

// Load parses the configured template once. Callers keep the returned
// Template for the lifetime of the process.
func Load(opts ...Option) (*Template, error) {
	cfg := &config{name: DefaultTemplateName}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if err := registerFilters(); err != nil {
		return nil, fmt.Errorf("render: register filters: %w", err)
	}

	loader, err := cfg.loader()
	if err != nil {
		return nil, err
	}

	set := pongo2.NewSet("confirmation", loader)
	tpl, err := set.FromFile(cfg.name)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", cfg.name, err)
	}

	return &Template{name: cfg.name, tpl: tpl}, nil
}

func (cfg *config) loader() (pongo2.TemplateLoader, error) {
	switch {
	case cfg.dir != "":
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.dir)
		if err != nil {
			return nil, fmt.Errorf("render: template dir %q: %w", cfg.dir, err)
		}
		return loader, nil
	case cfg.fsys != nil:
		return pongo2.NewFSLoader(cfg.fsys), nil
	default:
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("render: embedded templates: %w", err)
		}
		return pongo2.NewFSLoader(sub), nil
	}
}

// Name returns the template file name.
func (t *Template) Name() string {
	return t.name
}

// Render executes the template with order bound to the "order" variable.
// A nil order renders as an empty mapping. Failures are returned as
// *RenderError.
func (t *Template) Render(order any) (doc string, err error) {
	if t == nil || t.tpl == nil {
		return "", &RenderError{Err: errors.New("template not loaded")}
	}

	defer func() {
		if r := recover(); r != nil {
			doc = ""
			err = &RenderError{Template: t.name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if order == nil {
		order = map[string]any{}
	}

	out, execErr := t.tpl.Execute(pongo2.Context{"order": order})
	if execErr != nil {
		return "", &RenderError{Template: t.name, Err: execErr}
	}
	return out, nil
}
