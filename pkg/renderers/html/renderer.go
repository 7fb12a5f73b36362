package html

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const (
	pageTemplate = "registration.tpl"
	defaultTitle = "Create your profile"
)

// Option configures the page renderer before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	title      string
	stylesheet string
	submit     string
}

// WithBaseDir loads templates from a directory on disk ahead of the embedded
// defaults.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS replaces the embedded templates.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTitle sets the page heading and document title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title = strings.TrimSpace(title); title != "" {
			cfg.title = title
		}
	}
}

// WithStylesheet links an external stylesheet from the page head.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithSubmitLabel overrides the submit button text.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if label = strings.TrimSpace(label); label != "" {
			cfg.submit = label
		}
	}
}

// Renderer executes the registration page template.
type Renderer struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	globals   pongo2.Context
}

// New constructs a Renderer using the provided configuration options.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{
		templates: TemplatesFS(),
		title:     defaultTitle,
		submit:    "Submit",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("html: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))

	return &Renderer{
		set:       pongo2.NewSet("signup", loaders...),
		templates: make(map[string]*pongo2.Template),
		globals: pongo2.Context{
			"title":        cfg.title,
			"stylesheet":   cfg.stylesheet,
			"submit_label": cfg.submit,
		},
	}, nil
}

// Render writes the registration page for page to out and returns it.
func (r *Renderer) Render(page Page, out ...io.Writer) (string, error) {
	if r == nil || r.set == nil {
		return "", errors.New("html: renderer is nil")
	}
	tmpl, err := r.template(pageTemplate)
	if err != nil {
		return "", err
	}

	ctx := pongo2.Context{}
	ctx.Update(r.globals)
	ctx.Update(page.context())

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("html: execute template %q: %w", pageTemplate, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}
