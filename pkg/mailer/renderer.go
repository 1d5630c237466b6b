package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/folio/pkg/sanitizer"
)

// Renderer turns markdown templates into email bodies.
//
// A template's body is executed as text/template, converted by goldmark and
// placed into an html/template layout as .Content. The final HTML is run
// through the email sanitizer.
//
// Templates get an md function for untrusted values: {{md .Name}} escapes the
// value so it renders as literal text in the HTML part, while the plain-text
// part keeps it unchanged.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*template.Template
	templateDir   string
	layoutDir     string

	mu sync.RWMutex
}

type cachedTemplate struct {
	metadata map[string]any
	html     *texttemplate.Template // md escapes for goldmark
	text     *texttemplate.Template // md passes values through
}

func identity(s string) string { return s }

// RendererConfig sets where templates and layouts live inside the FS.
type RendererConfig struct {
	TemplateDir string // default "."
	LayoutDir   string // default "layouts"
}

// NewRenderer creates a Renderer with default directories.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithConfig(fsys, RendererConfig{})
}

// NewRendererWithConfig creates a Renderer.
func NewRendererWithConfig(fsys fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:            fsys,
		templateDir:   cfg.TemplateDir,
		layoutDir:     cfg.LayoutDir,
		md:            goldmark.New(goldmark.WithExtensions(NewButtonExtension())),
		templateCache: make(map[string]*cachedTemplate),
		layoutCache:   make(map[string]*template.Template),
	}
}

// RenderResult is a rendered email body.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // processed markdown, before HTML conversion
}

// Render executes templateName with data inside layout.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	cached, err := r.template(templateName)
	if err != nil {
		return nil, err
	}

	var markdown, text bytes.Buffer
	if err := cached.html.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %w", ErrRenderFailed, templateName, err)
	}
	if err := cached.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %w", ErrRenderFailed, templateName, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %w", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = layoutTmpl.Execute(&out, map[string]any{
		"Content":  template.HTML(content.String()),
		"Metadata": cached.metadata,
		"Data":     data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %w", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		HTML:     sanitizer.EmailHTML(out.String()),
		Text:     text.String(),
		Metadata: cached.metadata,
	}, nil
}

func (r *Renderer) template(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templateCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templateCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	html, err := texttemplate.New(name).
		Funcs(texttemplate.FuncMap{"md": EscapeMarkdown}).
		Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrRenderFailed, name, err)
	}
	text, err := texttemplate.New(name).
		Funcs(texttemplate.FuncMap{"md": identity}).
		Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrRenderFailed, name, err)
	}

	cached = &cachedTemplate{metadata: parsed.Metadata, html: html, text: text}
	r.templateCache[name] = cached
	return cached, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layoutCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %w", ErrRenderFailed, name, err)
	}

	r.layoutCache[name] = tmpl
	return tmpl, nil
}
