// Package render turns board templates and model data into display markup
// using Mustache semantics: missing fields render empty, sections iterate
// lists and {{{triple}}} tags insert text unescaped.
package render

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/cbroglie/mustache"
)

// DefaultNotesTemplate lists notes as author and text blocks.
//
//go:embed templates/notes.mustache
var DefaultNotesTemplate string

// MustacheRenderer renders Mustache templates. Parsed templates are cached
// by source text, so a renderer can be shared by concurrent callers.
type MustacheRenderer struct {
	mu    sync.Mutex
	cache map[string]*mustache.Template
}

// NewMustacheRenderer returns a renderer with an empty template cache.
func NewMustacheRenderer() *MustacheRenderer {
	return &MustacheRenderer{cache: make(map[string]*mustache.Template)}
}

// Render renders tmpl against data.
func (r *MustacheRenderer) Render(tmpl string, data any) (string, error) {
	t, err := r.parse(tmpl)
	if err != nil {
		return "", err
	}

	out, err := t.Render(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}

	return out, nil
}

func (r *MustacheRenderer) parse(tmpl string) (*mustache.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.cache[tmpl]; ok {
		return t, nil
	}

	t, err := mustache.ParseString(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplate, err)
	}
	r.cache[tmpl] = t

	return t, nil
}

// LoadTemplate reads a template file. An empty path yields
// DefaultNotesTemplate.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		return DefaultNotesTemplate, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading template %q: %w", path, err)
	}

	if _, err = mustache.ParseString(string(b)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseTemplate, err)
	}

	return string(b), nil
}
