package gotmpl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
	"strings"
	"sync"
)

var (
	ErrNoRoots          = errors.New("gotmpl: at least one template root is required")
	ErrUnknownOption    = errors.New("gotmpl: unknown engine option")
	ErrInvalidName      = errors.New("gotmpl: invalid template name")
	ErrTemplateNotFound = errors.New("gotmpl: template not found")
	ErrInvalidFunc      = errors.New("gotmpl: function name and value are required")
)

// Engine renders html/template files from an ordered list of roots.
type Engine struct {
	roots      []fs.FS
	strict     bool
	noCache    bool
	leftDelim  string
	rightDelim string

	mu    sync.RWMutex
	funcs template.FuncMap
	cache map[string]*template.Template
}

// New creates an engine. Every root must be an existing directory.
func New(roots []string, opts map[string]any) (*Engine, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	e := &Engine{
		funcs: template.FuncMap{},
		cache: make(map[string]*template.Template),
	}
	if err := e.applyOptions(opts); err != nil {
		return nil, err
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("gotmpl: template root %q: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("gotmpl: template root %q is not a directory", root)
		}
		e.roots = append(e.roots, os.DirFS(root))
	}

	return e, nil
}

// Render executes the named template with data.
func (e *Engine) Render(ctx context.Context, name string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tpl, err := e.template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// AddFunc registers a template function. Compiled templates are dropped so
// the next render picks it up.
func (e *Engine) AddFunc(name string, fn any) error {
	if name == "" || fn == nil {
		return ErrInvalidFunc
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	funcs := maps.Clone(e.funcs)
	funcs[name] = fn
	e.funcs = funcs
	clear(e.cache)
	return nil
}

func (e *Engine) template(name string) (*template.Template, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if e.noCache {
		e.mu.RLock()
		funcs := e.funcs
		e.mu.RUnlock()
		return e.parse(name, funcs)
	}

	e.mu.RLock()
	tpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.cache[name]; ok {
		return tpl, nil
	}

	tpl, err := e.parse(name, e.funcs)
	if err != nil {
		return nil, err
	}
	e.cache[name] = tpl
	return tpl, nil
}

func (e *Engine) parse(name string, funcs template.FuncMap) (*template.Template, error) {
	for _, root := range e.roots {
		src, err := fs.ReadFile(root, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		tpl := template.New(path.Base(name)).Funcs(funcs)
		if e.leftDelim != "" || e.rightDelim != "" {
			tpl = tpl.Delims(e.leftDelim, e.rightDelim)
		}
		if e.strict {
			tpl = tpl.Option("missingkey=error")
		}
		return tpl.Parse(string(src))
	}
	return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

func (e *Engine) applyOptions(in map[string]any) error {
	var unknown []string

	for key, value := range in {
		var err error
		switch key {
		case "strict":
			e.strict, err = boolOption(key, value)
		case "noCache":
			e.noCache, err = boolOption(key, value)
		case "leftDelim":
			e.leftDelim, err = stringOption(key, value)
		case "rightDelim":
			e.rightDelim, err = stringOption(key, value)
		default:
			unknown = append(unknown, key)
		}
		if err != nil {
			return err
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(unknown, ", "))
	}
	return nil
}

func boolOption(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("gotmpl: option %q must be a bool, got %T", key, value)
	}
	return b, nil
}

func stringOption(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("gotmpl: option %q must be a string, got %T", key, value)
	}
	return s, nil
}
