package pongo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	ErrNoRoots       = errors.New("pongo: at least one template root is required")
	ErrUnknownOption = errors.New("pongo: unknown engine option")
	ErrInvalidFunc   = errors.New("pongo: function name and func value are required")
	ErrInvalidName   = errors.New("pongo: invalid template name")
)

// Engine renders templates from an ordered list of roots.
type Engine struct {
	set     *pongo2.TemplateSet
	noCache bool

	mu    sync.RWMutex
	cache map[string]*pongo2.Template

	// guards set.Globals: held shared while executing, exclusive while adding
	globalsMu sync.RWMutex
}

type options struct {
	trimBlocks   bool
	lstripBlocks bool
	noCache      bool
	globals      map[string]any
}

// New creates an engine. Every root must be an existing directory.
func New(roots []string, opts map[string]any) (*Engine, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	o, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	loaders := make([]pongo2.TemplateLoader, 0, len(roots))
	for _, root := range roots {
		loader, err := pongo2.NewLocalFileSystemLoader(root)
		if err != nil {
			return nil, fmt.Errorf("pongo: template root %q: %w", root, err)
		}
		loaders = append(loaders, loader)
	}

	set := pongo2.NewSet("viewkit", loaders...)
	set.Options.TrimBlocks = o.trimBlocks
	set.Options.LStripBlocks = o.lstripBlocks
	if set.Globals == nil {
		set.Globals = make(pongo2.Context)
	}
	set.Globals.Update(pongo2.Context(o.globals))

	return &Engine{
		set:     set,
		noCache: o.noCache,
		cache:   make(map[string]*pongo2.Template),
	}, nil
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

	if data == nil {
		data = map[string]any{}
	}

	e.globalsMu.RLock()
	defer e.globalsMu.RUnlock()
	return tpl.Execute(pongo2.Context(data))
}

// AddFunc makes fn callable from this engine's templates, e.g. {{ shout(name) }}.
// It is stored in the engine's own globals, so other engines never see it.
// A second call with the same name replaces the function.
func (e *Engine) AddFunc(name string, fn any) error {
	if name == "" || fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
		return ErrInvalidFunc
	}
	e.AddGlobal(name, fn)
	return nil
}

// AddGlobal makes value available to every template of this engine.
func (e *Engine) AddGlobal(name string, value any) {
	e.globalsMu.Lock()
	defer e.globalsMu.Unlock()
	e.set.Globals[name] = value
}

// TemplateSet exposes the underlying pongo2 set for advanced configuration.
// Changes made through it after the first render are not synchronized.
func (e *Engine) TemplateSet() *pongo2.TemplateSet {
	return e.set
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if e.noCache {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.set.FromFile(name)
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

	tpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, err
	}
	e.cache[name] = tpl
	return tpl, nil
}

func parseOptions(in map[string]any) (options, error) {
	var o options
	var unknown []string

	for key, value := range in {
		var err error
		switch key {
		case "trimBlocks":
			o.trimBlocks, err = boolOption(key, value)
		case "lstripBlocks":
			o.lstripBlocks, err = boolOption(key, value)
		case "noCache":
			o.noCache, err = boolOption(key, value)
		case "globals":
			switch v := value.(type) {
			case nil:
			case map[string]any:
				o.globals = v
			default:
				err = fmt.Errorf("pongo: option %q must be a map[string]any, got %T", key, value)
			}
		default:
			unknown = append(unknown, key)
		}
		if err != nil {
			return options{}, err
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)
		return options{}, fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(unknown, ", "))
	}
	return o, nil
}

func boolOption(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("pongo: option %q must be a bool, got %T", key, value)
	}
	return b, nil
}
