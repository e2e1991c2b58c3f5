package view

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolve builds a View from a raw option mapping such as one decoded from
// JSON or YAML. Keys not in the recognized set fail with a ConfigError of
// kind UnknownOption listing every offending key. Options in opts are
// applied before raw, so raw values win for the keys it sets.
func Resolve(raw map[string]any, opts ...Option) (*View, error) {
	if unknown := unknownKeys(raw); len(unknown) > 0 {
		return nil, &ConfigError{Kind: UnknownOption, Detail: strings.Join(unknown, ", ")}
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	if err := s.overlay(raw); err != nil {
		return nil, err
	}
	return build(s)
}

// FromConfig builds a View from an environment-loaded Config.
// Empty FunctionName and Merge keep their defaults; an empty Ext means no extension.
func FromConfig(cfg Config, opts ...Option) (*View, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	s.ext = cfg.Ext
	s.paths = append([]string(nil), cfg.Path...)
	s.writeResponse = cfg.WriteResponse
	if cfg.FunctionName != "" {
		s.functionName = cfg.FunctionName
	}
	if cfg.Merge != "" {
		s.merge = cfg.Merge
	}
	return build(s)
}

// LoadFile reads a YAML option file and resolves it like Resolve.
func LoadFile(path string, opts ...Option) (*View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("view: read options file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("view: decode options file %s: %w", path, err)
	}
	return Resolve(raw, opts...)
}

// NormalizeExt returns ext with exactly one leading dot, or "" for an empty ext.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	return "." + strings.TrimPrefix(ext, ".")
}

// NormalizeRoots makes every path absolute against the current working
// directory, keeping order. No paths means the working directory itself.
func NormalizeRoots(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{""}
	}

	roots := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("view: resolve template root %q: %w", p, err)
		}
		roots = append(roots, abs)
	}
	return roots, nil
}

func unknownKeys(raw map[string]any) []string {
	var unknown []string
	for key := range raw {
		if _, ok := knownKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// overlay copies caller values over the defaults, checking value types.
// Keys are visited in sorted order so the reported error is deterministic.
func (s *settings) overlay(raw map[string]any) error {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if err := s.set(key, raw[key]); err != nil {
			return err
		}
	}
	return nil
}

func (s *settings) set(key string, value any) error {
	switch key {
	case KeyExt:
		switch v := value.(type) {
		case nil:
			s.ext = ""
		case string:
			s.ext = v
		case bool:
			if v {
				return invalid(key, "string or false", value)
			}
			s.ext = ""
		default:
			return invalid(key, "string or false", value)
		}

	case KeyPath:
		switch v := value.(type) {
		case string:
			s.paths = []string{v}
		case []string:
			s.paths = append([]string(nil), v...)
		case []any:
			paths := make([]string, 0, len(v))
			for _, item := range v {
				p, ok := item.(string)
				if !ok {
					return invalid(key, "string or list of strings", value)
				}
				paths = append(paths, p)
			}
			s.paths = paths
		default:
			return invalid(key, "string or list of strings", value)
		}

	case KeyWriteResponse:
		v, ok := value.(bool)
		if !ok {
			return invalid(key, "bool", value)
		}
		s.writeResponse = v

	case KeyFunctionName:
		v, ok := value.(string)
		if !ok || v == "" {
			return invalid(key, "non-empty string", value)
		}
		s.functionName = v

	case KeyEngineConfig:
		switch v := value.(type) {
		case nil:
			s.engineConfig = nil
		case map[string]any:
			s.engineConfig = v
		default:
			return invalid(key, "map[string]any", value)
		}

	case KeyConfigureEngine:
		switch fn := value.(type) {
		case nil:
			s.configureEngine = nil
		case func(Engine) error:
			s.configureEngine = fn
		case func(Engine):
			s.configureEngine = func(e Engine) error {
				fn(e)
				return nil
			}
		default:
			return invalid(key, "func(view.Engine) error", value)
		}

	case KeyMerge:
		var name string
		switch v := value.(type) {
		case string:
			name = v
		case MergeStrategy:
			name = string(v)
		default:
			return invalid(key, `"deep" or "shallow"`, value)
		}
		m, err := ParseMergeStrategy(name)
		if err != nil {
			return invalid(key, `"deep" or "shallow"`, value)
		}
		s.merge = m
	}
	return nil
}

func invalid(key, want string, got any) error {
	return &ConfigError{
		Kind:   InvalidOption,
		Detail: fmt.Sprintf("%s must be a %s, got %T", key, want, got),
	}
}
