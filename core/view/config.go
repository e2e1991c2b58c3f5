package view

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Defaults applied to every option the caller leaves unset.
const (
	DefaultExt          = "html"
	DefaultFunctionName = "render"
	DefaultMerge        = MergeDeep
)

// Recognized keys of a raw option mapping. Matching is exact and case sensitive.
const (
	KeyExt             = "ext"
	KeyPath            = "path"
	KeyWriteResponse   = "writeResponse"
	KeyFunctionName    = "functionName"
	KeyEngineConfig    = "engineConfig"
	KeyConfigureEngine = "configureEngine"
	KeyMerge           = "merge"
)

var knownKeys = map[string]struct{}{
	KeyExt:             {},
	KeyPath:            {},
	KeyWriteResponse:   {},
	KeyFunctionName:    {},
	KeyEngineConfig:    {},
	KeyConfigureEngine: {},
	KeyMerge:           {},
}

// Config is the environment-loadable part of the options.
// Engine configuration and the configure hook are passed as Options.
type Config struct {
	Ext           string        `env:"VIEW_EXT" envDefault:"html"`
	Path          []string      `env:"VIEW_PATH" envSeparator:","`
	WriteResponse bool          `env:"VIEW_WRITE_RESPONSE" envDefault:"true"`
	FunctionName  string        `env:"VIEW_FUNCTION_NAME" envDefault:"render"`
	Merge         MergeStrategy `env:"VIEW_MERGE" envDefault:"deep"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Ext:           DefaultExt,
		WriteResponse: true,
		FunctionName:  DefaultFunctionName,
		Merge:         DefaultMerge,
	}
}

// MergeStrategy decides how request state and render variables are combined.
type MergeStrategy string

const (
	// MergeDeep merges nested map[string]any values key by key.
	MergeDeep MergeStrategy = "deep"
	// MergeShallow replaces top-level keys only.
	MergeShallow MergeStrategy = "shallow"
)

// ParseMergeStrategy validates s.
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch m := MergeStrategy(s); m {
	case MergeDeep, MergeShallow:
		return m, nil
	default:
		return "", fmt.Errorf("%w, got %q", ErrInvalidMerge, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MergeStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseMergeStrategy(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m MergeStrategy) String() string {
	return string(m)
}

// settings is the mutable build state behind New, Resolve and FromConfig.
type settings struct {
	ext             string
	paths           []string
	writeResponse   bool
	functionName    string
	merge           MergeStrategy
	engineConfig    map[string]any
	configureEngine func(Engine) error
	factory         EngineFactory
	logger          *slog.Logger
	tracerProvider  trace.TracerProvider
}

func defaultSettings() *settings {
	return &settings{
		ext:           DefaultExt,
		writeResponse: true,
		functionName:  DefaultFunctionName,
		merge:         DefaultMerge,
		factory:       PongoEngine,
	}
}
