package view

import (
	"errors"
	"net/http"
)

// ErrorKind classifies errors produced by this package.
type ErrorKind uint8

const (
	// UnknownOption: the raw configuration has keys outside the recognized set.
	UnknownOption ErrorKind = iota + 1
	// InvalidOption: a recognized key has a value of the wrong type.
	InvalidOption
	// NameCollision: the render function name is already installed on the request.
	NameCollision
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case InvalidOption:
		return "invalid option"
	case NameCollision:
		return "name collision"
	default:
		return "unknown error kind"
	}
}

var (
	ErrUnknownOption = errors.New("view: unknown option")
	ErrInvalidOption = errors.New("view: invalid option")
	ErrNameCollision = errors.New("view: render function name collision")
	ErrNotInstalled  = errors.New("view: render function is not installed")
	ErrInvalidMerge  = errors.New("view: merge strategy must be \"deep\" or \"shallow\"")
)

// ConfigError is returned while resolving options.
// For UnknownOption, Detail is the sorted, comma-joined list of offending keys.
type ConfigError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	return "view: " + e.Kind.String() + ": " + e.Detail
}

// Is matches ErrUnknownOption or ErrInvalidOption according to Kind.
func (e *ConfigError) Is(target error) bool {
	switch e.Kind {
	case UnknownOption:
		return target == ErrUnknownOption
	case InvalidOption:
		return target == ErrInvalidOption
	}
	return false
}

// DispatchError is returned by the middleware when it cannot install the
// render function. It fails the request it happens on.
type DispatchError struct {
	Kind   ErrorKind
	Detail string
}

func (e *DispatchError) Error() string {
	return e.Detail
}

func (e *DispatchError) Is(target error) bool {
	return e.Kind == NameCollision && target == ErrNameCollision
}

// StatusCode reports 500: a collision is a server misconfiguration.
func (e *DispatchError) StatusCode() int {
	return http.StatusInternalServerError
}
