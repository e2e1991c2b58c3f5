// Package pongo is a view engine backed by pongo2 (Django/Jinja-style syntax).
//
// Each template root becomes a pongo2 filesystem loader in one template set.
// A name is resolved against the roots in order and the first root that has
// the file wins; {% extends %} and {% include %} resolve the same way.
//
// Engine options:
//
//	trimBlocks    bool            remove the first newline after a block tag
//	lstripBlocks  bool            strip leading whitespace before a block tag
//	noCache       bool            re-read templates on every render
//	globals       map[string]any  variables available to every template
//
// Template names are slash-separated paths relative to the roots; names that
// are not valid fs paths (absolute, containing "..") are rejected.
//
// Custom functions are engine scoped: AddFunc stores them in the engine's own
// globals and templates call them as {{ shout(name) }}. pongo2's filter
// registry is process-wide and is left alone, so built-in filters work as usual.
package pongo
