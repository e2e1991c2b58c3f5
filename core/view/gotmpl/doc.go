// Package gotmpl is a view engine backed by html/template.
//
// Template names are slash-separated paths relative to the configured roots.
// Roots are searched in order and the first root that holds the file wins.
// Names that are not valid fs paths (absolute, containing "..") are rejected.
//
// Engine options:
//
//	strict      bool    fail on missing map keys (missingkey=error)
//	noCache     bool    re-parse templates on every render
//	leftDelim   string  action delimiter, default "{{"
//	rightDelim  string  action delimiter, default "}}"
package gotmpl
