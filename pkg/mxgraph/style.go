package mxgraph

import "strings"

// Style is the decoded form of a cell's style attribute: the
// semicolon-delimited key=value micro-language mapped to exact keys.
// Entries without '=' (shape names such as "rounded" used as flags) map
// to the empty string.
type Style map[string]string

// ParseStyle decodes a style attribute string. Empty segments are
// skipped, so trailing semicolons are harmless. Later duplicates win,
// matching how the renderer applies the string left to right.
func ParseStyle(s string) Style {
	style := make(Style)
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if key, value, found := strings.Cut(part, "="); found {
			style[key] = value
		} else {
			style[part] = ""
		}
	}
	return style
}

// Has reports whether the style assigns the exact key. Unlike substring
// search on the raw attribute, "fontFamily" does not match a key that
// merely starts with it.
func (s Style) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Get returns the value assigned to the exact key.
func (s Style) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}
