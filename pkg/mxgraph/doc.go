// Package mxgraph parses draw.io / mxGraph diagram XML into a generic
// element tree and exposes typed views over the diagram primitives.
//
// # Overview
//
// A diagram file is hierarchical XML. Parse builds an ordered tree of
// Elements (tag, attributes, children) without interpreting any tags.
// The Cell and Geometry types are thin views over Elements with the
// mxCell and mxGeometry tags; they decode the attributes the rest of
// the system cares about (value, style, vertex/edge flags, width).
//
// # Style Micro-Language
//
// A cell's visual styling is a single attribute string of
// semicolon-delimited key=value pairs, e.g.
//
//	rounded=1;fontFamily=Noto Sans JP;fontSize=18;
//
// ParseStyle decodes it into a Style map with exact-key lookup, so a
// key is never confused with another key it happens to prefix.
//
// # Related Packages
//
//   - pkg/linter: rule checks over the parsed tree
package mxgraph
