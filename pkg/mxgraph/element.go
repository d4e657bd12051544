package mxgraph

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Element is a single node of the parsed document tree: a tag name, an
// attribute map and the ordered child elements. Elements are built once
// by Parse and never mutated afterwards.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// Document is a parsed diagram file rooted at its top element.
type Document struct {
	Root *Element
}

// ParseError reports that the input was not well-formed XML. It wraps
// the underlying decoder error.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "mxgraph: malformed document: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errJunkAfterRoot   = errors.New("junk after document element")
	errJunkOutsideRoot = errors.New("text outside document element")
)

// Parse reads a complete diagram document from r. It returns a
// ParseError when the input is not well-formed, including a second
// top-level element or stray text around the root; there is no partial
// result in that case.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Tag:   t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, attr := range t.Attr {
				el.Attrs[attr.Name.Local] = attr.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Err: errJunkAfterRoot}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			// Text is only legal inside an element; a well-formed
			// document has nothing but whitespace at the top level.
			if len(stack) == 0 && strings.TrimSpace(string(t)) != "" {
				return nil, &ParseError{Err: errJunkOutsideRoot}
			}
		}
	}

	if root == nil {
		return nil, &ParseError{Err: io.ErrUnexpectedEOF}
	}

	return &Document{Root: root}, nil
}

// ParseString parses a diagram document held in a string.
func ParseString(content string) (*Document, error) {
	return Parse(strings.NewReader(content))
}

// Attr returns the attribute value, or the empty string when absent.
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// AttrDefault returns the attribute value, or def when absent.
func (e *Element) AttrDefault(name, def string) string {
	if v, ok := e.Attrs[name]; ok {
		return v
	}
	return def
}

// Child returns the first direct child with the given tag, or nil.
func (e *Element) Child(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Find returns the first descendant with the given tag in document
// order, or nil. The receiver itself is not considered.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll collects every descendant with the given tag, depth-first in
// document order. The receiver itself is not considered, so searching
// from the document root visits the whole tree regardless of nesting
// depth.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
		out = append(out, c.FindAll(tag)...)
	}
	return out
}
