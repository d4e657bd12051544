package mxgraph

import (
	"fmt"
	"strconv"
)

// Well-known tags of the mxGraph dialect.
const (
	TagCell       = "mxCell"
	TagGeometry   = "mxGeometry"
	TagGraphModel = "mxGraphModel"
)

// DefaultCellID is reported for cells that carry no id attribute.
const DefaultCellID = "unknown"

// Cell is a view over an mxCell element: one diagram primitive, either
// a labeled container (vertex) or a connector (edge).
type Cell struct {
	el *Element
}

// Cells collects every mxCell in the document, depth-first in document
// order.
func Cells(doc *Document) []*Cell {
	elements := doc.Root.FindAll(TagCell)
	cells := make([]*Cell, 0, len(elements))
	for _, el := range elements {
		cells = append(cells, &Cell{el: el})
	}
	return cells
}

// NewCell wraps an element as a Cell. The element's tag is not checked;
// callers normally obtain cells via Cells.
func NewCell(el *Element) *Cell {
	return &Cell{el: el}
}

// ID returns the cell id, or DefaultCellID when absent.
func (c *Cell) ID() string {
	return c.el.AttrDefault("id", DefaultCellID)
}

// Value returns the cell's display text; empty when the cell has none.
func (c *Cell) Value() string {
	return c.el.Attr("value")
}

// Style parses the cell's style attribute into a Style map. An absent
// attribute yields an empty Style.
func (c *Cell) Style() Style {
	return ParseStyle(c.el.Attr("style"))
}

// IsVertex reports whether the cell is a shape (vertex="1").
func (c *Cell) IsVertex() bool {
	return c.el.Attr("vertex") == "1"
}

// IsEdge reports whether the cell is a connector (edge="1").
func (c *Cell) IsEdge() bool {
	return c.el.Attr("edge") == "1"
}

// Geometry returns the cell's direct mxGeometry child, or ok=false when
// the cell carries none. Nested geometry of descendant cells is not
// visible here.
func (c *Cell) Geometry() (*Geometry, bool) {
	el := c.el.Child(TagGeometry)
	if el == nil {
		return nil, false
	}
	return &Geometry{el: el}, true
}

// Geometry is a view over an mxGeometry element.
type Geometry struct {
	el *Element
}

// Width returns the geometry width. An absent width attribute counts as
// 0; a non-numeric value is an error.
func (g *Geometry) Width() (float64, error) {
	return g.attrFloat("width")
}

// Height returns the geometry height, with the same absent/invalid
// handling as Width.
func (g *Geometry) Height() (float64, error) {
	return g.attrFloat("height")
}

func (g *Geometry) attrFloat(name string) (float64, error) {
	raw, ok := g.el.Attrs[name]
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("geometry %s %q is not numeric: %w", name, raw, err)
	}
	return v, nil
}
