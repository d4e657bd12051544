package rules

import (
	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// edgeOrderMessage is emitted at most once per run. Rendering order
// follows document order, so connectors placed after shapes draw on top
// of them and obscure the shape borders.
const edgeOrderMessage = "Edges (arrows) should be placed before vertices (boxes) in XML to render behind other elements"

// EdgeOrderRule checks that connectors precede shapes in document order.
type EdgeOrderRule struct {
	BaseRule
}

// NewEdgeOrderRule creates the edge/vertex ordering rule.
func NewEdgeOrderRule() *EdgeOrderRule {
	return &EdgeOrderRule{
		BaseRule: BaseRule{
			RuleName:        "edge-order",
			RuleSeverity:    linter.SeverityWarning,
			RuleDescription: "Edges should appear before vertices so they render behind them",
		},
	}
}

// Check compares the first vertex position against the last edge
// position and warns once when any edge trails a vertex.
func (r *EdgeOrderRule) Check(doc *mxgraph.Document, ctx *linter.Context) []linter.Finding {
	firstVertex := -1
	lastEdge := -1

	for idx, cell := range ctx.Cells {
		if cell.IsVertex() && firstVertex == -1 {
			firstVertex = idx
		}
		if cell.IsEdge() {
			lastEdge = idx
		}
	}

	if firstVertex != -1 && lastEdge != -1 && lastEdge > firstVertex {
		return []linter.Finding{{
			Rule:     r.Name(),
			Severity: linter.SeverityWarning,
			Message:  edgeOrderMessage,
		}}
	}

	return nil
}
