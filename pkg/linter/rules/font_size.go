package rules

import (
	"fmt"
	"strconv"

	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// FontSizeRule checks that explicitly sized text is legible: below the
// minimum is an error, below the recommended size a warning. Cells
// without an explicit fontSize are skipped; there is no inherited-size
// check.
type FontSizeRule struct {
	BaseRule
}

// NewFontSizeRule creates the font-size adequacy rule.
func NewFontSizeRule() *FontSizeRule {
	return &FontSizeRule{
		BaseRule: BaseRule{
			RuleName:        "font-size",
			RuleSeverity:    linter.SeverityError,
			RuleDescription: "Explicit fontSize must meet the minimum and recommended sizes",
		},
	}
}

// Check validates fontSize values on text cells.
func (r *FontSizeRule) Check(doc *mxgraph.Document, ctx *linter.Context) []linter.Finding {
	findings := make([]linter.Finding, 0)

	minSize := ctx.Config.Thresholds.MinimumFontSize
	recSize := ctx.Config.Thresholds.RecommendedFontSize

	for _, cell := range ctx.Cells {
		if cell.Value() == "" {
			continue
		}

		raw, ok := cell.Style().Get("fontSize")
		if !ok {
			continue
		}

		size, err := strconv.Atoi(raw)
		if err != nil {
			// Non-numeric size: skip this cell for this rule only.
			continue
		}

		switch {
		case size < minSize:
			findings = append(findings, linter.Finding{
				Rule:     r.Name(),
				Severity: linter.SeverityError,
				Message:  fmt.Sprintf("Cell '%s' has fontSize=%d, minimum is %d", cell.ID(), size, minSize),
			})
		case size < recSize:
			findings = append(findings, linter.Finding{
				Rule:     r.Name(),
				Severity: linter.SeverityWarning,
				Message:  fmt.Sprintf("Cell '%s' has fontSize=%d, recommended is %d", cell.ID(), size, recSize),
			})
		}
	}

	return findings
}
