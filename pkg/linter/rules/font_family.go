package rules

import (
	"fmt"

	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// FontFamilyRule checks that every cell carrying display text assigns
// an explicit fontFamily in its style. Only presence is checked, never
// the font name itself.
type FontFamilyRule struct {
	BaseRule
}

// NewFontFamilyRule creates the font-family presence rule.
func NewFontFamilyRule() *FontFamilyRule {
	return &FontFamilyRule{
		BaseRule: BaseRule{
			RuleName:        "font-family",
			RuleSeverity:    linter.SeverityError,
			RuleDescription: "Cells with text must declare fontFamily in their style",
		},
	}
}

// Check validates fontFamily presence on text cells.
func (r *FontFamilyRule) Check(doc *mxgraph.Document, ctx *linter.Context) []linter.Finding {
	findings := make([]linter.Finding, 0)

	for _, cell := range ctx.Cells {
		if cell.Value() == "" {
			continue
		}

		if !cell.Style().Has("fontFamily") {
			findings = append(findings, linter.Finding{
				Rule:     r.Name(),
				Severity: linter.SeverityError,
				Message:  fmt.Sprintf("Cell '%s' has text but missing fontFamily in style", cell.ID()),
			})
		}
	}

	return findings
}
