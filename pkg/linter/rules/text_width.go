package rules

import (
	"fmt"

	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// TextWidthRule checks that boxes holding CJK text are wide enough.
// CJK/Kana glyphs are roughly square, so character count is a usable
// proxy for the rendered text width.
type TextWidthRule struct {
	BaseRule
}

// NewTextWidthRule creates the CJK text width rule.
func NewTextWidthRule() *TextWidthRule {
	return &TextWidthRule{
		BaseRule: BaseRule{
			RuleName:        "text-width",
			RuleSeverity:    linter.SeverityWarning,
			RuleDescription: "Boxes with CJK text need width proportional to the character count",
		},
	}
}

// Check warns when a cell's geometry width is below the recommended
// width for its CJK character count. Cells without a geometry child are
// skipped entirely; a geometry without a width attribute counts as
// width 0 and warns.
func (r *TextWidthRule) Check(doc *mxgraph.Document, ctx *linter.Context) []linter.Finding {
	findings := make([]linter.Finding, 0)

	charWidth := ctx.Config.Thresholds.CJKCharWidth

	for _, cell := range ctx.Cells {
		value := cell.Value()
		if value == "" {
			continue
		}

		count := countCJK(value)
		if count == 0 {
			continue
		}

		geom, ok := cell.Geometry()
		if !ok {
			continue
		}

		width, err := geom.Width()
		if err != nil {
			// Non-numeric width: skip this cell for this rule only.
			continue
		}

		recommended := count * charWidth
		if width < float64(recommended) {
			findings = append(findings, linter.Finding{
				Rule:     r.Name(),
				Severity: linter.SeverityWarning,
				Message: fmt.Sprintf("Cell '%s' has %d Japanese chars with width=%g, recommended width is %d",
					cell.ID(), count, width, recommended),
			})
		}
	}

	return findings
}

// countCJK counts runes in the Hiragana, Katakana and CJK Unified
// Ideographs blocks.
func countCJK(s string) int {
	count := 0
	for _, r := range s {
		switch {
		case r >= 0x3040 && r <= 0x309F: // Hiragana
			count++
		case r >= 0x30A0 && r <= 0x30FF: // Katakana
			count++
		case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
			count++
		}
	}
	return count
}
