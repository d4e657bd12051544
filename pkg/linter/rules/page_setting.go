package rules

import (
	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

const pageSettingMessage = `mxGraphModel should have page="0" for transparent background`

// PageSettingRule checks that the graph model disables the page
// background so exported diagrams stay transparent.
type PageSettingRule struct {
	BaseRule
}

// NewPageSettingRule creates the canvas transparency rule.
func NewPageSettingRule() *PageSettingRule {
	return &PageSettingRule{
		BaseRule: BaseRule{
			RuleName:        "page-setting",
			RuleSeverity:    linter.SeverityWarning,
			RuleDescription: `The graph model should set page="0" for a transparent background`,
		},
	}
}

// Check warns when the mxGraphModel's page attribute (default "1") is
// anything but "0". Documents without a graph model are skipped.
func (r *PageSettingRule) Check(doc *mxgraph.Document, ctx *linter.Context) []linter.Finding {
	if ctx.Model == nil {
		return nil
	}

	if ctx.Model.AttrDefault("page", "1") != "0" {
		return []linter.Finding{{
			Rule:     r.Name(),
			Severity: linter.SeverityWarning,
			Message:  pageSettingMessage,
		}}
	}

	return nil
}
