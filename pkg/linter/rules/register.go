package rules

import (
	"github.com/platinummonkey/mxlint/pkg/linter"
)

// DefaultRules returns the built-in battery in its fixed order. The
// order determines finding order, never outcome: the rules are
// independent.
func DefaultRules() []linter.Rule {
	return []linter.Rule{
		NewFontFamilyRule(),
		NewFontSizeRule(),
		NewEdgeOrderRule(),
		NewTextWidthRule(),
		NewPageSettingRule(),
	}
}
