package rules

import (
	"github.com/platinummonkey/mxlint/pkg/linter"
)

// BaseRule provides the descriptive fields shared by all rules.
type BaseRule struct {
	RuleName        string
	RuleSeverity    linter.Severity
	RuleDescription string
}

func (r *BaseRule) Name() string              { return r.RuleName }
func (r *BaseRule) Severity() linter.Severity { return r.RuleSeverity }
func (r *BaseRule) Description() string       { return r.RuleDescription }
