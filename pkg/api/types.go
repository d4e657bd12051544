package api

import (
	"github.com/platinummonkey/mxlint/pkg/linter"
)

// LintResponse is the result of linting one document. Errors block
// acceptance; warnings are advisory. Both lists preserve the order the
// rules discovered them.
type LintResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Cached   bool     `json:"cached"`
}

func lintResponse(result linter.Result, cached bool) LintResponse {
	return LintResponse{
		Valid:    len(result.Errors) == 0,
		Errors:   result.ErrorMessages(),
		Warnings: result.WarningMessages(),
		Cached:   cached,
	}
}

// RuleInfo describes one registered rule.
type RuleInfo struct {
	Name        string          `json:"name"`
	Severity    linter.Severity `json:"severity"`
	Description string          `json:"description"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status string `json:"status"`
}
