package linter

import (
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// Severity indicates how serious a finding is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one classified validation message. It belongs to exactly
// one severity bucket and is produced fresh on every run.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Result is the output of one validation run: the blocking errors and
// advisory warnings, each in the order the rules discovered them.
type Result struct {
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// Clean reports whether the run produced no findings at all.
func (r *Result) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// ErrorMessages returns the error finding texts in discovery order.
func (r *Result) ErrorMessages() []string {
	return messages(r.Errors)
}

// WarningMessages returns the warning finding texts in discovery order.
func (r *Result) WarningMessages() []string {
	return messages(r.Warnings)
}

func messages(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

func (r *Result) add(f Finding) {
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f)
	default:
		r.Warnings = append(r.Warnings, f)
	}
}

// Context carries the per-run data shared by all rules: the immutable
// tree, the cells collected from it once, and the active configuration.
type Context struct {
	Config *Config
	Cells  []*mxgraph.Cell
	Model  *mxgraph.Element // mxGraphModel element, nil when absent
}

// NewContext collects the per-run context for a document.
func NewContext(doc *mxgraph.Document, config *Config) *Context {
	if config == nil {
		config = DefaultConfig()
	}
	return &Context{
		Config: config,
		Cells:  mxgraph.Cells(doc),
		Model:  findGraphModel(doc),
	}
}

// Engine orchestrates a validation run.
type Engine struct {
	config   *Config
	registry *RuleRegistry
}

// NewEngine creates an engine with an empty rule registry. Callers
// register the battery they want, normally rules.DefaultRules.
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}

	return &Engine{
		config:   config,
		registry: NewRuleRegistry(),
	}
}

// Registry returns the engine's rule registry.
func (e *Engine) Registry() *RuleRegistry {
	return e.registry
}

// Validate runs every enabled rule against the document, in
// registration order, and returns the accumulated findings. The
// document is never mutated, so distinct runs over the same tree are
// safe to execute concurrently; a single Result must not be shared
// across goroutines while a run is in progress.
func (e *Engine) Validate(doc *mxgraph.Document) Result {
	result := Result{
		Errors:   make([]Finding, 0),
		Warnings: make([]Finding, 0),
	}

	ctx := NewContext(doc, e.config)

	for _, rule := range e.registry.EnabledRules(e.config) {
		for _, finding := range rule.Check(doc, ctx) {
			result.add(finding)
		}
	}

	return result
}

// findGraphModel locates the mxGraphModel element. The document root
// itself qualifies, so stripped fragments without the mxfile wrapper
// are still recognized.
func findGraphModel(doc *mxgraph.Document) *mxgraph.Element {
	if doc.Root.Tag == mxgraph.TagGraphModel {
		return doc.Root
	}
	return doc.Root.Find(mxgraph.TagGraphModel)
}

// FileResult pairs a validation result with the file it came from.
type FileResult struct {
	FilePath string `json:"file_path"`
	Result
}

// Summary provides an overview of results across multiple files.
type Summary struct {
	TotalFiles    int `json:"total_files"`
	TotalFindings int `json:"total_findings"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
}

// GenerateSummary tallies findings across file results.
func (e *Engine) GenerateSummary(results []FileResult) Summary {
	summary := Summary{
		TotalFiles: len(results),
	}

	for _, result := range results {
		summary.Errors += len(result.Errors)
		summary.Warnings += len(result.Warnings)
	}
	summary.TotalFindings = summary.Errors + summary.Warnings

	return summary
}
