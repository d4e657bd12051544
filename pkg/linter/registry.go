package linter

import (
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// Rule is one independent diagram check. Check reads the shared context
// and returns its findings; it must not mutate the document or the
// context.
type Rule interface {
	Name() string
	Severity() Severity
	Description() string
	Check(doc *mxgraph.Document, ctx *Context) []Finding
}

// RuleRegistry manages the available rules. Registration order is the
// battery order, so finding order is stable across runs.
type RuleRegistry struct {
	rules map[string]Rule
	order []string
}

// NewRuleRegistry creates an empty rule registry.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{
		rules: make(map[string]Rule),
	}
}

// Register adds a rule. Re-registering a name replaces the rule but
// keeps its original position in the battery.
func (r *RuleRegistry) Register(rule Rule) {
	if _, exists := r.rules[rule.Name()]; !exists {
		r.order = append(r.order, rule.Name())
	}
	r.rules[rule.Name()] = rule
}

// GetRule retrieves a rule by name.
func (r *RuleRegistry) GetRule(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// AllRules returns every registered rule in registration order.
func (r *RuleRegistry) AllRules() []Rule {
	rules := make([]Rule, 0, len(r.order))
	for _, name := range r.order {
		rules = append(rules, r.rules[name])
	}
	return rules
}

// EnabledRules returns the rules the config has not disabled, in
// registration order.
func (r *RuleRegistry) EnabledRules(config *Config) []Rule {
	rules := make([]Rule, 0, len(r.order))
	for _, name := range r.order {
		if config.RuleEnabled(name) {
			rules = append(rules, r.rules[name])
		}
	}
	return rules
}
