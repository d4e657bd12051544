// Package linter applies diagram style rules to parsed draw.io documents.
//
// # Overview
//
// The engine runs a fixed, ordered battery of independent rule checks
// against one immutable document tree and buckets the findings into
// blocking errors and advisory warnings. Rules never depend on each
// other's output; the battery order only determines finding order.
//
// # Rules
//
// font-family: text cells must declare a fontFamily style key
// font-size: explicit fontSize must meet the minimum / recommended sizes
// edge-order: connectors should precede shapes in document order
// text-width: boxes holding CJK text need width proportional to length
// page-setting: the graph model should disable the page background
//
// # Usage Example
//
//	config := linter.DefaultConfig()
//	engine := linter.NewEngine(config)
//	for _, rule := range rules.DefaultRules() {
//		engine.Registry().Register(rule)
//	}
//
//	doc, err := mxgraph.ParseString(content)
//	if err != nil {
//		return err // not well-formed, no findings
//	}
//
//	result := engine.Validate(doc)
//	fmt.Printf("%d errors, %d warnings\n",
//		len(result.Errors), len(result.Warnings))
//
// # Related Packages
//
//   - pkg/mxgraph: document parsing
//   - pkg/linter/rules: the built-in rule battery
package linter
