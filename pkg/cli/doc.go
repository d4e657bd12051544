// Package cli provides the mxlint command-line interface.
//
// # Commands
//
// lint: validate draw.io diagram files
//
//	mxlint lint --dir ./docs/diagrams --format text
//
// Output formats:
//
//	mxlint lint --dir ./docs --format json
//	mxlint lint --dir ./docs --format github   # GitHub Actions annotations
//
// List the rule battery:
//
//	mxlint lint --rules
//
// skill: check a skill bundle layout
//
//	mxlint skill --root .
//
// watch: re-lint diagrams as they change on disk
//
//	mxlint watch --dir ./docs/diagrams
//
// serve: run the lint HTTP API
//
//	mxlint serve --addr :8080
//
// # Configuration
//
// The lint command looks for mxlint.yaml (or .mxlint.yaml) in the
// linted directory, or takes an explicit path via --config.
package cli
