// Package skill checks the files that accompany the draw.io skill
// bundle: the documentation set, the SKILL.md frontmatter and the
// plugin manifests. These are plain existence and format assertions
// with no diagram logic; the diagram rules live in pkg/linter.
package skill
