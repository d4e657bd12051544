package skill

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Default bundle locations, relative to the repository root.
const (
	DefaultSkillDir  = "skills/draw-io"
	DefaultPluginDir = ".claude-plugin"
)

// requiredDocs are the documentation files every skill bundle ships.
var requiredDocs = []string{"SKILL.md", "reference.md", "examples.md", "checklist.md"}

// requiredManifests are the plugin manifests that register the bundle.
var requiredManifests = []string{"plugin.json", "marketplace.json"}

// namePattern is the allowed skill name charset.
var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Checker validates a skill bundle layout on disk.
type Checker struct {
	root      string
	skillDir  string
	pluginDir string
	logger    *logrus.Logger
}

// NewChecker creates a checker for the repository rooted at root.
func NewChecker(root string, logger *logrus.Logger) *Checker {
	if logger == nil {
		logger = logrus.New()
	}
	return &Checker{
		root:      root,
		skillDir:  DefaultSkillDir,
		pluginDir: DefaultPluginDir,
		logger:    logger,
	}
}

// Result holds the bundle problems, split the same way diagram findings
// are: errors block acceptance, warnings are advisory.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Clean reports whether the bundle passed every check.
func (r *Result) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// frontmatter is the YAML block at the top of SKILL.md.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Check runs every bundle assertion and returns the collected problems.
func (c *Checker) Check() Result {
	result := Result{
		Errors:   make([]string, 0),
		Warnings: make([]string, 0),
	}

	for _, name := range requiredDocs {
		path := filepath.Join(c.root, c.skillDir, name)
		if _, err := os.Stat(path); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s not found at %s", name, path))
		}
	}

	c.checkSkillMetadata(&result)

	for _, name := range requiredManifests {
		path := filepath.Join(c.root, c.pluginDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s not found at %s", name, path))
			continue
		}
		if !json.Valid(data) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s is not valid JSON", name))
		}
	}

	c.logger.WithFields(logrus.Fields{
		"root":     c.root,
		"errors":   len(result.Errors),
		"warnings": len(result.Warnings),
	}).Debug("skill bundle checked")

	return result
}

// checkSkillMetadata parses the SKILL.md frontmatter and validates the
// required keys. A missing SKILL.md is already reported by the
// existence pass, so it is silently skipped here.
func (c *Checker) checkSkillMetadata(result *Result) {
	path := filepath.Join(c.root, c.skillDir, "SKILL.md")
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	fm, err := parseFrontmatter(content)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("SKILL.md: %v", err))
		return
	}

	if fm.Name == "" {
		result.Errors = append(result.Errors, "SKILL.md frontmatter is missing the 'name' field")
	} else if !namePattern.MatchString(fm.Name) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("skill name %q should only contain lowercase letters, numbers, and hyphens", fm.Name))
	}

	if fm.Description == "" {
		result.Errors = append(result.Errors, "SKILL.md frontmatter is missing the 'description' field")
	}
}

// parseFrontmatter extracts the leading YAML block delimited by ---
// lines.
func parseFrontmatter(content []byte) (*frontmatter, error) {
	text := string(content)
	if !strings.HasPrefix(text, "---") {
		return nil, fmt.Errorf("frontmatter must start with ---")
	}

	parts := strings.SplitN(text, "---", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("frontmatter has no closing ---")
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, fmt.Errorf("frontmatter is not valid YAML: %w", err)
	}

	return &fm, nil
}
