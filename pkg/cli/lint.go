package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/linter/rules"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// newLintCommand creates a new lint command
func newLintCommand() *Command {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)

	var (
		dir           = fs.String("dir", ".", "Directory containing diagram files")
		configFile    = fs.String("config", "", "Path to config file (mxlint.yaml)")
		format        = fs.String("format", "text", "Output format: text, json, github")
		failOnError   = fs.Bool("fail-on-error", true, "Exit with error code on lint errors")
		failOnWarning = fs.Bool("fail-on-warning", false, "Exit with error code on lint warnings")
		verbose       = fs.Bool("verbose", false, "Verbose output")
		rulesOnly     = fs.Bool("rules", false, "List available rules and exit")
	)

	return &Command{
		Name:        "lint",
		Description: "Lint draw.io diagram files for style and rendering issues",
		Flags:       fs,
		Run: func(args []string) error {
			if err := fs.Parse(args); err != nil {
				return err
			}

			return runLint(*dir, *configFile, *format, *failOnError, *failOnWarning, *verbose, *rulesOnly)
		},
	}
}

func runLint(dir, configFile, format string, failOnError, failOnWarning, verbose, rulesOnly bool) error {
	var config *linter.Config
	var err error
	if configFile != "" {
		config, err = linter.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		config, err = linter.LoadConfigFromDir(dir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	engine := linter.NewEngine(config)
	for _, rule := range rules.DefaultRules() {
		engine.Registry().Register(rule)
	}

	if rulesOnly {
		return lintListRules(engine)
	}

	diagramFiles, err := lintFindDiagramFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to find diagram files: %w", err)
	}

	if len(diagramFiles) == 0 {
		fmt.Printf("No diagram files found in %s\n", dir)
		return nil
	}

	if verbose {
		fmt.Printf("Linting %d diagram files...\n", len(diagramFiles))
	}

	results := make([]linter.FileResult, 0, len(diagramFiles))
	for _, file := range diagramFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		doc, err := mxgraph.ParseString(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}

		results = append(results, linter.FileResult{
			FilePath: file,
			Result:   engine.Validate(doc),
		})
	}

	summary := engine.GenerateSummary(results)

	switch format {
	case "json":
		return lintOutputJSON(results, summary)
	case "github":
		return lintOutputGitHub(results)
	default:
		return lintOutputText(results, summary, failOnError, failOnWarning)
	}
}

// lintFindDiagramFiles walks dir for .drawio and .xml files, skipping
// hidden, vendor and node_modules directories.
func lintFindDiagramFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if (strings.HasPrefix(name, ".") && path != dir) || name == "vendor" || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}

		switch filepath.Ext(path) {
		case ".drawio", ".xml":
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func lintListRules(engine *linter.Engine) error {
	allRules := engine.Registry().AllRules()

	fmt.Printf("Available lint rules (%d):\n\n", len(allRules))

	for _, rule := range allRules {
		fmt.Printf("  - %-15s [%s]\n    %s\n",
			rule.Name(),
			rule.Severity(),
			rule.Description(),
		)
	}

	return nil
}

func lintOutputText(results []linter.FileResult, summary linter.Summary, failOnError, failOnWarning bool) error {
	hasFindings := false

	for _, result := range results {
		if result.Clean() {
			continue
		}

		hasFindings = true
		fmt.Printf("\n%s:\n", result.FilePath)

		for _, f := range result.Errors {
			fmt.Printf("  [%s] %s (%s)\n", f.Severity, f.Message, f.Rule)
		}
		for _, f := range result.Warnings {
			fmt.Printf("  [%s] %s (%s)\n", f.Severity, f.Message, f.Rule)
		}
	}

	fmt.Printf("\n")
	fmt.Printf("Summary:\n")
	fmt.Printf("  Files:    %d\n", summary.TotalFiles)
	fmt.Printf("  Findings: %d\n", summary.TotalFindings)
	fmt.Printf("  Errors:   %d\n", summary.Errors)
	fmt.Printf("  Warnings: %d\n", summary.Warnings)

	if failOnError && summary.Errors > 0 {
		return fmt.Errorf("lint failed with %d errors", summary.Errors)
	}

	if failOnWarning && summary.Warnings > 0 {
		return fmt.Errorf("lint failed with %d warnings", summary.Warnings)
	}

	if !hasFindings {
		fmt.Println("\n✓ All files passed linting")
	}

	return nil
}

func lintOutputJSON(results []linter.FileResult, summary linter.Summary) error {
	output := struct {
		Results []linter.FileResult `json:"results"`
		Summary linter.Summary      `json:"summary"`
	}{
		Results: results,
		Summary: summary,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func lintOutputGitHub(results []linter.FileResult) error {
	// GitHub Actions annotation format
	// ::error file={name}::{message}
	annotate := func(file string, findings []linter.Finding) {
		for _, f := range findings {
			level := "warning"
			if f.Severity == linter.SeverityError {
				level = "error"
			}

			fmt.Printf("::%s file=%s::[%s] %s\n", level, file, f.Rule, f.Message)
		}
	}

	for _, result := range results {
		annotate(result.FilePath, result.Errors)
		annotate(result.FilePath, result.Warnings)
	}

	return nil
}
