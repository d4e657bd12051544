package cli

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/mxlint/pkg/skill"
)

// newSkillCommand creates a new skill command
func newSkillCommand() *Command {
	fs := flag.NewFlagSet("skill", flag.ExitOnError)

	var (
		root    = fs.String("root", ".", "Repository root containing the skill bundle")
		verbose = fs.Bool("verbose", false, "Verbose output")
	)

	return &Command{
		Name:        "skill",
		Description: "Check a skill bundle for required files and metadata",
		Flags:       fs,
		Run: func(args []string) error {
			if err := fs.Parse(args); err != nil {
				return err
			}

			return runSkillCheck(*root, *verbose)
		},
	}
}

func runSkillCheck(root string, verbose bool) error {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	checker := skill.NewChecker(root, logger)
	result := checker.Check()

	for _, msg := range result.Errors {
		fmt.Printf("  [error] %s\n", msg)
	}
	for _, msg := range result.Warnings {
		fmt.Printf("  [warning] %s\n", msg)
	}

	if !result.Clean() {
		return fmt.Errorf("skill check failed with %d errors, %d warnings",
			len(result.Errors), len(result.Warnings))
	}

	fmt.Println("✓ Skill bundle passed all checks")
	return nil
}
