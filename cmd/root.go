package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/sa6mwa/mkpy/internal/project"
	"github.com/sa6mwa/mkpy/internal/run"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mkpy <name>",
	Short:         "Create a Python project template",
	Long:          "mkpy scaffolds a Python project: readme, gitignore, requirements files,\nflake8, black and pre-commit configuration, and (optionally) a tests\ndirectory. <name> is a project name or a link to an existing repository,\nwhich is cloned and pushed back to after the initial commit.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ExactArgs(1),
	Annotations: map[string]string{
		"author": "Michel Blomgren <michel.blomgren@nionit.com>",
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		run.SetSilent(silentFlag)
		run.SetYes(yesFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := project.Create(args[0], project.Options{Tests: testsFlag})
		if err != nil {
			return err
		}
		heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render(fmt.Sprintf("Created project %s", name))
		fmt.Fprintln(os.Stdout, heading)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var testsFlag bool
var silentFlag bool
var yesFlag bool

func init() {
	// Version flag enables `--version`; default to dev unless overridden via -ldflags
	rootCmd.Version = "dev"

	// Include author in help and version output
	helpTmpl := rootCmd.HelpTemplate() + "\nAuthor: {{index .Annotations \"author\"}}\n"
	rootCmd.SetHelpTemplate(helpTmpl)
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\nAuthor: {{index .Annotations \"author\"}}\n")

	rootCmd.Flags().BoolVarP(&testsFlag, "tests", "t", false, "Create a tests directory with an empty __init__.py")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "s", false, "Silent mode: do not print command lines, only outputs")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Do not prompt before running commands")
}
