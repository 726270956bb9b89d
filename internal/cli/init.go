package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phoenix-kits/phoenix-kits/internal/config"
	"github.com/phoenix-kits/phoenix-kits/internal/engine"
	"github.com/phoenix-kits/phoenix-kits/internal/prompt"
	"github.com/phoenix-kits/phoenix-kits/internal/scaffold"
	"github.com/phoenix-kits/phoenix-kits/internal/templates"
	"github.com/phoenix-kits/phoenix-kits/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type initOptions struct {
	template    string
	projectName string
	vars        map[string]string
}

func newInitCmd(root *rootOptions) *cobra.Command {
	o := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init [destination]",
		Short: "Initialize a new LLM application with Phoenix observability",
		Long: `Generate a new LLM application from a built-in template.

The destination defaults to the current directory and must be empty or not
exist yet. Missing --template or --project-name values are prompted for.

Examples:
  phoenix-kits init --template langchain-rag --project-name "My RAG App"
  phoenix-kits init --template llamaindex-qa --project-name Demo ./out`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination := "."
			if len(args) == 1 {
				destination = args[0]
			}
			return runInit(cmd, root, o, destination)
		},
	}

	cmd.Flags().StringVar(&o.template, "template", "", fmt.Sprintf("The project template to use for initialization (%s)", strings.Join(templates.Strings(), ", ")))
	cmd.Flags().StringVar(&o.projectName, "project-name", "", "The name of the new LLM application")
	cmd.Flags().StringToStringVar(&o.vars, "var", nil, "Extra template variable as key=value (repeatable)")

	_ = cmd.RegisterFlagCompletionFunc("template", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return templates.Strings(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runInit(cmd *cobra.Command, root *rootOptions, o *initOptions, destination string) error {
	in := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	out := ui.NewPrinter(cmd.OutOrStdout())

	templateName, err := resolveTemplate(in, o.template)
	if err != nil {
		return err
	}

	projectName := o.projectName
	if projectName == "" {
		if projectName, err = in.Ask("Project name"); err != nil {
			return err
		}
	}

	absDest, err := filepath.Abs(destination)
	if err != nil {
		return fmt.Errorf("resolving destination %s: %w", destination, err)
	}

	out.Info("Initializing '%s' using the '%s' template...", projectName, templateName)

	if err := scaffold.CheckDestination(absDest); err != nil {
		var notEmpty *scaffold.DestinationNotEmptyError
		if errors.As(err, &notEmpty) {
			out.Error("Error: %s is not empty.", displayDirName(absDest))
			out.Plain("Please run this command in a new or empty directory.")
			return errAborted
		}
		out.Error("Error: %v", err)
		return errAborted
	}

	vars := map[string]string{scaffold.VarPhoenixEndpoint: config.PhoenixEndpoint()}
	for k, v := range o.vars {
		vars[k] = v
	}

	gen := scaffold.NewGenerator(root.engine(),
		scaffold.WithVariables(vars),
		scaffold.WithLogger(root.logger),
	)

	projectPath, err := gen.CreateProject(templateName.String(), projectName, absDest)
	if err != nil {
		root.logger.Debug("project generation failed", zap.Error(err))
		if errors.Is(err, engine.ErrTemplateNotFound) {
			out.Error("Error: %v", err)
			return errAborted
		}
		out.Error("An unexpected error occurred: %v", err)
		return errAborted
	}

	out.Blank()
	out.Success("Success! Your project has been created at:")
	out.Plain("%s", projectPath)
	out.Blank()
	out.Notice("Next steps:")
	for i, step := range nextSteps(projectPath) {
		out.Plain("%d. %s", i+1, step)
	}
	return nil
}

// resolveTemplate parses the --template value, prompting when it is empty.
func resolveTemplate(in *prompt.Prompter, flagValue string) (templates.Name, error) {
	if flagValue == "" {
		chosen, err := in.Select("Select a template", templates.Strings())
		if err != nil {
			return "", err
		}
		flagValue = chosen
	}
	return templates.ParseName(flagValue)
}

func nextSteps(projectPath string) []string {
	return []string{
		"cd " + filepath.Base(projectPath),
		"Set your OPENAI_API_KEY in the .env file",
		"pip install -r requirements.txt",
		"python main.py",
	}
}

// displayDirName names the destination in messages.
func displayDirName(absDest string) string {
	if cwd, err := os.Getwd(); err == nil && filepath.Clean(cwd) == absDest {
		return "the current directory"
	}
	return filepath.Base(absDest)
}
