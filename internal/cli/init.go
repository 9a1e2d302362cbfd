package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/iconfetch/iconfetch/internal/config"
	"github.com/iconfetch/iconfetch/internal/repos"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively scaffold an icons input file",
	Long: `Create an icons input file by answering a few prompts.

The generated file can then be used with the root command:
  iconfetch -c ./icons.input.json

Examples:
  iconfetch init
  iconfetch init --output ./my-icons.json
  iconfetch init --force`,
	RunE: runInit,
}

// Init command flags
var (
	initOutput string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "icons.input.json", "Path of the generated input file")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing input file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
	}

	table := repos.DefaultTable()

	var repoName string
	if err := survey.AskOne(&survey.Select{
		Message: "Default icon repository:",
		Options: table.Names(),
	}, &repoName); err != nil {
		return err
	}

	preset, err := table.Lookup(repoName)
	if err != nil {
		return err
	}

	var outputDir string
	if err := survey.AskOne(&survey.Input{
		Message: "Output directory:",
		Default: "./icons",
	}, &outputDir); err != nil {
		return err
	}

	var iconName string
	if err := survey.AskOne(&survey.Input{
		Message: "First icon name:",
		Help:    "The icon name as used by the chosen icon set, e.g. arrow-right",
	}, &iconName, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	spec := config.IconSpec{Name: iconName}

	if variants := preset.VariantNames(); len(variants) > 0 {
		if err := survey.AskOne(&survey.Select{
			Message: "Variant:",
			Options: variants,
			Default: preset.DefaultVariant,
		}, &spec.Variant); err != nil {
			return err
		}
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Generate TSX components instead of raw SVG?",
		Default: false,
	}, &spec.TSXTransform); err != nil {
		return err
	}

	file := config.File{
		Repository: repoName,
		Output:     outputDir,
		Icons:      []config.IconSpec{spec},
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal input file: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(initOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", initOutput, err)
	}

	printSuccess(fmt.Sprintf("Wrote %s", initOutput))
	printInfo(fmt.Sprintf("Run \"iconfetch -c %s\" to fetch.", initOutput))
	return nil
}
