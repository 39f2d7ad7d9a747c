package cmd

import (
	"fmt"
	"os"

	"srcbundle/pkg/config"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var initConfigPath string

// initCmd generates a configuration file through the interactive wizard.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a configuration file interactively",
	Long: `Init walks through the interactive configuration wizard, prompting for
file extensions and their comment markers, and saves the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("init requires an interactive terminal")
		}

		cfg, err := config.RunWizard(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if err := cfg.Save(initConfigPath); err != nil {
			return err
		}

		color.Green("Configuration saved to %s", initConfigPath)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initConfigPath, "config", "c", "config.yaml", "Destination for the generated configuration file")
	RootCmd.AddCommand(initCmd)
}
