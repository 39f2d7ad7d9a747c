package cmd

import (
	"srcbundle/pkg/logging"
	"srcbundle/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger    *zap.Logger
	debugMode bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "srcbundle",
	Short: "srcbundle flattens project source trees into a single text artifact",
	Long: `srcbundle walks a project directory, selects source files by configurable
include/exclude patterns, strips single-line comments and blank lines, and
concatenates the cleaned contents into one delimited text file for LLM
ingestion pipelines.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugMode {
			l, err := logging.New(true, "srcbundle", version.Get().Version)
			if err != nil {
				return err
			}
			logger = l
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it with the
// provided logger.
func Execute(l *zap.Logger) error {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}
