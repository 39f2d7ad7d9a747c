package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"srcbundle/pkg/bundle"
	"srcbundle/pkg/config"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bundleProject    string
	bundleOutputDir  string
	bundleConfigPath string
	bundleTreePath   string
)

// bundleCmd runs the pipeline: resolve configuration, walk the project tree,
// and write the aggregate artifact.
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Flatten a project tree into one aggregate text file",
	Long: `Bundle walks the project directory, filters files through the configured
include/exclude patterns, strips single-line comments and blank lines, and
appends each cleaned file to the output artifact behind a delimiter naming
its path. Without --project on a terminal, bundle prompts interactively.`,
	RunE: runBundle,
}

func init() {
	bundleCmd.Flags().StringVarP(&bundleProject, "project", "p", "", "Path to the project directory")
	bundleCmd.Flags().StringVarP(&bundleOutputDir, "output-dir", "o", "", "Directory for the output artifact (default output/<project>_bundle)")
	bundleCmd.Flags().StringVarP(&bundleConfigPath, "config", "c", "config.yaml", "Path to a configuration file")
	bundleCmd.Flags().StringVar(&bundleTreePath, "tree", "", "Also write a directory tree listing to this path")
	RootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, args []string) error {
	var cfg config.Config
	var err error

	if bundleProject == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("--project is required when not running interactively")
		}
		cfg, err = promptForRun()
		if err != nil {
			return err
		}
	} else {
		cfg, err = config.Load(bundleConfigPath, logger)
		if err != nil {
			return err
		}
	}

	projectName := filepath.Base(filepath.Clean(bundleProject))
	outDir := bundleOutputDir
	if outDir == "" {
		outDir = filepath.Join("output", projectName+"_bundle")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}
	outputPath := filepath.Join(outDir, projectName+".txt")

	b, err := bundle.New(cfg, logger)
	if err != nil {
		return err
	}

	summary, err := b.Run(bundleProject, outputPath)
	if err != nil {
		return err
	}

	if bundleTreePath != "" {
		if err := bundle.WriteTree(bundleProject, bundleTreePath, b.Matcher(), logger); err != nil {
			return err
		}
	}

	color.Green("Project processing complete. Output saved to %s", outputPath)
	if summary.Failed > 0 {
		color.Yellow("%d file(s) could not be read:", summary.Failed)
		for _, f := range summary.Failures() {
			color.Yellow("  %s: %v", f.Path, f.Err)
		}
	}
	logger.Info("Bundle command finished",
		zap.String("runID", summary.RunID),
		zap.Int("included", summary.Included),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
	return nil
}

// promptForRun collects the project path, output directory, and configuration
// interactively, mirroring the non-flag invocation flow.
func promptForRun() (config.Config, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Entering interactive mode...")

	project, err := promptLine(reader, "Enter the path to your project: ", ".")
	if err != nil {
		return config.Config{}, err
	}
	bundleProject = project

	defaultOutDir := filepath.Join("output", filepath.Base(filepath.Clean(project))+"_bundle")
	outDir, err := promptLine(reader, fmt.Sprintf("Enter the output directory [%s]: ", defaultOutDir), defaultOutDir)
	if err != nil {
		return config.Config{}, err
	}
	bundleOutputDir = outDir

	choice, err := promptLine(reader, "Press 'D' to use the default configuration, or any other key to customize: ", "")
	if err != nil {
		return config.Config{}, err
	}
	if strings.EqualFold(choice, "d") {
		fmt.Println("Using default configuration.")
		return config.Default(), nil
	}

	cfg, err := config.RunWizard(os.Stdin, os.Stdout)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Save(bundleConfigPath); err != nil {
		logger.Warn("Failed to save generated configuration", zap.Error(err))
	}
	return cfg, nil
}

// promptLine prints message and reads one line, returning fallback when the
// user enters nothing.
func promptLine(reader *bufio.Reader, message, fallback string) (string, error) {
	fmt.Print(message)
	response, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	response = strings.TrimSpace(response)
	if response == "" {
		return fallback, nil
	}
	return response, nil
}
