package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/iksnae/cursor-chat-export/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	rootDir    string
	outputDir  string
	copyDB     bool
	overwrite  bool
	strict     bool
	reportPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// errFailures signals that the run finished but some workspaces failed
var errFailures = errors.New("one or more workspaces failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-chat-export",
	Short: "Export Cursor AI chat panel history to JSON and Markdown",
	Long: `Export the AI chat panel history stored in each Cursor workspace.

Every workspace under the workspaceStorage directory is scanned for its
state.vscdb store. Each chat tab found there is written twice, under a
directory named after the workspace's project folder:

  <out>/<project>/<title>.json   structured transcript
  <out>/<project>/<title>.md     readable transcript

Settings can also be read from ~/.config/cursor-chat-export/config.toml
(workspace_root, output_dir, copy, overwrite); flags take precedence.`,
	Args:          cobra.NoArgs,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	report, runErr := pipeline.Run(cfg)
	if report != nil {
		if reportPath != "" {
			if err := report.WriteYAML(reportPath); err != nil {
				internal.LogWarn("Failed to write report %s: %v", reportPath, err)
			}
		}
		report.PrintSummary(cmd.OutOrStdout())
	}
	if runErr != nil {
		return runErr
	}
	if strict && report.Failed() {
		return errFailures
	}
	return nil
}

// applyFlags lets explicitly set flags override file and default settings
func applyFlags(cmd *cobra.Command, cfg *internal.Config) {
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.WorkspaceRoot = rootDir
	}
	if flags.Changed("out") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("copy") {
		cfg.CopyDB = copyDB
	}
	if flags.Changed("overwrite") {
		cfg.Overwrite = overwrite
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVar(&configPath, "config", internal.DefaultConfigPath(), "Path to a TOML config file")
	rootCmd.Flags().StringVar(&rootDir, "root", "", "workspaceStorage directory to scan (default: detected for this OS)")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Output directory")
	rootCmd.Flags().BoolVar(&copyDB, "copy", false, "Copy database files to temporary location to avoid locking issues")
	rootCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Let later transcripts replace earlier ones with the same file name")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if any workspace failed to export")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this file")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
