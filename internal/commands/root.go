package commands

import (
	"fmt"
	"log/slog"

	"github.com/ppiankov/packspectre/internal/config"
	"github.com/ppiankov/packspectre/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "packspectre",
	Short: "Offline AWS audit pack analyzer",
	Long: `packspectre analyzes a pre-collected AWS audit pack: a directory of JSON
snapshots gathered with the AWS CLI (cost explorer queries, inventory
describes, CloudWatch statistic dumps). It normalizes the snapshots, derives
utilization and cost signals, and reports rightsizing recommendations,
unattached resources, and DNS consistency findings.

No AWS API is ever called; the input directory is the only data source.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("packspectre %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
