package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ppiankov/packspectre/internal/analyzer"
	"github.com/ppiankov/packspectre/internal/audit"
	"github.com/ppiankov/packspectre/internal/report"
	"github.com/spf13/cobra"
)

var analyzeFlags struct {
	input      string
	format     string
	outputFile string
	idleCPU    float64
	lowCPU     float64
	minSamples int
	lowTTL     int64
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an audit pack directory",
	Long: `Analyze a directory of pre-collected AWS audit snapshots. Every snapshot is
optional: missing or malformed files degrade to empty tables and the analysis
still completes.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFlags.input, "input", "i", "", "Audit pack directory (required)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.format, "format", "text", "Output format: text, json")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.outputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().Float64Var(&analyzeFlags.idleCPU, "idle-cpu-percent", 0, "CPU % below which to downsize two steps (default: 5)")
	analyzeCmd.Flags().Float64Var(&analyzeFlags.lowCPU, "low-cpu-percent", 0, "CPU % below which to downsize one step (default: 20)")
	analyzeCmd.Flags().IntVar(&analyzeFlags.minSamples, "min-samples", 0, "Minimum CPU samples required for a verdict (default: 12)")
	analyzeCmd.Flags().Int64Var(&analyzeFlags.lowTTL, "low-ttl-seconds", 0, "TTLs below this are flagged (default: 300)")
	_ = analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	// The only fatal precondition: the pack directory itself must exist.
	info, err := os.Stat(analyzeFlags.input)
	if err != nil {
		return fmt.Errorf("audit pack directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("audit pack path %s is not a directory", analyzeFlags.input)
	}

	applyConfigDefaults()

	slog.Info("Loading audit pack", "dir", analyzeFlags.input)
	pack := audit.Load(analyzeFlags.input)

	ruleCfg := analyzer.Config{
		IdleCPUPercent: analyzeFlags.idleCPU,
		LowCPUPercent:  analyzeFlags.lowCPU,
		MinSamples:     analyzeFlags.minSamples,
		LowTTLSeconds:  analyzeFlags.lowTTL,
	}
	result := analyzer.Analyze(pack, ruleCfg)
	slog.Info("Analysis complete",
		"recommendations", len(result.Recommendations),
		"duplicate_targets", len(result.DuplicateTargets),
		"low_ttls", len(result.LowTTLs))

	data := report.Data{
		Tool:      "packspectre",
		Version:   version,
		Timestamp: time.Now().UTC(),
		Target: report.Target{
			Type:    "audit-pack",
			URIHash: computeTargetHash(analyzeFlags.input),
		},
		Pack:     pack,
		Analysis: result,
	}

	reporter, err := selectReporter(analyzeFlags.format, analyzeFlags.outputFile)
	if err != nil {
		return err
	}
	return reporter.Generate(data)
}

func applyConfigDefaults() {
	if analyzeFlags.format == "text" && cfg.Format != "" {
		analyzeFlags.format = cfg.Format
	}
	if analyzeFlags.outputFile == "" && cfg.Output != "" {
		analyzeFlags.outputFile = cfg.Output
	}
	if analyzeFlags.idleCPU == 0 && cfg.IdleCPUPercent > 0 {
		analyzeFlags.idleCPU = cfg.IdleCPUPercent
	}
	if analyzeFlags.lowCPU == 0 && cfg.LowCPUPercent > 0 {
		analyzeFlags.lowCPU = cfg.LowCPUPercent
	}
	if analyzeFlags.minSamples == 0 && cfg.MinSamples > 0 {
		analyzeFlags.minSamples = cfg.MinSamples
	}
	if analyzeFlags.lowTTL == 0 && cfg.LowTTLSeconds > 0 {
		analyzeFlags.lowTTL = cfg.LowTTLSeconds
	}
}

func selectReporter(format, outputFile string) (report.Reporter, error) {
	w := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, fmt.Errorf("create output file: %w", err)
		}
		w = f
	}

	switch format {
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "text":
		return &report.TextReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text or json)", format)
	}
}
