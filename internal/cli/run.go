package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"srtforge/internal/config"
	"srtforge/internal/pipeline"
)

func runProcess(cmd *cobra.Command, input string) error {
	outSRT, _ := cmd.Flags().GetString("out")
	reportPath, _ := cmd.Flags().GetString("report")
	tuningPath, _ := cmd.Flags().GetString("tuning")
	preSplit, _ := cmd.Flags().GetFloat64("pre-split")

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	cfg := pipeline.Default()
	if tuningPath != "" {
		tuning, err := config.Load(tuningPath)
		if err != nil {
			return err
		}
		cfg = tuning.Apply(cfg)
	}
	// Explicit flags win over the tuning file.
	if cmd.Flags().Changed("pre-split") {
		cfg.PreSplitMaxSec = preSplit
	}

	cfg.InputJSON = absIn
	cfg.OutSRT = outSRT
	cfg.AuditJSON = reportPath
	cfg.Logf = logf

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	report, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}
	if len(report.Warnings) > 0 {
		return fmt.Errorf("audit found %d structural warnings", len(report.Warnings))
	}
	return nil
}
