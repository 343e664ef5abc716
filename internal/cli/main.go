package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCommand()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "srtforge <transcript.json>",
		Short:        "Rebuild clean, timing-correct SRT subtitles from diarized transcript JSON",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args[0])
		},
	}

	root.SilenceErrors = true

	root.Flags().String("out", "", "Output SRT path (default: input with .srt extension)")
	root.Flags().String("report", "", "Audit report JSON path (default: alongside the SRT)")
	root.Flags().String("tuning", "", "TOML tuning file overriding the reference thresholds")

	// Pre-split tuning; 0 keeps it off.
	root.Flags().Float64("pre-split", 0, "Split segments longer than this many seconds (0 = off)")
	_ = root.Flags().MarkHidden("pre-split")

	root.AddCommand(newAuditCommand(), newTranscribeCommand())
	return root
}

// logf adapts the CLI's slog logger to the pipeline's Logf contract.
func logf(format string, args ...any) {
	slog.Info(fmt.Sprintf(format, args...))
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
