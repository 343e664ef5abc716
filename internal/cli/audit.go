package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"srtforge/internal/domain/srt"
)

func newAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <subtitles.srt>",
		Short: "Re-parse an SRT file and report structural violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath, _ := cmd.Flags().GetString("report")
			return runAudit(cmd, args[0], reportPath)
		},
	}
	cmd.Flags().String("report", "", "Audit report JSON path (default: <input>.audit.json)")
	return cmd
}

func runAudit(cmd *cobra.Command, input, reportPath string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	report, err := srt.Audit(string(data))
	if err != nil {
		return err
	}

	if reportPath == "" {
		reportPath = strings.TrimSuffix(input, ".srt") + ".audit.json"
	}
	if err := srt.WriteReport(report, reportPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
	logf("report written: %s", reportPath)
	if len(report.Warnings) > 0 {
		return fmt.Errorf("%d structural warnings", len(report.Warnings))
	}
	return nil
}

func renderReport(r srt.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Total items", r.TotalItems},
		{"Duration (s)", fmt.Sprintf("%.2f", r.DurationS)},
		{"Warnings", len(r.Warnings)},
		{"Long segments (>10s)", joinInts(r.LongSegments)},
		{"Short segments (<0.3s)", joinInts(r.ShortSegments)},
		{"Speaker switches", r.SpeakerSwitches},
	})

	speakers := make([]string, 0, len(r.Speakers))
	for s := range r.Speakers {
		speakers = append(speakers, s)
	}
	sort.Strings(speakers)
	for _, s := range speakers {
		tw.AppendRow(table.Row{"Turns: " + s, r.Speakers[s]})
	}
	return tw.Render()
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
