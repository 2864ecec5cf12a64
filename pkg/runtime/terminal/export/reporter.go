// Package export renders analysis results for the terminal: per-volume
// tables, the consolidated fleet summary, ASCII graphs, and CSV. It holds
// no analytic logic; every figure comes in precomputed.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

type TableConfig struct {
	MetricWidth int
	ValueWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MetricWidth: 25,
		ValueWidth:  30,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// RenderVolume prints one volume's analysis, either as a compact two-column
// table or as the verbose sectioned breakdown.
func (r *Reporter) RenderVolume(report domain.VolumeReport, verbose bool) error {
	funcMap := template.FuncMap{
		"row": func(metric string, value string) string {
			return fmt.Sprintf("   %-*s %-*s",
				r.config.MetricWidth, metric,
				r.config.ValueWidth, value)
		},
		"rule": func() string {
			return "   " + strings.Repeat("-", r.config.MetricWidth+r.config.ValueWidth+5)
		},
		"gib": func(v float64) string {
			return fmt.Sprintf("%.1f GiB", v)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"usd": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
	}

	tmpl := compactVolumeTemplate
	if verbose {
		tmpl = verboseVolumeTemplate
	}

	t, err := template.New("volume").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}

const compactVolumeTemplate = `
   Volume Summary:
{{rule}}
{{row "Metric" "Value"}}
{{rule}}
{{row "Volume Size" (gib .SizeGiB)}}
{{row "Snapshot Total Size" (gib .Changes.TotalSnapshotSizeGiB)}}
{{row "Usage %" (pct .Changes.UsagePercent)}}
{{row "Snapshot Count" (printf "%d" .Changes.SnapshotCount)}}
{{row "Daily Change Rate" (printf "%.2f GiB (%.1f%%)" .Changes.AvgDailyChangeGiB .Changes.AvgDailyChangePercent)}}
{{row "Total Changed Data" (gib .Changes.TotalChangeGiB)}}
{{row "Daily Backup Cost" (usd .Costs.Daily)}}
{{row "Monthly Backup Cost" (usd .Costs.Monthly)}}
{{row "Annual Backup Cost" (usd .Costs.Annual)}}
{{rule}}
`

const verboseVolumeTemplate = `
   Volume Summary:
      Volume Size: {{printf "%.2f" .SizeGiB}} GiB
      Total Size of All Snapshots: {{printf "%.2f" .Changes.TotalSnapshotSizeGiB}} GiB
      Percentage of Original Volume: {{printf "%.2f" .Changes.UsagePercent}}%
      Number of Snapshots: {{.Changes.SnapshotCount}}
      Average Daily Change: {{printf "%.2f" .Changes.AvgDailyChangeGiB}} GiB/day ({{printf "%.1f" .Changes.AvgDailyChangePercent}}%)
      Total Data Changed: {{printf "%.2f" .Changes.TotalChangeGiB}} GiB

   Cost Estimates:
      Daily Cost: ${{printf "%.2f" .Costs.Daily}}
      Weekly Cost: ${{printf "%.2f" .Costs.Weekly}}
      Monthly Cost: ${{printf "%.2f" .Costs.Monthly}}
      Annual Cost: ${{printf "%.2f" .Costs.Annual}}
`

// RenderFleet prints the consolidated per-volume table with a totals row,
// followed by the sizing recommendation block when one was computed.
func (r *Reporter) RenderFleet(reports []domain.VolumeReport, summary domain.FleetSummary) error {
	if len(reports) == 0 {
		return nil
	}

	w := r.writer
	rule := "   " + strings.Repeat("=", 148)
	thin := "   " + strings.Repeat("-", 148)

	fmt.Fprintln(w, "\n   Volume Analysis Summary:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "   %-15s %-8s %-10s %-8s %-18s %-18s %-18s %-18s %-8s\n",
		"Volume ID", "Mount", "Size", "Used %",
		"P99 IOPS (R/W)", "Peak IOPS (R/W)",
		"P99 MiBps (R/W)", "Peak MiBps (R/W)", "Queue")
	fmt.Fprintln(w, thin)

	for _, rep := range reports {
		m := rep.Metrics
		fmt.Fprintf(w, "   %-15s %-8s %-10.1f %-8.1f %-18s %-18s %-18s %-18s %-8.2f\n",
			shortVolumeID(rep.VolumeID),
			shortDevice(rep.DeviceName),
			rep.SizeGiB,
			rep.Changes.UsagePercent,
			pair(m.ReadOpsP99, m.WriteOpsP99, 0),
			pair(m.ReadOpsPeak, m.WriteOpsPeak, 0),
			pair(m.ReadThroughputP99, m.WriteThroughputP99, 1),
			pair(m.ReadThroughputPeak, m.WriteThroughputPeak, 1),
			m.QueueLengthP99)
	}

	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "   %-24s %-10.1f %-8s %-18s %-18s %-18s %-18s\n",
		"TOTALS:",
		summary.TotalSizeGiB,
		"",
		pair(summary.TotalReadOpsP99, summary.TotalWriteOpsP99, 0),
		pair(summary.TotalReadOpsPeak, summary.TotalWriteOpsPeak, 0),
		pair(summary.TotalReadThroughputP99, summary.TotalWriteThroughputP99, 1),
		pair(summary.TotalReadThroughputPeak, summary.TotalWriteThroughputPeak, 1))
	fmt.Fprintln(w, rule)

	if summary.Sizing != nil {
		r.renderSizing(*summary.Sizing, summary.TotalSizeGiB)
	}

	return nil
}

func (r *Reporter) renderSizing(sizing domain.SizingRecommendation, totalSizeGiB float64) {
	w := r.writer
	rule := "   " + strings.Repeat("-", 80)

	fmt.Fprintln(w, "\n   FSx for NetApp ONTAP Sizing Recommendations:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "   Total Storage Required (GiB):   %.0f\n", totalSizeGiB)
	fmt.Fprintf(w, "   Recommended SSD Size (GiB):     %.0f  (%.1f%% of total)\n",
		sizing.FastTierSizeGiB, sizing.FastTierPercent)
	fmt.Fprintf(w, "   Sustained IOPS Required:        %.0f\n", sizing.SustainedIOPS)
	fmt.Fprintf(w, "   Peak IOPS Required:             %.0f\n", sizing.PeakIOPS)
	fmt.Fprintf(w, "   Sustained Throughput (MiBps):   %.1f\n", sizing.SustainedThroughputMiBps)
	fmt.Fprintf(w, "   Peak Throughput (MiBps):        %.1f\n", sizing.PeakThroughputMiBps)
	fmt.Fprintln(w, rule)
}

func pair(read, write float64, decimals int) string {
	return fmt.Sprintf("%7.*f/%-7.*f", decimals, read, decimals, write)
}

func shortVolumeID(id string) string {
	if i := strings.LastIndex(id, "-"); i >= 0 {
		return id[i+1:]
	}
	return id
}

func shortDevice(device string) string {
	if len(device) > 3 {
		return device[len(device)-3:]
	}
	return device
}
