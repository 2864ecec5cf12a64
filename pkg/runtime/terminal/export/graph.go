package export

import (
	"fmt"
	"strings"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

const barWidth = 50

// bar renders a filled/empty ASCII bar scaled against max.
func bar(value, max float64, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// RenderVolumeGraph prints size and IOPS comparison bars for one volume.
func (r *Reporter) RenderVolumeGraph(report domain.VolumeReport) {
	w := r.writer

	fmt.Fprintf(w, "\n   Size Comparison for %s\n", report.VolumeID)
	fmt.Fprintln(w, "   "+strings.Repeat("=", barWidth+12))

	maxSize := report.SizeGiB
	if report.Changes.TotalSnapshotSizeGiB > maxSize {
		maxSize = report.Changes.TotalSnapshotSizeGiB
	}

	fmt.Fprintf(w, "   Volume Size    %s %.2f GiB\n",
		bar(report.SizeGiB, maxSize, barWidth), report.SizeGiB)
	fmt.Fprintf(w, "   Snapshot Size  %s %.2f GiB\n",
		bar(report.Changes.TotalSnapshotSizeGiB, maxSize, barWidth),
		report.Changes.TotalSnapshotSizeGiB)

	m := report.Metrics
	maxIOPS := maxOf(m.ReadOpsP99, m.WriteOpsP99, m.ReadOpsPeak, m.WriteOpsPeak)
	if maxIOPS <= 0 {
		return
	}

	fmt.Fprintln(w, "\n   IOPS Breakdown")
	fmt.Fprintln(w, "   "+strings.Repeat("=", barWidth+12))
	fmt.Fprintf(w, "   P99 Read     %s %.1f\n", bar(m.ReadOpsP99, maxIOPS, barWidth), m.ReadOpsP99)
	fmt.Fprintf(w, "   P99 Write    %s %.1f\n", bar(m.WriteOpsP99, maxIOPS, barWidth), m.WriteOpsP99)
	fmt.Fprintf(w, "   Peak Read    %s %.1f\n", bar(m.ReadOpsPeak, maxIOPS, barWidth), m.ReadOpsPeak)
	fmt.Fprintf(w, "   Peak Write   %s %.1f\n", bar(m.WriteOpsPeak, maxIOPS, barWidth), m.WriteOpsPeak)
}

func maxOf(values ...float64) float64 {
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
