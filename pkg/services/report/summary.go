package report

import "github.com/de-tools/ebsight/pkg/models/domain"

// Summarize folds per-volume reports into fleet totals. When withSizing is
// set it additionally derives fast-tier capacity-planning figures, equating
// the fleet's summed average daily change with its active working set.
func Summarize(reports []domain.VolumeReport, withSizing bool) domain.FleetSummary {
	summary := domain.FleetSummary{VolumeCount: len(reports)}

	for _, r := range reports {
		summary.TotalSizeGiB += r.SizeGiB
		summary.TotalDailyChangeGiB += r.Changes.AvgDailyChangeGiB

		summary.TotalReadOpsP99 += r.Metrics.ReadOpsP99
		summary.TotalWriteOpsP99 += r.Metrics.WriteOpsP99
		summary.TotalReadOpsPeak += r.Metrics.ReadOpsPeak
		summary.TotalWriteOpsPeak += r.Metrics.WriteOpsPeak

		summary.TotalReadThroughputP99 += r.Metrics.ReadThroughputP99
		summary.TotalWriteThroughputP99 += r.Metrics.WriteThroughputP99
		summary.TotalReadThroughputPeak += r.Metrics.ReadThroughputPeak
		summary.TotalWriteThroughputPeak += r.Metrics.WriteThroughputPeak
	}

	if withSizing {
		sizing := &domain.SizingRecommendation{
			FastTierSizeGiB:          summary.TotalDailyChangeGiB,
			SustainedIOPS:            summary.TotalReadOpsP99 + summary.TotalWriteOpsP99,
			PeakIOPS:                 summary.TotalReadOpsPeak + summary.TotalWriteOpsPeak,
			SustainedThroughputMiBps: summary.TotalReadThroughputP99 + summary.TotalWriteThroughputP99,
			PeakThroughputMiBps:      summary.TotalReadThroughputPeak + summary.TotalWriteThroughputPeak,
		}
		if summary.TotalSizeGiB > 0 {
			sizing.FastTierPercent = summary.TotalDailyChangeGiB / summary.TotalSizeGiB * 100
		}
		summary.Sizing = sizing
	}

	return summary
}
