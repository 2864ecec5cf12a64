// Package snapshot derives data-change metrics from a volume's snapshot
// history.
package snapshot

import (
	"errors"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

// ErrNoSnapshots is returned when a volume has no snapshot history.
// Callers treat it as "skip this volume", not as a run failure.
var ErrNoSnapshots = errors.New("volume has no snapshots")

// Analyze computes incremental change metrics from a snapshot history.
// The input must already be sorted ascending by StartTime; Analyze does
// not re-sort.
//
// TotalChangeGiB compares only the first and last snapshot, taking the
// larger of the two actual sizes. Intermediate snapshots are ignored.
// Fleet-level consumers depend on this exact figure, so it is the defined
// behavior rather than a shortcut to be corrected.
func Analyze(snapshots []domain.Snapshot, volumeSizeGiB float64) (domain.ChangeStats, error) {
	if len(snapshots) == 0 {
		return domain.ChangeStats{}, ErrNoSnapshots
	}

	first := snapshots[0]
	last := snapshots[len(snapshots)-1]

	totalSnapshotSize := last.ActualSizeGiB

	totalChange := first.ActualSizeGiB
	if len(snapshots) >= 2 && last.ActualSizeGiB > first.ActualSizeGiB {
		totalChange = last.ActualSizeGiB
	}

	// Whole days between the first and last snapshot, floored to 1 so
	// single-snapshot and same-day histories stay divisible.
	totalDays := 1
	if len(snapshots) >= 2 {
		if days := int(last.StartTime.Sub(first.StartTime).Hours() / 24); days > 0 {
			totalDays = days
		}
	}

	avgDailyChange := totalChange / float64(totalDays)

	stats := domain.ChangeStats{
		TotalSnapshotSizeGiB: totalSnapshotSize,
		SnapshotCount:        len(snapshots),
		AvgDailyChangeGiB:    avgDailyChange,
		TotalChangeGiB:       totalChange,
	}
	if volumeSizeGiB > 0 {
		stats.UsagePercent = totalSnapshotSize / volumeSizeGiB * 100
		stats.AvgDailyChangePercent = avgDailyChange / volumeSizeGiB * 100
	}

	return stats, nil
}
