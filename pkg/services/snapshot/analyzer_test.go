package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

func snap(id string, start time.Time, actualGiB float64) domain.Snapshot {
	return domain.Snapshot{
		ID:            id,
		StartTime:     start,
		VolumeSizeGiB: 100,
		ActualSizeGiB: actualGiB,
	}
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	_, err := Analyze(nil, 100)
	assert.ErrorIs(t, err, ErrNoSnapshots)
}

func TestAnalyze_SingleSnapshot(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	stats, err := Analyze([]domain.Snapshot{snap("snap-1", start, 20)}, 100)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.SnapshotCount)
	assert.InDelta(t, 20.0, stats.TotalSnapshotSizeGiB, 1e-9)
	assert.InDelta(t, 20.0, stats.TotalChangeGiB, 1e-9)
	// totalDays floors to 1 for a single snapshot
	assert.InDelta(t, 20.0, stats.AvgDailyChangeGiB, 1e-9)
	assert.InDelta(t, 20.0, stats.UsagePercent, 1e-9)
}

func TestAnalyze_GrowingHistory(t *testing.T) {
	day0 := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
	day5 := day0.AddDate(0, 0, 5)

	stats, err := Analyze([]domain.Snapshot{
		snap("snap-first", day0, 20),
		snap("snap-last", day5, 35),
	}, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.SnapshotCount)
	assert.InDelta(t, 35.0, stats.TotalSnapshotSizeGiB, 1e-9)
	assert.InDelta(t, 35.0, stats.TotalChangeGiB, 1e-9)
	assert.InDelta(t, 7.0, stats.AvgDailyChangeGiB, 1e-9)
	assert.InDelta(t, 7.0, stats.AvgDailyChangePercent, 1e-9)
	assert.InDelta(t, 35.0, stats.UsagePercent, 1e-9)
}

func TestAnalyze_ShrinkingHistoryKeepsFirstSize(t *testing.T) {
	day0 := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

	stats, err := Analyze([]domain.Snapshot{
		snap("snap-first", day0, 40),
		snap("snap-mid", day0.AddDate(0, 0, 2), 90), // intermediates are ignored
		snap("snap-last", day0.AddDate(0, 0, 4), 30),
	}, 100)
	require.NoError(t, err)

	assert.InDelta(t, 40.0, stats.TotalChangeGiB, 1e-9)
	assert.InDelta(t, 30.0, stats.TotalSnapshotSizeGiB, 1e-9)
	assert.InDelta(t, 10.0, stats.AvgDailyChangeGiB, 1e-9)
}

func TestAnalyze_SameDayPair(t *testing.T) {
	start := time.Date(2025, 6, 1, 1, 0, 0, 0, time.UTC)

	stats, err := Analyze([]domain.Snapshot{
		snap("snap-am", start, 10),
		snap("snap-pm", start.Add(11*time.Hour), 14),
	}, 100)
	require.NoError(t, err)

	// same-day pair still divides by one day, never zero
	assert.InDelta(t, 14.0, stats.AvgDailyChangeGiB, 1e-9)
}

func TestAnalyze_ZeroSizeVolume(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	stats, err := Analyze([]domain.Snapshot{snap("snap-1", start, 20)}, 0)
	require.NoError(t, err)

	assert.Zero(t, stats.UsagePercent)
	assert.Zero(t, stats.AvgDailyChangePercent)
	assert.InDelta(t, 20.0, stats.TotalChangeGiB, 1e-9)
}

func TestAnalyze_PartialDaysTruncate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	stats, err := Analyze([]domain.Snapshot{
		snap("snap-first", start, 10),
		snap("snap-last", start.Add(2*24*time.Hour+13*time.Hour), 30),
	}, 100)
	require.NoError(t, err)

	// 2 days 13 hours counts as 2 whole days
	assert.InDelta(t, 15.0, stats.AvgDailyChangeGiB, 1e-9)
}
