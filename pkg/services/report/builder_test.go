package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/ebsight/pkg/models/domain"
	"github.com/de-tools/ebsight/pkg/services/pricing"
)

func TestBuild_ComposesUpstreamOutputs(t *testing.T) {
	builder := NewBuilder(pricing.DefaultModel())

	vol := domain.VolumeDescriptor{ID: "vol-0abc", DeviceName: "/dev/sda1", SizeGiB: 100}
	stats := domain.ChangeStats{
		TotalSnapshotSizeGiB:  35,
		SnapshotCount:         2,
		UsagePercent:          35,
		AvgDailyChangeGiB:     7,
		AvgDailyChangePercent: 7,
		TotalChangeGiB:        35,
	}
	window := domain.MetricWindow{ReadOpsP99: 120, QueueLengthP99: 1.5}

	rep, err := builder.Build(vol, stats, window)
	require.NoError(t, err)

	assert.Equal(t, "vol-0abc", rep.VolumeID)
	assert.Equal(t, "/dev/sda1", rep.DeviceName)
	assert.InDelta(t, 100.0, rep.SizeGiB, 1e-9)
	assert.Equal(t, stats, rep.Changes)
	assert.Equal(t, window, rep.Metrics)

	// costs are projected from the snapshot footprint
	assert.InDelta(t, 1.75, rep.Costs.Monthly, 1e-9)
	assert.InDelta(t, 0.0583, rep.Costs.Daily, 1e-4)
	assert.InDelta(t, 21.0, rep.Costs.Annual, 1e-9)
}

func TestBuild_InvalidSnapshotSize(t *testing.T) {
	builder := NewBuilder(nil)

	_, err := builder.Build(
		domain.VolumeDescriptor{ID: "vol-0abc"},
		domain.ChangeStats{TotalSnapshotSizeGiB: -5},
		domain.MetricWindow{},
	)

	assert.ErrorIs(t, err, pricing.ErrInvalidSize)
}
