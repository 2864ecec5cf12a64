package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/ebsight/pkg/models/domain"
	"github.com/de-tools/ebsight/pkg/services/metrics"
	"github.com/de-tools/ebsight/pkg/services/snapshot"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) DescribeInstance(ctx context.Context, instanceID string) (domain.InstanceInfo, error) {
	args := m.Called(ctx, instanceID)
	return args.Get(0).(domain.InstanceInfo), args.Error(1)
}

func (m *mockExplorer) ListSnapshots(ctx context.Context, volumeID string) ([]domain.Snapshot, error) {
	args := m.Called(ctx, volumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Snapshot), args.Error(1)
}

type mockCollector struct {
	mock.Mock
}

func (m *mockCollector) Collect(ctx context.Context, volumeID string) (metrics.RawWindow, error) {
	args := m.Called(ctx, volumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(metrics.RawWindow), args.Error(1)
}

func TestAnalyzeVolume_EndToEnd(t *testing.T) {
	ctx := context.Background()
	day0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	vol := domain.VolumeDescriptor{ID: "vol-1", DeviceName: "/dev/xvda", SizeGiB: 100}

	explorer := new(mockExplorer)
	explorer.On("ListSnapshots", ctx, "vol-1").Return([]domain.Snapshot{
		{ID: "snap-a", StartTime: day0, ActualSizeGiB: 20},
		{ID: "snap-b", StartTime: day0.AddDate(0, 0, 5), ActualSizeGiB: 35},
	}, nil)

	collector := new(mockCollector)
	collector.On("Collect", ctx, "vol-1").Return(metrics.RawWindow{
		metrics.DimQueueLength: {{P99: 2.0}},
	}, nil)

	analyzer := NewAnalyzer(explorer, collector, nil)
	rep, err := analyzer.AnalyzeVolume(ctx, vol)
	require.NoError(t, err)

	assert.Equal(t, "vol-1", rep.VolumeID)
	assert.InDelta(t, 35.0, rep.Changes.TotalChangeGiB, 1e-9)
	assert.InDelta(t, 7.0, rep.Changes.AvgDailyChangeGiB, 1e-9)
	assert.InDelta(t, 35.0, rep.Changes.UsagePercent, 1e-9)
	assert.InDelta(t, 1.75, rep.Costs.Monthly, 1e-9)
	assert.InDelta(t, 2.0, rep.Metrics.QueueLengthP99, 1e-9)
}

func TestAnalyzeVolume_NoSnapshots(t *testing.T) {
	ctx := context.Background()

	explorer := new(mockExplorer)
	explorer.On("ListSnapshots", ctx, "vol-empty").Return([]domain.Snapshot{}, nil)

	analyzer := NewAnalyzer(explorer, new(mockCollector), nil)
	_, err := analyzer.AnalyzeVolume(ctx, domain.VolumeDescriptor{ID: "vol-empty", SizeGiB: 8})

	assert.ErrorIs(t, err, snapshot.ErrNoSnapshots)
}

func TestAnalyzeVolume_MetricsFailureDegrades(t *testing.T) {
	ctx := context.Background()
	day0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	explorer := new(mockExplorer)
	explorer.On("ListSnapshots", ctx, "vol-1").Return([]domain.Snapshot{
		{ID: "snap-a", StartTime: day0, ActualSizeGiB: 10},
	}, nil)

	collector := new(mockCollector)
	collector.On("Collect", ctx, "vol-1").Return(nil, errors.New("access denied"))

	analyzer := NewAnalyzer(explorer, collector, nil)
	rep, err := analyzer.AnalyzeVolume(ctx, domain.VolumeDescriptor{ID: "vol-1", SizeGiB: 50})
	require.NoError(t, err)

	assert.True(t, rep.Metrics.Degraded)
	assert.Zero(t, rep.Metrics.ReadOpsP99)
	assert.InDelta(t, 10.0, rep.Changes.TotalChangeGiB, 1e-9)
}

func TestAnalyzeInstance_SkipsVolumesWithoutSnapshots(t *testing.T) {
	ctx := context.Background()
	day0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	instance := domain.InstanceInfo{
		ID:   "i-0abc",
		Name: "db-primary",
		Volumes: []domain.VolumeDescriptor{
			{ID: "vol-1", DeviceName: "/dev/xvda", SizeGiB: 100},
			{ID: "vol-2", DeviceName: "/dev/xvdb", SizeGiB: 200},
		},
	}

	explorer := new(mockExplorer)
	explorer.On("DescribeInstance", ctx, "i-0abc").Return(instance, nil)
	explorer.On("ListSnapshots", ctx, "vol-1").Return([]domain.Snapshot{}, nil)
	explorer.On("ListSnapshots", ctx, "vol-2").Return([]domain.Snapshot{
		{ID: "snap-b", StartTime: day0, ActualSizeGiB: 50},
	}, nil)

	collector := new(mockCollector)
	collector.On("Collect", ctx, "vol-2").Return(metrics.RawWindow{}, nil)

	analyzer := NewAnalyzer(explorer, collector, nil)
	info, reports, err := analyzer.AnalyzeInstance(ctx, "i-0abc")
	require.NoError(t, err)

	assert.Equal(t, "db-primary", info.Name)
	require.Len(t, reports, 1)
	assert.Equal(t, "vol-2", reports[0].VolumeID)
	explorer.AssertExpectations(t)
}

func TestAnalyzeInstance_SkipsVolumesWithInvalidSnapshotSize(t *testing.T) {
	ctx := context.Background()
	day0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	instance := domain.InstanceInfo{
		ID: "i-0abc",
		Volumes: []domain.VolumeDescriptor{
			{ID: "vol-bad", DeviceName: "/dev/xvda", SizeGiB: 100},
			{ID: "vol-good", DeviceName: "/dev/xvdb", SizeGiB: 200},
		},
	}

	explorer := new(mockExplorer)
	explorer.On("DescribeInstance", ctx, "i-0abc").Return(instance, nil)
	explorer.On("ListSnapshots", ctx, "vol-bad").Return([]domain.Snapshot{
		{ID: "snap-a", StartTime: day0, ActualSizeGiB: -5},
	}, nil)
	explorer.On("ListSnapshots", ctx, "vol-good").Return([]domain.Snapshot{
		{ID: "snap-b", StartTime: day0, ActualSizeGiB: 50},
	}, nil)

	collector := new(mockCollector)
	collector.On("Collect", ctx, mock.Anything).Return(metrics.RawWindow{}, nil)

	analyzer := NewAnalyzer(explorer, collector, nil)
	_, reports, err := analyzer.AnalyzeInstance(ctx, "i-0abc")
	require.NoError(t, err)

	// the malformed volume loses its report, not the run
	require.Len(t, reports, 1)
	assert.Equal(t, "vol-good", reports[0].VolumeID)
	explorer.AssertExpectations(t)
}

func TestAnalyzeInstance_DescribeFailure(t *testing.T) {
	ctx := context.Background()

	explorer := new(mockExplorer)
	explorer.On("DescribeInstance", ctx, "i-missing").
		Return(domain.InstanceInfo{}, errors.New("InvalidInstanceID.NotFound"))

	analyzer := NewAnalyzer(explorer, new(mockCollector), nil)
	_, _, err := analyzer.AnalyzeInstance(ctx, "i-missing")

	assert.ErrorContains(t, err, "i-missing")
}
