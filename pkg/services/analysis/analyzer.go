// Package analysis orchestrates the per-volume pipeline: snapshot history →
// change analysis → metric window → report record.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/ebsight/pkg/models/domain"
	"github.com/de-tools/ebsight/pkg/services/metrics"
	"github.com/de-tools/ebsight/pkg/services/pricing"
	"github.com/de-tools/ebsight/pkg/services/report"
	"github.com/de-tools/ebsight/pkg/services/snapshot"
)

// Explorer resolves instances, volumes, and snapshot histories. The EC2
// implementation lives in pkg/services/aws; tests substitute mocks.
type Explorer interface {
	DescribeInstance(ctx context.Context, instanceID string) (domain.InstanceInfo, error)
	// ListSnapshots returns the volume's history sorted ascending by
	// StartTime. Sorting is the explorer's responsibility.
	ListSnapshots(ctx context.Context, volumeID string) ([]domain.Snapshot, error)
}

// ErrNoSnapshots is re-exported so callers can skip volumes without
// importing the snapshot package.
var ErrNoSnapshots = snapshot.ErrNoSnapshots

// Analyzer runs the analysis pipeline for one instance's volumes.
// Volumes are processed sequentially, each to completion, and every
// report is built locally before being appended to the result.
type Analyzer struct {
	explorer  Explorer
	collector metrics.Collector
	builder   *report.Builder
}

func NewAnalyzer(explorer Explorer, collector metrics.Collector, builder *report.Builder) *Analyzer {
	if builder == nil {
		builder = report.NewBuilder(nil)
	}
	return &Analyzer{explorer: explorer, collector: collector, builder: builder}
}

// DescribeInstance exposes instance resolution to presentation layers.
func (a *Analyzer) DescribeInstance(ctx context.Context, instanceID string) (domain.InstanceInfo, error) {
	return a.explorer.DescribeInstance(ctx, instanceID)
}

// AnalyzeVolume runs the pipeline for a single volume. It returns
// ErrNoSnapshots when the volume has no history; callers treat that as a
// normal skip, not a failure.
func (a *Analyzer) AnalyzeVolume(ctx context.Context, vol domain.VolumeDescriptor) (domain.VolumeReport, error) {
	snapshots, err := a.explorer.ListSnapshots(ctx, vol.ID)
	if err != nil {
		return domain.VolumeReport{}, fmt.Errorf("listing snapshots for %s: %w", vol.ID, err)
	}

	stats, err := snapshot.Analyze(snapshots, vol.SizeGiB)
	if err != nil {
		return domain.VolumeReport{}, err
	}

	window := metrics.Gather(ctx, a.collector, vol.ID)

	return a.builder.Build(vol, stats, window)
}

// AnalyzeInstance resolves the instance and analyzes each attached volume in
// order. Volumes without snapshots or with a snapshot size the cost model
// rejects are skipped; only external failures abort the run.
func (a *Analyzer) AnalyzeInstance(
	ctx context.Context,
	instanceID string,
) (domain.InstanceInfo, []domain.VolumeReport, error) {
	logger := zerolog.Ctx(ctx)

	instance, err := a.explorer.DescribeInstance(ctx, instanceID)
	if err != nil {
		return domain.InstanceInfo{}, nil, fmt.Errorf("describing instance %s: %w", instanceID, err)
	}

	var reports []domain.VolumeReport
	for _, vol := range instance.Volumes {
		logger.Info().
			Str("volume_id", vol.ID).
			Str("device", vol.DeviceName).
			Msg("analyzing volume")

		rep, err := a.AnalyzeVolume(ctx, vol)
		if errors.Is(err, snapshot.ErrNoSnapshots) {
			logger.Info().Str("volume_id", vol.ID).Msg("no snapshots found, skipping volume")
			continue
		}
		if errors.Is(err, pricing.ErrInvalidSize) {
			logger.Warn().
				Err(err).
				Str("volume_id", vol.ID).
				Msg("snapshot size rejected by cost model, skipping volume")
			continue
		}
		if err != nil {
			return instance, nil, err
		}

		reports = append(reports, rep)
	}

	return instance, reports, nil
}
