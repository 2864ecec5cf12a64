// Package report composes analysis outputs into per-volume reports and
// fleet-level summaries.
package report

import (
	"fmt"

	"github.com/de-tools/ebsight/pkg/models/domain"
	"github.com/de-tools/ebsight/pkg/services/pricing"
)

// Builder assembles VolumeReports from upstream analysis outputs.
type Builder struct {
	model *pricing.Model
}

func NewBuilder(model *pricing.Model) *Builder {
	if model == nil {
		model = pricing.DefaultModel()
	}
	return &Builder{model: model}
}

// Build merges change stats and a metric window into one report record.
// Costs are projected from the snapshot footprint, not the volume size.
func (b *Builder) Build(
	vol domain.VolumeDescriptor,
	stats domain.ChangeStats,
	window domain.MetricWindow,
) (domain.VolumeReport, error) {
	costs, err := b.model.Estimate(stats.TotalSnapshotSizeGiB)
	if err != nil {
		return domain.VolumeReport{}, fmt.Errorf("estimating snapshot costs for %s: %w", vol.ID, err)
	}

	return domain.VolumeReport{
		VolumeID:   vol.ID,
		DeviceName: vol.DeviceName,
		SizeGiB:    vol.SizeGiB,
		Changes:    stats,
		Costs:      costs,
		Metrics:    window,
	}, nil
}
