package volume

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/ebsight/pkg/models/api"
	"github.com/de-tools/ebsight/pkg/models/domain"
	"github.com/de-tools/ebsight/pkg/services/analysis"
	"github.com/de-tools/ebsight/pkg/services/report"
)

// Service is the slice of the analysis pipeline the handlers need.
// *analysis.Analyzer satisfies it.
type Service interface {
	DescribeInstance(ctx context.Context, instanceID string) (domain.InstanceInfo, error)
	AnalyzeVolume(ctx context.Context, vol domain.VolumeDescriptor) (domain.VolumeReport, error)
	AnalyzeInstance(ctx context.Context, instanceID string) (domain.InstanceInfo, []domain.VolumeReport, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListVolumes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	instanceID := chi.URLParam(r, "instance")

	instance, err := h.service.DescribeInstance(ctx, instanceID)
	if err != nil {
		logger.Error().Err(err).Str("instance_id", instanceID).Msg("failed to describe instance")
		http.Error(w, "instance not found", http.StatusNotFound)
		return
	}

	response := make([]api.Volume, 0, len(instance.Volumes))
	for _, vol := range instance.Volumes {
		response = append(response, api.Volume{
			ID:         vol.ID,
			DeviceName: vol.DeviceName,
			SizeGiB:    vol.SizeGiB,
		})
	}

	writeJSON(ctx, w, response)
}

func (h *Handler) GetVolumeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	instanceID := chi.URLParam(r, "instance")
	volumeID := chi.URLParam(r, "volume")

	instance, err := h.service.DescribeInstance(ctx, instanceID)
	if err != nil {
		logger.Error().Err(err).Str("instance_id", instanceID).Msg("failed to describe instance")
		http.Error(w, "instance not found", http.StatusNotFound)
		return
	}

	var descriptor *domain.VolumeDescriptor
	for _, vol := range instance.Volumes {
		if vol.ID == volumeID {
			descriptor = &vol
			break
		}
	}
	if descriptor == nil {
		http.Error(w, "volume not attached to instance", http.StatusNotFound)
		return
	}

	rep, err := h.service.AnalyzeVolume(ctx, *descriptor)
	if errors.Is(err, analysis.ErrNoSnapshots) {
		http.Error(w, "volume has no snapshots", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("volume_id", volumeID).Msg("volume analysis failed")
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, toAPIReport(rep))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	instanceID := chi.URLParam(r, "instance")
	withSizing, _ := strconv.ParseBool(r.URL.Query().Get("sizing"))

	_, reports, err := h.service.AnalyzeInstance(ctx, instanceID)
	if err != nil {
		logger.Error().Err(err).Str("instance_id", instanceID).Msg("instance analysis failed")
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, toAPISummary(report.Summarize(reports, withSizing)))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func toAPIReport(rep domain.VolumeReport) api.VolumeReport {
	return api.VolumeReport{
		VolumeID:   rep.VolumeID,
		DeviceName: rep.DeviceName,
		SizeGiB:    rep.SizeGiB,

		TotalSnapshotSizeGiB:  rep.Changes.TotalSnapshotSizeGiB,
		SnapshotCount:         rep.Changes.SnapshotCount,
		UsagePercent:          rep.Changes.UsagePercent,
		AvgDailyChangeGiB:     rep.Changes.AvgDailyChangeGiB,
		AvgDailyChangePercent: rep.Changes.AvgDailyChangePercent,
		TotalChangeGiB:        rep.Changes.TotalChangeGiB,

		DailyCost:   rep.Costs.Daily,
		WeeklyCost:  rep.Costs.Weekly,
		MonthlyCost: rep.Costs.Monthly,
		AnnualCost:  rep.Costs.Annual,

		ReadOpsP99:          rep.Metrics.ReadOpsP99,
		WriteOpsP99:         rep.Metrics.WriteOpsP99,
		ReadOpsPeak:         rep.Metrics.ReadOpsPeak,
		WriteOpsPeak:        rep.Metrics.WriteOpsPeak,
		ReadThroughputP99:   rep.Metrics.ReadThroughputP99,
		WriteThroughputP99:  rep.Metrics.WriteThroughputP99,
		ReadThroughputPeak:  rep.Metrics.ReadThroughputPeak,
		WriteThroughputPeak: rep.Metrics.WriteThroughputPeak,
		QueueLengthP99:      rep.Metrics.QueueLengthP99,
		MetricsDegraded:     rep.Metrics.Degraded,
	}
}

func toAPISummary(summary domain.FleetSummary) api.FleetSummary {
	out := api.FleetSummary{
		VolumeCount:  summary.VolumeCount,
		TotalSizeGiB: summary.TotalSizeGiB,

		TotalDailyChangeGiB: summary.TotalDailyChangeGiB,

		TotalReadOpsP99:          summary.TotalReadOpsP99,
		TotalWriteOpsP99:         summary.TotalWriteOpsP99,
		TotalReadOpsPeak:         summary.TotalReadOpsPeak,
		TotalWriteOpsPeak:        summary.TotalWriteOpsPeak,
		TotalReadThroughputP99:   summary.TotalReadThroughputP99,
		TotalWriteThroughputP99:  summary.TotalWriteThroughputP99,
		TotalReadThroughputPeak:  summary.TotalReadThroughputPeak,
		TotalWriteThroughputPeak: summary.TotalWriteThroughputPeak,
	}
	if summary.Sizing != nil {
		out.Sizing = &api.SizingRecommendation{
			FastTierSizeGiB:          summary.Sizing.FastTierSizeGiB,
			FastTierPercent:          summary.Sizing.FastTierPercent,
			SustainedIOPS:            summary.Sizing.SustainedIOPS,
			PeakIOPS:                 summary.Sizing.PeakIOPS,
			SustainedThroughputMiBps: summary.Sizing.SustainedThroughputMiBps,
			PeakThroughputMiBps:      summary.Sizing.PeakThroughputMiBps,
		}
	}
	return out
}
