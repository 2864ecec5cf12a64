package api

// Volume is the JSON shape for one attached volume.
type Volume struct {
	ID         string  `json:"id"`
	DeviceName string  `json:"device_name"`
	SizeGiB    float64 `json:"size_gib"`
}

// VolumeReport is the JSON shape for a per-volume analysis record.
type VolumeReport struct {
	VolumeID   string  `json:"volume_id"`
	DeviceName string  `json:"device_name"`
	SizeGiB    float64 `json:"size_gib"`

	TotalSnapshotSizeGiB  float64 `json:"total_snapshot_size_gib"`
	SnapshotCount         int     `json:"snapshot_count"`
	UsagePercent          float64 `json:"usage_percent"`
	AvgDailyChangeGiB     float64 `json:"avg_daily_change_gib"`
	AvgDailyChangePercent float64 `json:"avg_daily_change_percent"`
	TotalChangeGiB        float64 `json:"total_change_gib"`

	DailyCost   float64 `json:"daily_cost"`
	WeeklyCost  float64 `json:"weekly_cost"`
	MonthlyCost float64 `json:"monthly_cost"`
	AnnualCost  float64 `json:"annual_cost"`

	ReadOpsP99          float64 `json:"read_ops_p99"`
	WriteOpsP99         float64 `json:"write_ops_p99"`
	ReadOpsPeak         float64 `json:"read_ops_peak"`
	WriteOpsPeak        float64 `json:"write_ops_peak"`
	ReadThroughputP99   float64 `json:"read_throughput_p99"`
	WriteThroughputP99  float64 `json:"write_throughput_p99"`
	ReadThroughputPeak  float64 `json:"read_throughput_peak"`
	WriteThroughputPeak float64 `json:"write_throughput_peak"`
	QueueLengthP99      float64 `json:"queue_length_p99"`
	MetricsDegraded     bool    `json:"metrics_degraded"`
}

// FleetSummary is the JSON shape for the fleet-level rollup.
type FleetSummary struct {
	VolumeCount  int     `json:"volume_count"`
	TotalSizeGiB float64 `json:"total_size_gib"`

	TotalDailyChangeGiB float64 `json:"total_daily_change_gib"`

	TotalReadOpsP99          float64 `json:"total_read_ops_p99"`
	TotalWriteOpsP99         float64 `json:"total_write_ops_p99"`
	TotalReadOpsPeak         float64 `json:"total_read_ops_peak"`
	TotalWriteOpsPeak        float64 `json:"total_write_ops_peak"`
	TotalReadThroughputP99   float64 `json:"total_read_throughput_p99"`
	TotalWriteThroughputP99  float64 `json:"total_write_throughput_p99"`
	TotalReadThroughputPeak  float64 `json:"total_read_throughput_peak"`
	TotalWriteThroughputPeak float64 `json:"total_write_throughput_peak"`

	Sizing *SizingRecommendation `json:"sizing,omitempty"`
}

// SizingRecommendation is the JSON shape for fast-tier capacity planning.
type SizingRecommendation struct {
	FastTierSizeGiB          float64 `json:"fast_tier_size_gib"`
	FastTierPercent          float64 `json:"fast_tier_percent"`
	SustainedIOPS            float64 `json:"sustained_iops"`
	PeakIOPS                 float64 `json:"peak_iops"`
	SustainedThroughputMiBps float64 `json:"sustained_throughput_mibps"`
	PeakThroughputMiBps      float64 `json:"peak_throughput_mibps"`
}
