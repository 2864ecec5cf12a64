package domain

// CostEstimate projects a snapshot footprint across four billing horizons
// at a fixed per-GiB-month rate. Figures are estimates, not invoice data.
type CostEstimate struct {
	Daily   float64
	Weekly  float64
	Monthly float64
	Annual  float64
}

// ChangeStats summarizes how a volume's snapshot history evolved.
type ChangeStats struct {
	TotalSnapshotSizeGiB  float64 // actual size of the most recent snapshot
	SnapshotCount         int
	UsagePercent          float64 // snapshot footprint vs. provisioned size
	AvgDailyChangeGiB     float64
	AvgDailyChangePercent float64
	TotalChangeGiB        float64
}

// VolumeReport is the per-volume analysis record, built once per run.
type VolumeReport struct {
	VolumeID   string
	DeviceName string
	SizeGiB    float64

	Changes ChangeStats
	Costs   CostEstimate
	Metrics MetricWindow
}

// FleetSummary folds a run's volume reports into fleet-level totals.
type FleetSummary struct {
	VolumeCount  int
	TotalSizeGiB float64

	TotalDailyChangeGiB float64

	TotalReadOpsP99  float64
	TotalWriteOpsP99 float64

	TotalReadOpsPeak  float64
	TotalWriteOpsPeak float64

	TotalReadThroughputP99  float64
	TotalWriteThroughputP99 float64

	TotalReadThroughputPeak  float64
	TotalWriteThroughputPeak float64

	// Sizing is populated only when a sizing recommendation was requested.
	Sizing *SizingRecommendation
}

// SizingRecommendation estimates what a faster storage tier would need to
// absorb the fleet's working set. The fast-tier size equates the summed
// average daily change with the active working-set size.
type SizingRecommendation struct {
	FastTierSizeGiB          float64
	FastTierPercent          float64 // of the fleet's total provisioned size
	SustainedIOPS            float64
	PeakIOPS                 float64
	SustainedThroughputMiBps float64
	PeakThroughputMiBps      float64
}
