package domain

// MetricWindow holds normalized EBS performance statistics over the
// 7-day observation window. Ops values are operations per second,
// throughput values MiB/s, queue length a dimensionless gauge.
type MetricWindow struct {
	ReadOpsP99  float64
	WriteOpsP99 float64

	// Peak is the p99.9 statistic, a proxy for near-maximum load.
	ReadOpsPeak  float64
	WriteOpsPeak float64

	ReadThroughputP99  float64
	WriteThroughputP99 float64

	ReadThroughputPeak  float64
	WriteThroughputPeak float64

	QueueLengthP99 float64

	// Degraded is set when the telemetry call failed and the window
	// was substituted with zeroes.
	Degraded bool
}
