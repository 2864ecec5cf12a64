// Package metrics normalizes raw CloudWatch EBS telemetry into the
// per-volume MetricWindow consumed by the report builder.
package metrics

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

const (
	// LookbackDays is the fixed observation window.
	LookbackDays = 7
	// PeriodSeconds is the fixed sampling period within the window.
	PeriodSeconds = 600
)

// Dimension names one tracked EBS metric.
type Dimension string

const (
	DimReadOps         Dimension = "ReadOps"
	DimWriteOps        Dimension = "WriteOps"
	DimReadThroughput  Dimension = "ReadThroughput"
	DimWriteThroughput Dimension = "WriteThroughput"
	DimQueueLength     Dimension = "QueueLength"
)

// Dimensions lists every tracked dimension.
func Dimensions() []Dimension {
	return []Dimension{
		DimReadOps, DimWriteOps,
		DimReadThroughput, DimWriteThroughput,
		DimQueueLength,
	}
}

// Datapoint is one raw sample as reported by the telemetry backend.
// P999 is meaningful for ops and throughput dimensions only.
type Datapoint struct {
	P99  float64
	P999 float64
}

// RawWindow holds the raw datapoint sets for one volume, keyed by dimension.
type RawWindow map[Dimension][]Datapoint

// Collector retrieves a volume's raw datapoints for the fixed window.
// Implementations live at the telemetry boundary (CloudWatch in production).
type Collector interface {
	Collect(ctx context.Context, volumeID string) (RawWindow, error)
}

// Aggregate reduces a raw window to summary statistics. It is total:
// missing or empty dimensions degrade to zero, never to an error.
//
// Ops counts are converted to ops/s, throughput bytes to MiB/s; queue
// length is a gauge and passes through unchanged.
func Aggregate(raw RawWindow) domain.MetricWindow {
	var w domain.MetricWindow

	w.ReadOpsP99, w.ReadOpsPeak = reduceRate(raw[DimReadOps])
	w.WriteOpsP99, w.WriteOpsPeak = reduceRate(raw[DimWriteOps])

	p99, peak := reduceRate(raw[DimReadThroughput])
	w.ReadThroughputP99, w.ReadThroughputPeak = toMiB(p99), toMiB(peak)

	p99, peak = reduceRate(raw[DimWriteThroughput])
	w.WriteThroughputP99, w.WriteThroughputPeak = toMiB(p99), toMiB(peak)

	w.QueueLengthP99, _ = reduce(raw[DimQueueLength])

	return w
}

// Gather collects and aggregates a volume's window. A collector failure is
// absorbed here: the volume gets an all-zero degraded window plus a warning,
// and the run continues.
func Gather(ctx context.Context, collector Collector, volumeID string) domain.MetricWindow {
	raw, err := collector.Collect(ctx, volumeID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("volume_id", volumeID).
			Msg("could not fetch volume metrics, reporting zeroes")
		return domain.MetricWindow{Degraded: true}
	}
	return Aggregate(raw)
}

// reduce takes the max of each statistic across the datapoints.
func reduce(points []Datapoint) (p99, peak float64) {
	for _, p := range points {
		if p.P99 > p99 {
			p99 = p.P99
		}
		if p.P999 > peak {
			peak = p.P999
		}
	}
	return p99, peak
}

// reduceRate converts per-period maxima to per-second rates.
func reduceRate(points []Datapoint) (p99, peak float64) {
	p99, peak = reduce(points)
	return p99 / PeriodSeconds, peak / PeriodSeconds
}

func toMiB(bytes float64) float64 {
	return bytes / (1 << 20)
}
