package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/de-tools/ebsight/pkg/services/metrics"
)

const ebsNamespace = "AWS/EBS"

// metricNames maps each tracked dimension to its CloudWatch metric.
var metricNames = map[metrics.Dimension]string{
	metrics.DimReadOps:         "VolumeReadOps",
	metrics.DimWriteOps:        "VolumeWriteOps",
	metrics.DimReadThroughput:  "VolumeReadBytes",
	metrics.DimWriteThroughput: "VolumeWriteBytes",
	metrics.DimQueueLength:     "VolumeQueueLength",
}

// Collector fetches raw EBS datapoints from CloudWatch for the fixed
// 7-day/600s window. Failures are returned to the aggregator boundary,
// which substitutes a degraded window.
type Collector struct {
	client *cloudwatch.Client
	now    func() time.Time
}

func NewCollector(cfg awssdk.Config) *Collector {
	return &Collector{
		client: cloudwatch.NewFromConfig(cfg),
		now:    time.Now,
	}
}

func (c *Collector) Collect(ctx context.Context, volumeID string) (metrics.RawWindow, error) {
	end := c.now().UTC()
	start := end.Add(-metrics.LookbackDays * 24 * time.Hour)

	raw := make(metrics.RawWindow, len(metricNames))
	for _, dim := range metrics.Dimensions() {
		stats := []string{"p99", "p99.9"}
		if dim == metrics.DimQueueLength {
			stats = []string{"p99"}
		}

		resp, err := c.client.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
			Namespace:  aws.String(ebsNamespace),
			MetricName: aws.String(metricNames[dim]),
			Dimensions: []types.Dimension{
				{
					Name:  aws.String("VolumeId"),
					Value: aws.String(volumeID),
				},
			},
			StartTime:          aws.Time(start),
			EndTime:            aws.Time(end),
			Period:             aws.Int32(metrics.PeriodSeconds),
			ExtendedStatistics: stats,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s for volume %s: %w", metricNames[dim], volumeID, err)
		}

		points := make([]metrics.Datapoint, 0, len(resp.Datapoints))
		for _, dp := range resp.Datapoints {
			points = append(points, metrics.Datapoint{
				P99:  dp.ExtendedStatistics["p99"],
				P999: dp.ExtendedStatistics["p99.9"],
			})
		}
		raw[dim] = points
	}

	return raw, nil
}
