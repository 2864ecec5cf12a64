package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

// Explorer resolves instances, attached volumes, and snapshot histories
// through the EC2 API.
type Explorer struct {
	client *ec2.Client
}

func NewExplorer(cfg awssdk.Config) *Explorer {
	return &Explorer{
		client: ec2.NewFromConfig(cfg),
	}
}

func (e *Explorer) DescribeInstance(ctx context.Context, instanceID string) (domain.InstanceInfo, error) {
	resp, err := e.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return domain.InstanceInfo{}, fmt.Errorf("failed to describe instance %s: %w", instanceID, err)
	}
	if len(resp.Reservations) == 0 || len(resp.Reservations[0].Instances) == 0 {
		return domain.InstanceInfo{}, fmt.Errorf("instance %s not found", instanceID)
	}

	instance := resp.Reservations[0].Instances[0]

	info := domain.InstanceInfo{ID: instanceID}
	for _, tag := range instance.Tags {
		if aws.ToString(tag.Key) == "Name" {
			info.Name = aws.ToString(tag.Value)
			break
		}
	}

	volumeIDs := make([]string, 0, len(instance.BlockDeviceMappings))
	devices := make(map[string]string, len(instance.BlockDeviceMappings))
	for _, mapping := range instance.BlockDeviceMappings {
		if mapping.Ebs == nil {
			continue
		}
		id := aws.ToString(mapping.Ebs.VolumeId)
		volumeIDs = append(volumeIDs, id)
		devices[id] = aws.ToString(mapping.DeviceName)
	}
	if len(volumeIDs) == 0 {
		return info, nil
	}

	sizes, err := e.volumeSizes(ctx, volumeIDs)
	if err != nil {
		return domain.InstanceInfo{}, err
	}

	for _, id := range volumeIDs {
		info.Volumes = append(info.Volumes, domain.VolumeDescriptor{
			ID:         id,
			DeviceName: devices[id],
			SizeGiB:    sizes[id],
		})
	}

	return info, nil
}

func (e *Explorer) volumeSizes(ctx context.Context, volumeIDs []string) (map[string]float64, error) {
	resp, err := e.client.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		VolumeIds: volumeIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe volumes: %w", err)
	}

	sizes := make(map[string]float64, len(resp.Volumes))
	for _, vol := range resp.Volumes {
		sizes[aws.ToString(vol.VolumeId)] = float64(aws.ToInt32(vol.Size))
	}
	return sizes, nil
}

// ListSnapshots returns the volume's self-owned snapshots sorted ascending
// by creation time, as the change analyzer requires.
func (e *Explorer) ListSnapshots(ctx context.Context, volumeID string) ([]domain.Snapshot, error) {
	paginator := ec2.NewDescribeSnapshotsPaginator(e.client, &ec2.DescribeSnapshotsInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("volume-id"),
				Values: []string{volumeID},
			},
		},
		OwnerIds: []string{"self"},
	})

	var snapshots []domain.Snapshot
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots for volume %s: %w", volumeID, err)
		}
		for _, snap := range page.Snapshots {
			snapshots = append(snapshots, domain.Snapshot{
				ID:            aws.ToString(snap.SnapshotId),
				StartTime:     aws.ToTime(snap.StartTime),
				VolumeSizeGiB: float64(aws.ToInt32(snap.VolumeSize)),
				ActualSizeGiB: float64(aws.ToInt64(snap.FullSnapshotSizeInBytes)) / (1 << 30),
				Description:   aws.ToString(snap.Description),
			})
		}
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].StartTime.Before(snapshots[j].StartTime)
	})

	return snapshots, nil
}
