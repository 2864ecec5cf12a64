package domain

import "time"

// InstanceInfo describes an EC2 instance and the EBS volumes attached to it.
type InstanceInfo struct {
	ID      string
	Name    string // Name tag, empty if untagged
	Volumes []VolumeDescriptor
}

// VolumeDescriptor identifies one attached EBS volume.
type VolumeDescriptor struct {
	ID         string
	DeviceName string
	SizeGiB    float64
}

// Snapshot is one point-in-time backup of a volume. Records are immutable
// and ordered by StartTime.
type Snapshot struct {
	ID            string
	StartTime     time.Time
	VolumeSizeGiB float64 // size declared at snapshot time
	ActualSizeGiB float64 // FullSnapshotSizeInBytes / 2^30
	Description   string
}
