package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/de-tools/ebsight/pkg/models/domain"
)

// csvHeader is the fixed column order consumed by downstream tooling.
var csvHeader = []string{
	"Instance ID", "Instance Name", "Volume ID", "Device Name",
	"Volume Size (GiB)", "Total Snapshot Size (GiB)", "Snapshot Count",
	"Usage Percentage", "Daily Cost ($)", "Weekly Cost ($)",
	"Monthly Cost ($)", "Annual Cost ($)",
}

// WriteCSV exports one row per volume report. Numeric fields use two
// decimal places except the daily cost, which keeps three.
func WriteCSV(w io.Writer, instanceID, instanceName string, reports []domain.VolumeReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rep := range reports {
		record := []string{
			instanceID,
			instanceName,
			rep.VolumeID,
			rep.DeviceName,
			fmt.Sprintf("%.2f", rep.SizeGiB),
			fmt.Sprintf("%.2f", rep.Changes.TotalSnapshotSizeGiB),
			fmt.Sprintf("%d", rep.Changes.SnapshotCount),
			fmt.Sprintf("%.2f", rep.Changes.UsagePercent),
			fmt.Sprintf("%.3f", rep.Costs.Daily),
			fmt.Sprintf("%.2f", rep.Costs.Weekly),
			fmt.Sprintf("%.2f", rep.Costs.Monthly),
			fmt.Sprintf("%.2f", rep.Costs.Annual),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rep.VolumeID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// RenderCSV returns the CSV export as a byte slice, for writing to disk or
// uploading to object storage.
func RenderCSV(instanceID, instanceName string, reports []domain.VolumeReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, instanceID, instanceName, reports); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
