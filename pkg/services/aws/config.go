// Package aws implements the external collaborators of the analysis core:
// EC2 instance/volume/snapshot discovery, CloudWatch telemetry collection,
// and S3 report upload.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// DefaultRegion applies when neither the shared profile nor the settings
// file names one.
const DefaultRegion = "us-east-1"

// LoadConfig resolves credentials for a named shared-config profile.
// Resolving them up front surfaces profile mistakes before the first
// API call instead of midway through a run.
func LoadConfig(ctx context.Context, profile, region string) (*awssdk.Config, error) {
	if region == "" {
		region = DefaultRegion
	}

	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithSharedConfigProfile(profile),
		config.WithDefaultRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	if _, err := awsCfg.Credentials.Retrieve(ctx); err != nil {
		return nil, fmt.Errorf("invalid AWS credentials for profile %s: %w", profile, err)
	}

	return &awsCfg, nil
}
