package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/ebsight/pkg/models/domain"
	"github.com/de-tools/ebsight/pkg/runtime/terminal/export"
	"github.com/de-tools/ebsight/pkg/services/analysis"
	"github.com/de-tools/ebsight/pkg/services/config"
	"github.com/de-tools/ebsight/pkg/services/report"
)

// Uploader publishes an exported report to object storage.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, body []byte) error
}

// Session bundles the collaborators a command needs for one profile.
type Session struct {
	Analyzer *analysis.Analyzer
	Uploader Uploader
}

// SessionFactory resolves credentials for a named profile and wires the
// analysis pipeline. The CLI entrypoint supplies the AWS-backed one.
type SessionFactory func(ctx context.Context, profile string, settings *config.Settings) (*Session, error)

type AnalyzeCmd struct {
	instanceID string
	profile    string
	configPath string
	verbose    bool
	csvExport  bool
	graphs     bool
	sizing     bool
	s3Bucket   string

	sessions SessionFactory
	output   io.Writer
}

func NewAnalyzeCmd(sessions SessionFactory, output io.Writer) *cobra.Command {
	ac := &AnalyzeCmd{sessions: sessions, output: output}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an instance's volumes, snapshots, and I/O telemetry",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.instanceID, "instance", "", "EC2 instance ID to analyze")
	cmd.Flags().StringVarP(&ac.profile, "profile", "p", "default", "AWS profile name")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to an optional ebsight.yaml")
	cmd.Flags().BoolVarP(&ac.verbose, "verbose", "v", false, "Show detailed snapshot information")
	cmd.Flags().BoolVarP(&ac.csvExport, "csv", "c", false, "Export results to CSV")
	cmd.Flags().BoolVarP(&ac.graphs, "graph", "g", false, "Show ASCII graphs")
	cmd.Flags().BoolVarP(&ac.sizing, "fsx", "f", false, "Show FSx for NetApp ONTAP sizing recommendations")
	cmd.Flags().StringVar(&ac.s3Bucket, "s3-bucket", "", "Upload the CSV export to this S3 bucket")

	_ = cmd.MarkFlagRequired("instance")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	settings := config.DefaultSettings()
	if ac.configPath != "" {
		loaded, err := config.LoadSettings(ac.configPath)
		if err != nil {
			return fmt.Errorf("failed to load settings from %s: %w", ac.configPath, err)
		}
		settings = loaded
	}

	session, err := ac.sessions(ctx, ac.profile, settings)
	if err != nil {
		return fmt.Errorf("%w\n\n%s", err, credentialsHint)
	}

	instance, reports, err := session.Analyzer.AnalyzeInstance(ctx, ac.instanceID)
	if err != nil {
		return err
	}

	logger.Info().
		Str("instance_id", instance.ID).
		Str("name", instance.Name).
		Int("volumes", len(instance.Volumes)).
		Int("reports", len(reports)).
		Msg("analysis finished")

	if len(reports) == 0 {
		fmt.Fprintln(ac.output, "No volumes with snapshots found for this instance.")
		return nil
	}

	reporter := export.NewReporter(ac.output)
	for _, rep := range reports {
		fmt.Fprintf(ac.output, "\nAnalyzing Volume: %s (%s)\n", rep.VolumeID, rep.DeviceName)
		if err := reporter.RenderVolume(rep, ac.verbose); err != nil {
			return err
		}
		if ac.graphs {
			reporter.RenderVolumeGraph(rep)
		}
	}

	summary := report.Summarize(reports, ac.sizing)
	if err := reporter.RenderFleet(reports, summary); err != nil {
		return err
	}

	if ac.csvExport || ac.s3Bucket != "" {
		if err := ac.exportCSV(ctx, session, instance, reports); err != nil {
			return err
		}
	}

	return nil
}

func (ac *AnalyzeCmd) exportCSV(
	ctx context.Context,
	session *Session,
	instance domain.InstanceInfo,
	reports []domain.VolumeReport,
) error {
	logger := zerolog.Ctx(ctx)

	data, err := export.RenderCSV(instance.ID, instance.Name, reports)
	if err != nil {
		return fmt.Errorf("failed to render CSV export: %w", err)
	}

	filename := fmt.Sprintf("snapshot_analysis_%s_%s.csv",
		instance.ID, time.Now().Format("20060102_150405"))

	if ac.csvExport {
		if err := os.WriteFile(filename, data, 0o644); err != nil {
			return fmt.Errorf("failed to write CSV report: %w", err)
		}
		logger.Info().Str("file", filename).Msg("CSV report exported")
	}

	if ac.s3Bucket != "" {
		if err := session.Uploader.Upload(ctx, ac.s3Bucket, filename, data); err != nil {
			return err
		}
		logger.Info().
			Str("bucket", ac.s3Bucket).
			Str("key", filename).
			Msg("CSV report uploaded")
	}

	return nil
}

const credentialsHint = `Please ensure your AWS credentials are properly configured:
  1. Check ~/.aws/credentials file
  2. Check ~/.aws/config file
  3. Use --profile to specify a different profile`
