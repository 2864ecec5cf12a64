package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/de-tools/ebsight/pkg/runtime/terminal"
	"github.com/de-tools/ebsight/pkg/runtime/terminal/commands"
	"github.com/de-tools/ebsight/pkg/services/analysis"
	"github.com/de-tools/ebsight/pkg/services/aws"
	"github.com/de-tools/ebsight/pkg/services/config"
	"github.com/de-tools/ebsight/pkg/services/pricing"
	"github.com/de-tools/ebsight/pkg/services/report"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Sessions: newAWSSession,
		Output:   os.Stdout,
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newAWSSession(ctx context.Context, profile string, settings *config.Settings) (*commands.Session, error) {
	cfg, err := aws.LoadConfig(ctx, profile, settings.Region)
	if err != nil {
		return nil, err
	}

	builder := report.NewBuilder(pricing.NewModel(settings.RatePerGiBMonth))
	analyzer := analysis.NewAnalyzer(aws.NewExplorer(*cfg), aws.NewCollector(*cfg), builder)

	return &commands.Session{
		Analyzer: analyzer,
		Uploader: aws.NewUploader(*cfg),
	}, nil
}
