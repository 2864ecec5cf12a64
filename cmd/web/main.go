package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/ebsight/pkg/server"
	"github.com/de-tools/ebsight/pkg/services/analysis"
	"github.com/de-tools/ebsight/pkg/services/aws"
	"github.com/de-tools/ebsight/pkg/services/config"
	"github.com/de-tools/ebsight/pkg/services/pricing"
	"github.com/de-tools/ebsight/pkg/services/report"
)

var (
	profile string
	cfgPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the EBSight web API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default", "AWS profile name")
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional ebsight.yaml")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings := config.DefaultSettings()
	if cfgPath != "" {
		loaded, err := config.LoadSettings(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
	}

	cfg, err := aws.LoadConfig(ctx, profile, settings.Region)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS session: %w", err)
	}
	logger.Info().Str("profile", profile).Msg("AWS credentials resolved")

	builder := report.NewBuilder(pricing.NewModel(settings.RatePerGiBMonth))
	analyzer := analysis.NewAnalyzer(aws.NewExplorer(*cfg), aws.NewCollector(*cfg), builder)

	addr := settings.ServerAddr
	if host, port := os.Getenv("SERVER_HOST"), os.Getenv("SERVER_PORT"); host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Volumes: analyzer,
		},
	})

	return api.Start()
}
