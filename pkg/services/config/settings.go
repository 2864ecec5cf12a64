package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/de-tools/ebsight/pkg/services/pricing"
)

// Settings is the optional ebsight.yaml configuration. Flags and env vars
// cover the common cases; settings only adjust constants.
type Settings struct {
	// RatePerGiBMonth overrides the snapshot storage rate used by the
	// cost model.
	RatePerGiBMonth float64 `mapstructure:"rate_per_gib_month"`
	// Region is the fallback AWS region when the profile names none.
	Region string `mapstructure:"region"`
	// ServerAddr is the listen address for the web API.
	ServerAddr string `mapstructure:"server_addr"`
}

func DefaultSettings() *Settings {
	return &Settings{
		RatePerGiBMonth: pricing.DefaultRatePerGiBMonth,
		ServerAddr:      "localhost:8080",
	}
}

func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultSettings()
	v.SetDefault("rate_per_gib_month", defaults.RatePerGiBMonth)
	v.SetDefault("region", defaults.Region)
	v.SetDefault("server_addr", defaults.ServerAddr)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &cfg, nil
}
