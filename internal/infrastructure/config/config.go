package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all bridge configuration.
type Config struct {
	Kernel    KernelConfig
	Framework FrameworkConfig
	Logging   LogConfig
	Metrics   MetricsConfig
}

// KernelConfig selects the kernel type to bootstrap.
type KernelConfig struct {
	Name       string `envconfig:"KERNEL_NAME"`
	Descriptor string `envconfig:"KERNEL_DESCRIPTOR"`
	Default    string `envconfig:"KERNEL_DEFAULT" default:"embedded"`
}

// FrameworkConfig holds what is handed to the framework.
type FrameworkConfig struct {
	// Properties are passed to the kernel's prepare step, as "key:value,key:value"
	Properties  map[string]string `envconfig:"FRAMEWORK_PROPERTIES"`
	StopTimeout time.Duration     `envconfig:"STOP_TIMEOUT" default:"30s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// MetricsConfig holds Prometheus exposition configuration.
type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"false"`
	Address string `envconfig:"METRICS_ADDR" default:":9090"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Kernel: KernelConfig{
			Default: "embedded",
		},
		Framework: FrameworkConfig{
			StopTimeout: 30 * time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Address: ":9090",
		},
	}
}
