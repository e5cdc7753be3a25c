// Package config provides 12-factor configuration for the kernel bridge.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags override individual values.
//
// Configuration Sections:
//   - Kernel: which kernel type the bootstrap resolves
//   - Framework: properties passed to prepare, stop timeout
//   - Logging: log level and output format
//   - Metrics: Prometheus exposition
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Loading kernel %s\n", cfg.Kernel.Default)
//
// Environment Variables:
//   - KERNEL_NAME, KERNEL_DESCRIPTOR, KERNEL_DEFAULT
//   - FRAMEWORK_PROPERTIES, STOP_TIMEOUT
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED, METRICS_ADDR
package config
