package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/kernelbridge/internal/bootstrap"
	"github.com/GriffinCanCode/kernelbridge/internal/factory"
	"github.com/GriffinCanCode/kernelbridge/internal/infrastructure/config"
	"github.com/GriffinCanCode/kernelbridge/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
	"github.com/GriffinCanCode/kernelbridge/internal/logging"
)

var (
	kernelName  string
	descriptor  string
	properties  map[string]string
	metricsAddr string
	logLevel    string
	devLogging  bool
	stopTimeout time.Duration
)

// runCmd creates a framework and keeps it active until signalled
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Create, initialize and start a framework",
	Long:  `Bootstrap a kernel, initialize and start the framework it prepares, and stop it gracefully on SIGINT or SIGTERM.`,
	Args:  cobra.NoArgs,
	RunE:  runFramework,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&kernelName, "kernel", "", "kernel type name (overrides KERNEL_NAME)")
	runCmd.Flags().StringVar(&descriptor, "descriptor", "", "bootstrap descriptor file, .yaml or .toml (overrides KERNEL_DESCRIPTOR)")
	runCmd.Flags().StringToStringVar(&properties, "prop", nil, "framework property key=value, repeatable (merged over FRAMEWORK_PROPERTIES)")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	runCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	runCmd.Flags().BoolVar(&devLogging, "dev", false, "human readable development logging")
	runCmd.Flags().DurationVar(&stopTimeout, "stop-timeout", 0, "how long to wait for the framework to stop")
}

func runFramework(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger, err := logging.New(loggingConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics(prometheus.NewRegistry())
		srv := serveMetrics(cfg.Metrics.Address, metrics, logger.Component("metrics"))
		defer shutdownMetrics(srv, logger.Component("metrics"))
	}

	f := factory.New(factory.Options{
		Bootstrap: bootstrap.Options{
			Name:       cfg.Kernel.Name,
			Descriptor: cfg.Kernel.Descriptor,
			Default:    cfg.Kernel.Default,
		},
		Logger:  logger.Component("factory"),
		Metrics: metrics,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fw, err := f.NewFramework(ctx, cfg.Framework.Properties)
	if err != nil {
		return err
	}
	if err := fw.Init(ctx); err != nil {
		return err
	}
	if err := fw.Start(ctx); err != nil {
		return err
	}

	log := logger.Component("run")
	log.Info("Framework running",
		zap.String("name", fw.SymbolicName()),
		zap.String("version", fw.Version()),
		zap.Stringer("state", fw.State()))

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// A framework may also stop on its own
	stopped := make(chan lifecycle.Event, 1)
	go func() {
		ev, err := fw.WaitForStop(ctx, 0)
		if err == nil {
			stopped <- ev
		}
		close(stopped)
	}()

	select {
	case sig := <-sigChan:
		log.Info("Shutting down gracefully", zap.String("signal", sig.String()))
		return stopFramework(ctx, fw, cfg.Framework.StopTimeout, log)
	case ev, ok := <-stopped:
		if !ok {
			return errors.New("framework wait aborted")
		}
		log.Info("Framework stopped", zap.String("event", string(ev.Type)))
		return nil
	}
}

func stopFramework(ctx context.Context, fw lifecycle.Framework, timeout time.Duration, log *zap.Logger) error {
	stopCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := fw.Stop(stopCtx); err != nil {
		return err
	}

	ev, err := fw.WaitForStop(stopCtx, timeout)
	if err != nil {
		return err
	}
	if ev.Type == lifecycle.EventWaitTimedOut {
		return fmt.Errorf("framework did not stop within %s", timeout)
	}

	log.Info("Framework stopped", zap.String("event", string(ev.Type)))
	return nil
}

// applyFlags overrides environment configuration with explicitly set flags
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("kernel") {
		cfg.Kernel.Name = kernelName
	}
	if flags.Changed("descriptor") {
		cfg.Kernel.Descriptor = descriptor
	}
	if flags.Changed("prop") {
		if cfg.Framework.Properties == nil {
			cfg.Framework.Properties = make(map[string]string, len(properties))
		}
		for k, v := range properties {
			cfg.Framework.Properties[k] = v
		}
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = metricsAddr
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("dev") {
		cfg.Logging.Development = devLogging
	}
	if flags.Changed("stop-timeout") {
		cfg.Framework.StopTimeout = stopTimeout
	}
}

// loggingConfig starts from the production or development preset and applies
// the configured level
func loggingConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	if cfg.Logging.Development {
		lc = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		lc.Level = cfg.Logging.Level
	}
	return lc
}

func serveMetrics(addr string, metrics *monitoring.Metrics, log *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed", zap.Error(err))
		}
	}()
	return srv
}

func shutdownMetrics(srv *http.Server, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("Metrics server shutdown failed", zap.Error(err))
	}
}
