// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for humans
//
// Every bridge component receives a *zap.Logger. Component returns a child
// logger tagged with the component name so interception records can be
// told apart from loader and bootstrap records.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	delegateLog := logger.Component("delegate")
//	delegateLog.Error("Forwarded operation failed", zap.String("op", "stop"), zap.Error(err))
package logging
