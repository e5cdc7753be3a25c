/*
Package monitoring provides Prometheus metrics for the kernel bridge.

# Overview

Every framework operation is recorded with the route it took: "kernel" for
the intercepted init/start calls, "forward" for pass-through calls to the
wrapped framework. Framework creation attempts are recorded with the failure
kind, if any.

# Usage

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	timer := monitoring.NewTimer(metrics, "stop", monitoring.RouteForward)
	err := framework.Stop(ctx)
	timer.Stop(err)

# Metrics Endpoint

	http.Handle("/metrics", metrics.Handler())

Exposed series:
  - kernelbridge_operations_total{op,route,outcome}
  - kernelbridge_operation_duration_seconds{op,route}
  - kernelbridge_operation_errors_total{op,route,kind}
  - kernelbridge_frameworks_created_total{outcome,kind}
  - kernelbridge_frameworks_active
*/
package monitoring
