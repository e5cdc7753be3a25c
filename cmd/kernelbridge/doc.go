// Command kernelbridge bootstraps a kernel, runs the framework it prepares
// behind the intercepting handle and stops it on SIGINT or SIGTERM.
//
// Configuration comes from the environment (KERNEL_NAME, KERNEL_DESCRIPTOR,
// FRAMEWORK_PROPERTIES, LOG_LEVEL, METRICS_ENABLED, ...). Flags override it.
//
//	kernelbridge kernels
//	kernelbridge run --kernel embedded --prop framework.name=demo --metrics-addr :9090
package main
