/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the
conversion service, tracking HTTP requests, conversions, tool executions,
sessions, history activity, and system metrics. Each Metrics value owns a
private registry, so multiple collectors can coexist in one process.

# Features

- HTTP request metrics (latency, throughput, size)
- Conversion metrics per category and outcome
- Tool execution metrics (duration, status)
- Session lifecycle metrics
- History and export metrics
- WebSocket connection metrics
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.RecordConversion("length", "success")
	metrics.IncSessionsTotal()

	// Time operations
	timer := monitoring.NewTimer(metrics, "digest", "hash")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

Expose the collector's own registry:

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
