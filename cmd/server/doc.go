// Package main is the entry point for the UnitBox server.
//
// UnitBox is a unit-conversion toolbox: a registry of conversion
// categories with exact rational factors, arbitrary-precision decimal
// arithmetic, per-session history with multi-format export, and a set
// of auxiliary text and number tools behind a service registry.
//
// The server provides:
//   - REST API for conversions, categories, and tool execution
//   - WebSocket streaming of session history
//   - Multi-format history export (CSV, JSON, YAML, TOML)
//   - Prometheus metrics, rate limiting, structured logging
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
