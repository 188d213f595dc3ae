// Package history implements the per-session conversion history log.
//
// The log is append-only and insertion-ordered. Exports (CSV, JSON, YAML,
// TOML) are pure reads. Records live in process memory only and are
// discarded when the session ends; nothing is ever persisted server-side.
package history
