// Package types defines shared types used across the backend.
//
// Includes service definitions, tool metadata, execution results, and
// request/response types shared between providers and the HTTP layer.
package types
