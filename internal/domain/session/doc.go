// Package session manages per-session state.
//
// Each session owns exactly one history log. Ending a session discards the
// log; idle sessions are swept after a TTL. Nothing is written to disk.
package session
