// Package convert implements the conversion dispatcher: it validates a
// request, delegates the arithmetic to the unit registry, rounds with
// round-half-to-even at the clamped precision, and records successful
// conversions in the session's history log.
package convert
