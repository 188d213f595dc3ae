// Package providers contains the converter tool providers registered with
// the service registry: unit conversion, number bases, code points, text
// encodings, digests, and session history.
package providers
