// Package service implements the provider registry: registration,
// discovery by intent, and tool execution routed by namespaced tool IDs
// ("service.tool").
package service
