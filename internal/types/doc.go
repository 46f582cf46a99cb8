// Package types defines shared data structures used across the service
// layer: service definitions, tool metadata, execution results, and
// request/response shapes for the HTTP and WebSocket APIs.
package types
