// Package service implements the provider registry: registration,
// discovery by intent scoring, and tool execution dispatch.
package service
