// Package common provides shared helpers for the algebra provider
// modules: parameter extraction with sentinel-name coercion, result
// construction, and symbolic value encoding for JSON transport.
package common
