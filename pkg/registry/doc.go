// Package registry provides a generic named registry and the global
// transformer-factory registry recipes resolve transformer types against.
package registry
