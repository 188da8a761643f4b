// Package types defines the shared data model for the documentation
// transformer: entities, aspect payloads, key mappings, change proposals,
// and the interfaces the host pipeline implements.
package types
