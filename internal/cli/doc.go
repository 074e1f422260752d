// Package cli wires the arbor host used by cmd/arbor: configuration, the runtime
// with its observability hooks, the tab set, plugin loading and the interactive palette.
package cli
