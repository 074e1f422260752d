// Package memory provides in-memory host collaborators for the Arbor runtime.
package memory
