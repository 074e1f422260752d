// Package mcp exposes an arbor runtime as a Model Context Protocol server over stdio.
//
// Agents see the command palette as tools:
//
//   - list_commands: the registered commands.
//   - invoke_command: runs a command by id and returns the focused object.
//   - list_objects: the live objects.
//
// The same object listing is readable as the arbor://objects resource.
package mcp
