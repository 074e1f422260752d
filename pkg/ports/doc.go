/*
Package ports defines the interfaces between the Arbor runtime and its host.

These interfaces decouple the object runtime from the shell embedding it, so the same
plugins run under the terminal palette, the MCP server, or a test harness.

# Key Interfaces

  - Raiser: Raises triggers on objects (used by UI gestures such as tab close).
  - TabManager: Shows an object's view, reusing an existing tab for the same object.
  - Runtime: Everything a plugin needs to register itself and compose commands.
*/
package ports
