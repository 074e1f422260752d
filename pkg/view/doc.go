/*
Package view defines the host-neutral view model produced by object templates.

A View is a plain value: an element tree plus a separate list of (event, handler)
bindings. Templates build views through a Builder supplied by the host, so view
construction stays free of hidden mutation and can be inspected in tests.

# Key Types

  - Element: A node in the element tree (tag, text, attributes, children).
  - Binding: An event name paired with the handler the host attaches to the root.
  - View: The root element and its bindings, as returned by a template's init.
  - Builder: The host collaborator that validates and assembles a View.
*/
package view
