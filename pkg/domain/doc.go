/*
Package domain contains the core types of the Arbor object runtime.

Objects are instantiated from Templates, carry a fixed set of tags, and have Behaviors
attached to them. A Behavior reacts to raised triggers. Commands expose operations to the
host UI by string id. This package is kept pure and free of I/O; the registries and the
dispatcher live elsewhere.

# Key Entities

  - Template: Declarative description of an object's tags, behaviors and init.
  - Behavior: A named reaction bound to a non-empty set of triggers.
  - Object: A live instance with a state bag and a Live/Destroyed lifecycle.
  - Command: An operation invoked by id, with a description for palettes.
  - LifecycleHooks: Observability callbacks fired by the runtime.
*/
package domain
