// Package engine defines the contract of the tree-navigation engine consumed by the
// bridge and owns the process-wide engine lifecycle.
//
// The engine itself is an external collaborator: it accepts a free-form command
// string (e.g. `nav`, `jump 0.0.1`, `0.0.2.exec {"server_name": "..."}`) and returns
// a structured result describing the tree position and the action outcome.
// Lifecycle guarantees that at most one engine is constructed per process and that a
// failed construction is retried on the next use instead of being cached.
package engine
