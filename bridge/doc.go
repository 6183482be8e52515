// Package bridge implements the command bridge between the MCP tool surface and the
// tree-navigation engine.
//
// Service.Run never fails: every outcome, including engine construction failures,
// command errors and engine panics, is reduced to an Envelope. Failures are logged
// with their full detail before being reduced to a short message.
//
// Two variants are supported:
//   - Rendered (human facing): the engine result is passed through a Renderer and
//     both the display text and the raw result are returned,
//   - Raw (agent facing): the engine result is returned as is.
package bridge
