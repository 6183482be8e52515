// Package treeshell wires the TreeShell MCP bridge: a stdio MCP server exposing the
// single `run_conversation_shell` tool backed by a tree-navigation engine.
//
// Two binaries are built from the same wiring:
//   - cmd/treeshell-user renders engine results for human operators,
//   - cmd/treeshell-agent returns raw engine results as JSON for agents.
//
// Example:
//
//	srv, _ := treeshell.NewServer(process.New(&process.Config{Command: "treeshell-engine"}), options, logger)
//	log.Fatal(srv.Stdio(ctx).ListenAndServe())
package treeshell
