// Package server provides a minimal MCP server exposing registered tools over stdio.
//
// It answers initialize, ping, tools/list and tools/call; any other method is
// reported as not found. A call naming an unregistered tool fails with a JSON-RPC
// error rather than a tool result.
//
//	srv, _ := server.New(server.WithTool(tool, call))
//	log.Fatal(srv.Stdio(ctx).ListenAndServe())
package server
