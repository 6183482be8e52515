// Package tool describes the `run_conversation_shell` MCP tool and adapts the command
// bridge to the MCP tools/call contract.
package tool
