package server

import "github.com/viant/jsonrpc"

// NewUnknownTool creates an unknown tool error
func NewUnknownTool(toolName string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, "Unknown tool: "+toolName, nil)
}
