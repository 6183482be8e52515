package server

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ToolFunc handles a tool call
type ToolFunc func(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error)

type registeredTool struct {
	tool schema.Tool
	call ToolFunc
}

// Registry holds tools in registration order
type Registry struct {
	tools []*registeredTool
	index map[string]*registeredTool
}

// Register adds a tool, names have to be unique
func (r *Registry) Register(tool *schema.Tool, call ToolFunc) error {
	if tool == nil || tool.Name == "" {
		return fmt.Errorf("tool name was empty")
	}
	if call == nil {
		return fmt.Errorf("tool %v: call was nil", tool.Name)
	}
	if _, ok := r.index[tool.Name]; ok {
		return fmt.Errorf("tool %v already registered", tool.Name)
	}
	entry := &registeredTool{tool: *tool, call: call}
	r.tools = append(r.tools, entry)
	r.index[tool.Name] = entry
	return nil
}

// Tools returns registered tools
func (r *Registry) Tools() []schema.Tool {
	var result = make([]schema.Tool, 0, len(r.tools))
	for _, entry := range r.tools {
		result = append(result, entry.tool)
	}
	return result
}

// Lookup returns a tool call function
func (r *Registry) Lookup(name string) (ToolFunc, bool) {
	entry, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return entry.call, true
}

// Len returns number of registered tools
func (r *Registry) Len() int {
	return len(r.tools)
}

// NewRegistry creates a tool registry
func NewRegistry() *Registry {
	return &Registry{index: map[string]*registeredTool{}}
}
