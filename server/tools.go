package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	listToolsRequest := &schema.ListToolsRequest{Method: request.Method}
	if err := unmarshalParams(request.Params, &listToolsRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	return &schema.ListToolsResult{Tools: h.tools.Tools()}, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	callToolRequest := &schema.CallToolRequest{Method: request.Method}
	if err := unmarshalParams(request.Params, &callToolRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	name := callToolRequest.Params.Name
	call, ok := h.tools.Lookup(name)
	if !ok {
		h.logger.Warn("unknown tool", zap.String("tool", name))
		return nil, NewUnknownTool(name)
	}
	return call(ctx, &callToolRequest.Params)
}

func unmarshalParams(data json.RawMessage, params interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, params)
}
