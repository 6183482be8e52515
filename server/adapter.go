package server

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Adapter exposes a server Handler as an in-process client
type Adapter struct {
	handler *Handler
}

type nopNotifier struct{}

func (n *nopNotifier) Notify(ctx context.Context, notification *jsonrpc.Notification) error {
	return nil
}

// AsClient returns an in-process client of the server
func (s *Server) AsClient(ctx context.Context) *Adapter {
	return &Adapter{handler: s.newHandler(&nopNotifier{})}
}

// Initialize initializes the client
func (a *Adapter) Initialize(ctx context.Context) (*schema.InitializeResult, error) {
	params := &schema.InitializeRequestParams{}
	var result schema.InitializeResult
	if err := a.send(ctx, schema.MethodInitialize, params, &result); err != nil {
		return nil, err
	}
	// Send Initialized notification
	a.handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationInitialized})
	return &result, nil
}

// ListTools lists tools
func (a *Adapter) ListTools(ctx context.Context, cursor *string) (*schema.ListToolsResult, error) {
	params := &schema.ListToolsRequestParams{Cursor: cursor}
	var result schema.ListToolsResult
	if err := a.send(ctx, schema.MethodToolsList, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CallTool calls a tool
func (a *Adapter) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error) {
	var result schema.CallToolResult
	if err := a.send(ctx, schema.MethodToolsCall, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping pings the server
func (a *Adapter) Ping(ctx context.Context) (*schema.PingResult, error) {
	var result schema.PingResult
	if err := a.send(ctx, schema.MethodPing, &schema.PingRequestParams{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *Adapter) send(ctx context.Context, method string, params interface{}, result interface{}) error {
	req, err := jsonrpc.NewRequest(method, params)
	if err != nil {
		return err
	}
	req.Jsonrpc = jsonrpc.Version
	response := &jsonrpc.Response{}
	a.handler.Serve(ctx, req, response)
	if response.Error != nil {
		return response.Error
	}
	return json.Unmarshal(response.Result, result)
}
