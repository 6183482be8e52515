package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/treeshell/bridge"
)

const noOutput = "No output available"

// Shell adapts the command bridge to MCP tool calls
type Shell struct {
	service    *bridge.Service
	descriptor *Descriptor
}

// Descriptor returns the advertised tool descriptor
func (s *Shell) Descriptor() *Descriptor {
	return s.descriptor
}

// Call runs the command argument and returns the envelope as a single text content
func (s *Shell) Call(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error) {
	command := ""
	if params != nil {
		command = commandArgument(params.Arguments[commandProperty])
	}
	envelope := s.service.Run(ctx, command)
	text, err := s.format(envelope)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	result := &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{
			schema.TextContent{Type: "text", Text: text},
		},
	}
	if !envelope.Success {
		isError := true
		result.IsError = &isError
	}
	return result, nil
}

func (s *Shell) format(envelope *bridge.Envelope) (string, error) {
	if s.service.Variant() == bridge.VariantRaw {
		data, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode envelope: %w", err)
		}
		return string(data), nil
	}
	if !envelope.Success {
		return "❌ Error: " + envelope.Error, nil
	}
	if envelope.Output == "" {
		return noOutput, nil
	}
	return envelope.Output, nil
}

func commandArgument(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	}
	return fmt.Sprintf("%v", value)
}

// NewShell creates a shell tool for the service
func NewShell(service *bridge.Service) *Shell {
	return &Shell{
		service:    service,
		descriptor: Catalog(service.Variant()),
	}
}
