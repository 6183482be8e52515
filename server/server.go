package server

import (
	"context"
	"errors"

	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// Server represents MCP protocol handler
type Server struct {
	capabilities    schema.ServerCapabilities
	info            schema.Implementation
	instructions    *string
	protocolVersion string
	tools           *Registry
	logger          *zap.Logger

	stdioServer
}

// NewHandler creates a new handler instance
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(transport)
}

func (s *Server) newHandler(notifier transport.Notifier) *Handler {
	return &Handler{
		Server:   s,
		Notifier: notifier,
	}
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		capabilities: schema.ServerCapabilities{
			Tools: &schema.ServerCapabilitiesTools{},
		},
		info: schema.Implementation{
			Name:    "TreeShell",
			Version: "0.1",
		},
		protocolVersion: schema.LatestProtocolVersion,
		tools:           NewRegistry(),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.tools.Len() == 0 {
		return nil, errors.New("no tool registered")
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s, nil
}
