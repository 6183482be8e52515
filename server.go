package treeshell

import (
	"fmt"

	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/treeshell/bridge"
	"github.com/viant/treeshell/engine"
	"github.com/viant/treeshell/render"
	"github.com/viant/treeshell/server"
	"github.com/viant/treeshell/tool"
	"go.uber.org/zap"
)

// NewServer creates an MCP server exposing the shell tool backed by engines built with newEngine.
// options have to be initialized with Options.Init.
func NewServer(newEngine engine.Factory, options *Options, logger *zap.Logger) (*server.Server, error) {
	if newEngine == nil {
		return nil, fmt.Errorf("engine factory was nil")
	}
	if options == nil {
		return nil, fmt.Errorf("options were nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	variant, err := bridge.ParseVariant(options.Variant)
	if err != nil {
		return nil, err
	}
	lifecycle := engine.NewLifecycle(newEngine,
		engine.WithDefaultDataDir(options.DataDir),
		engine.WithLogger(logger.Named("engine")))
	service := bridge.New(lifecycle,
		bridge.WithVariant(variant),
		bridge.WithRenderer(render.Text),
		bridge.WithLogger(logger.Named("bridge")))
	shell := tool.NewShell(service)
	descriptor, err := shell.Descriptor().Tool()
	if err != nil {
		return nil, err
	}
	return server.New(
		server.WithImplementation(schema.Implementation{Name: options.Name, Version: options.Version}),
		server.WithTool(descriptor, shell.Call),
		server.WithLogger(logger.Named("server")),
	)
}
