package engine

import "context"

type (
	// Result represents a structured engine result
	Result map[string]interface{}

	// Engine handles navigation commands, it keeps track of the current tree position
	Engine interface {
		Handle(ctx context.Context, command string) (Result, error)
	}

	// Factory constructs a new engine
	Factory func(ctx context.Context) (Engine, error)
)

// HandlerFunc adapts a function to the Engine interface
type HandlerFunc func(ctx context.Context, command string) (Result, error)

// Handle calls f(ctx, command)
func (f HandlerFunc) Handle(ctx context.Context, command string) (Result, error) {
	return f(ctx, command)
}
