package process

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/client/stdio"
	"github.com/viant/treeshell/engine"
)

const (
	// MethodHandleCommand is the JSON-RPC method served by the engine process
	MethodHandleCommand = "handle_command"

	// unboundedRunTimeoutMs keeps a command waiting for as long as the engine takes
	unboundedRunTimeoutMs = int(math.MaxInt64 / int64(time.Millisecond))
)

type (
	// Config represents engine process config
	Config struct {
		Command   string   `yaml:"command" json:"command"`
		Arguments []string `yaml:"arguments" json:"arguments"`
		Method    string   `yaml:"method" json:"method"`
		// RunTimeoutMs limits a single command, zero waits without limit
		RunTimeoutMs int `yaml:"runTimeoutMs" json:"runTimeoutMs"`
	}

	// Error represents a failure reported by the engine process
	Error struct {
		Cause *jsonrpc.Error
	}

	// Engine forwards commands to an engine process
	Engine struct {
		transport transport.Transport
		method    string
	}

	handleParams struct {
		Command string `json:"command"`
	}
)

// Handle sends command to the engine process
func (e *Engine) Handle(ctx context.Context, command string) (engine.Result, error) {
	request, err := jsonrpc.NewRequest(e.method, &handleParams{Command: command})
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	response, err := e.transport.Send(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to send %v: %w", e.method, err)
	}
	return decodeResult(response)
}

func (e *Error) Error() string {
	return e.Cause.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func decodeResult(response *jsonrpc.Response) (engine.Result, error) {
	if response == nil {
		return nil, fmt.Errorf("engine returned no response")
	}
	if response.Error != nil {
		return nil, &Error{Cause: response.Error}
	}
	result := engine.Result{}
	if len(response.Result) == 0 || string(response.Result) == "null" {
		return result, nil
	}
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to decode engine result: %w", err)
	}
	return result, nil
}

// New returns a factory starting the configured engine process
func New(config *Config) engine.Factory {
	return func(ctx context.Context) (engine.Engine, error) {
		if config == nil || config.Command == "" {
			return nil, fmt.Errorf("engine command was empty")
		}
		method := config.Method
		if method == "" {
			method = MethodHandleCommand
		}
		runTimeoutMs := config.RunTimeoutMs
		if runTimeoutMs <= 0 {
			runTimeoutMs = unboundedRunTimeoutMs
		}
		client, err := stdio.New(config.Command,
			stdio.WithArguments(config.Arguments...),
			stdio.WithRunTimeout(runTimeoutMs))
		if err != nil {
			return nil, fmt.Errorf("failed to start engine %v: %w", config.Command, err)
		}
		return &Engine{transport: client, method: method}, nil
	}
}
