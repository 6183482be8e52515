package bridge

import (
	"encoding/json"

	"github.com/viant/treeshell/engine"
)

// Envelope represents a uniform command outcome
type Envelope struct {
	Success bool          `json:"success"`
	Command string        `json:"command"`
	Output  string        `json:"output,omitempty"`
	Result  engine.Result `json:"result"`
	Error   string        `json:"error,omitempty"`
	// Failure carries the tagged failure, nil on success
	Failure *Error `json:"-"`
}

type (
	successEnvelope struct {
		Success bool          `json:"success"`
		Command string        `json:"command"`
		Output  string        `json:"output,omitempty"`
		Result  engine.Result `json:"result"`
	}

	failureEnvelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
)

// MarshalJSON encodes a success with command and result, and a failure with the error only
func (e Envelope) MarshalJSON() ([]byte, error) {
	if !e.Success {
		return json.Marshal(&failureEnvelope{Error: e.Error})
	}
	result := e.Result
	if result == nil {
		result = engine.Result{}
	}
	return json.Marshal(&successEnvelope{Success: true, Command: e.Command, Output: e.Output, Result: result})
}

func newSuccess(command string, output string, result engine.Result) *Envelope {
	return &Envelope{Success: true, Command: command, Output: output, Result: result}
}

func newFailure(failure *Error, variant Variant) *Envelope {
	return &Envelope{Error: failure.Message(variant), Failure: failure}
}
