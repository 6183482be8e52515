package bridge

import "fmt"

// Kind represents a failure kind
type Kind int

const (
	// KindInitialization is an environment setup or engine construction failure
	KindInitialization Kind = iota + 1
	// KindExecution is a command handling failure
	KindExecution
)

func (k Kind) String() string {
	switch k {
	case KindInitialization:
		return "initialization"
	case KindExecution:
		return "execution"
	}
	return "unknown"
}

// Error represents a bridge failure
type Error struct {
	Kind    Kind
	Command string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v failure: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Message returns the caller facing message for the variant
func (e *Error) Message(variant Variant) string {
	if e.Kind == KindInitialization {
		return fmt.Sprintf("Shell failed to initialize: %v", e.Cause)
	}
	if variant == VariantRaw {
		return e.Cause.Error()
	}
	return fmt.Sprintf("Error executing command '%v': %v", e.Command, e.Cause)
}

func newError(kind Kind, command string, cause error) *Error {
	return &Error{Kind: kind, Command: command, Cause: cause}
}
