// SPDX-License-Identifier: Unlicense OR MIT

package triangle

// Kind classifies the step of Draw that failed.
type Kind uint8

const (
	// ContextError means no rendering context could be obtained.
	ContextError Kind = iota
	// AllocationError means the driver refused to create a buffer,
	// shader or program object.
	AllocationError
	// CompileError means a shader failed to compile.
	CompileError
	// LinkError means the program failed to link.
	LinkError
)

// Error is returned by Draw. Its message is the whole payload: the
// driver info log, a fixed fallback text, or the message of the
// context failure.
type Error struct {
	Kind Kind
	// Log is the message reported by Error.
	Log string
	// Err is the cause of a ContextError.
	Err error
}

func (e *Error) Error() string {
	return e.Log
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (k Kind) String() string {
	switch k {
	case ContextError:
		return "ContextError"
	case AllocationError:
		return "AllocationError"
	case CompileError:
		return "CompileError"
	case LinkError:
		return "LinkError"
	default:
		panic("invalid error kind")
	}
}
