package ir

import "fmt"

// ErrorCode represents a machine-readable compilation error code.
type ErrorCode string

const (
	// CodeSyntax covers malformed lines: bad option or value syntax,
	// a top-level line that is not an enum header, or a block that is
	// missing its "values" marker.
	CodeSyntax ErrorCode = "syntax"

	// CodeUnterminated covers input that ends inside a block comment
	// or inside an enum block.
	CodeUnterminated ErrorCode = "unterminated"

	CodeUnknownOption   ErrorCode = "unknown_option"
	CodeDuplicateOption ErrorCode = "duplicate_option"
	CodeDuplicateEnum   ErrorCode = "duplicate_enum"
	CodeMissingArgument ErrorCode = "missing_argument"

	// CodeOptionConflict covers violations of the option
	// conflict/requirement table, reported in aggregate after all
	// options of an enum have been collected.
	CodeOptionConflict ErrorCode = "option_conflict"
)

// Error is the standard compilation error. All errors are fatal; the
// first one encountered aborts the run.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new compilation error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new compilation error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
