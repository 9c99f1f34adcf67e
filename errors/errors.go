package errors

import "github.com/kay64/computer-science/logs"

const (
	// CodeOutOfBound is used when an index falls outside of a sequence
	CodeOutOfBound = 1000

	// CodeUnknownAlgorithm is used when a sorting algorithm is
	// requested by a name that is not registered
	CodeUnknownAlgorithm = 1001

	// CodeUnknownCommand is used when the command line receives
	// a command it does not know about
	CodeUnknownCommand = 1002
)

var (
	// ErrOutOfBound is returned when inserting into a sequence
	// at an index greater than its size
	ErrOutOfBound = &Error{ErrorCode: CodeOutOfBound, Description: "index out of bound"}

	// ErrUnknownAlgorithm is returned when looking up a sorting
	// algorithm that does not exist
	ErrUnknownAlgorithm = &Error{ErrorCode: CodeUnknownAlgorithm, Description: "unknown algorithm"}

	// ErrUnknownCommand is returned by the command line when the
	// command is not recognised
	ErrUnknownCommand = &Error{ErrorCode: CodeUnknownCommand, Description: "unknown command"}
)

// Error is a typed error that carries a code that identifies the
// kind of failure
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	Description string `json:"description"`
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}
