package concurrent

import "fmt"

// ErrBatchIncomplete is returned when a batch finishes before
// all of its operations were run, usually because its context
// was done
type ErrBatchIncomplete struct {
	Expected int
	Received int
}

// Error implementation of error for ErrBatchIncomplete
func (e ErrBatchIncomplete) Error() string {
	return fmt.Sprintf("batch completed %d out of %d operations", e.Received, e.Expected)
}
