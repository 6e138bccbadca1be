package logger

import "fmt"

// FlushError reports a failed flush. When the export itself fails, the
// staged bytes are left in the buffer so no data beyond what the sink
// already consumed can be lost silently, and a retried Flush re-sends
// them. When the export succeeds but the sink cannot push its own
// buffer through to durable storage (its Flusher fails), Pending is
// zero and Written counts the bytes now held inside the sink.
type FlushError struct {
	// Written is the number of bytes the sink accepted.
	Written int
	// Pending is the number of bytes still staged.
	Pending int
	// Err is the underlying sink error.
	Err error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("logger: flush failed after %d bytes (%d staged): %v",
		e.Written, e.Pending, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}
