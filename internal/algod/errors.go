package algod

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind distinguishes the failure classes a node call can surface.
type ErrorKind string

const (
	// KindTimeout: the request deadline elapsed or the context was cancelled.
	KindTimeout ErrorKind = "timeout"
	// KindUnavailable: transport failure or a 5xx from the node.
	KindUnavailable ErrorKind = "unavailable"
	// KindMalformed: the node answered but the body could not be decoded.
	KindMalformed ErrorKind = "malformed"
	// KindRejected: the node refused the request at protocol level (4xx).
	KindRejected ErrorKind = "rejected"
)

// Error is a typed node failure. Callers branch on Kind to decide whether
// to retry a whole attempt from scratch; no retry policy lives here.
type Error struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("algod %s: %s (%s)", e.Op, e.Message, e.Kind)
	}
	return fmt.Sprintf("algod %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// IsRejected reports whether err is a protocol-level node rejection.
func IsRejected(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == KindRejected
}

func transportError(op string, err error) *Error {
	kind := KindUnavailable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Op: op, Message: err.Error(), Err: err}
}
