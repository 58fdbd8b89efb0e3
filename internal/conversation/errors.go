package conversation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("missing required parameters: conversationInput and conversationStrategy")
	ErrUpstream       = errors.New("upstream model call failed")
)

// UpstreamError records which stage lost its model call.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUpstream) hold for every UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
