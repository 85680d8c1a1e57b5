package transit

import "errors"

var (
	// ErrNotInitialized indicates Route was called before Init or
	// LoadFromSnapshot completed.
	ErrNotInitialized = errors.New("transit: router not initialized")

	// ErrAlreadyInitialized indicates Init or LoadFromSnapshot was
	// called on a router that already left the Empty state.
	ErrAlreadyInitialized = errors.New("transit: router already initialized")
)
