package routepath

import "errors"

var (
	// ErrNegativeWeight indicates an edge with weight < 0 was found
	// during precomputation; Floyd-Warshall's relaxation is only valid
	// for non-negative weights.
	ErrNegativeWeight = errors.New("routepath: negative edge weight")

	// ErrNaNWeight indicates an edge with a NaN weight was found.
	ErrNaNWeight = errors.New("routepath: NaN edge weight")
)
