package catalogue

import "errors"

// Sentinel errors returned by Catalogue operations. Query-layer errors
// (ErrStopNotFound, ErrBusNotFound) are expected during normal operation
// and are meant to be converted to answer-level error messages by the
// caller (see package reqdoc). ErrUnknownDistance indicates a broken
// catalogue-construction contract and is fatal (see spec §7).
var (
	// ErrStopNotFound indicates a query referenced a stop name the
	// catalogue has never seen.
	ErrStopNotFound = errors.New("catalogue: stop not found")

	// ErrBusNotFound indicates a query referenced a bus name the
	// catalogue has never seen.
	ErrBusNotFound = errors.New("catalogue: bus not found")

	// ErrUnknownDistance indicates neither (A,B) nor (B,A) has a
	// recorded road distance. AddBus treats this as fatal: every
	// consecutive stop pair along a route must have a distance.
	ErrUnknownDistance = errors.New("catalogue: no recorded distance between stops")

	// ErrEmptyRoute indicates AddBus was called with zero stops. Per
	// spec design note (a), empty routes are rejected up front rather
	// than carrying undefined last-stop/terminal semantics forward.
	ErrEmptyRoute = errors.New("catalogue: bus route must have at least one stop")
)
