package graphfile

import "errors"

// Sentinel errors for malformed input, reported per spec §7 as
// input/configuration errors: diagnose and abort before any
// simulation work begins.
var (
	ErrMalformedHeader = errors.New("graphfile: malformed header line")
	ErrMalformedNode   = errors.New("graphfile: malformed node line")
	ErrMalformedEdge   = errors.New("graphfile: malformed edge line")
	ErrMalformedRegion = errors.New("graphfile: malformed region line")
	ErrUnexpectedEOF   = errors.New("graphfile: unexpected end of file")
)
