package gridgraph

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrOutOfOrder indicates an edge head arrived before a previously seen head.
	ErrOutOfOrder = errors.New("gridgraph: edge heads must be non-decreasing")
	// ErrNodeOutOfRange indicates a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("gridgraph: node id out of range")
	// ErrTooManyEdges indicates more edges were added than declared at construction.
	ErrTooManyEdges = errors.New("gridgraph: more edges added than declared")
	// ErrIncompleteBuild indicates Build was called before every declared edge was added.
	ErrIncompleteBuild = errors.New("gridgraph: fewer edges added than declared")
	// ErrZoneCountMismatch indicates a zone assignment slice of the wrong length.
	ErrZoneCountMismatch = errors.New("gridgraph: zone assignment length must equal node count")
	// ErrZoneOutOfRange indicates a zone id outside [0, Z).
	ErrZoneOutOfRange = errors.New("gridgraph: zone id out of range")
)
