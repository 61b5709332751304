package exchange

import "errors"

var (
	// ErrMalformedAgentPayload is returned when an E1 payload's length
	// is not a multiple of the packed agent record size.
	ErrMalformedAgentPayload = errors.New("exchange: malformed agent migration payload")
	// ErrMalformedValuePayload is returned when an E2/E3 payload's
	// length is not a multiple of the encoded value size.
	ErrMalformedValuePayload = errors.New("exchange: malformed boundary value payload")
	// ErrLengthMismatch is returned when a received E2/E3 payload's
	// record count does not match the receiver's import list length.
	ErrLengthMismatch = errors.New("exchange: boundary payload length does not match import list")
)
