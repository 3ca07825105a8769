package wire

import "errors"

var (
	ErrProtocolMismatch = errors.New("wire: network magic mismatch")
	ErrChecksumMismatch = errors.New("wire: payload checksum mismatch")
	ErrInvalidCommand   = errors.New("wire: invalid command")
	ErrUnderflow        = errors.New("wire: stream ended before declared length")
	ErrPayloadTooLarge  = errors.New("wire: payload too large")
	ErrCountTooLarge    = errors.New("wire: element count too large")
)
