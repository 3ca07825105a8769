package wire

import "crypto/sha256"

// ChecksumSize is the byte width of the envelope integrity tag.
const ChecksumSize = 4

// Checksum returns the first four bytes of sha256(sha256(payload)).
func Checksum(payload []byte) [ChecksumSize]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	var out [ChecksumSize]byte
	copy(out[:], second[:ChecksumSize])
	return out
}
