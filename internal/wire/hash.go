package wire

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the byte width of a block or transaction hash.
const HashSize = 32

// Hash is a fixed-width double-sha256 digest.
type Hash [HashSize]byte

// ZeroHash is the all-zero sentinel. As a locator hash stop it means
// "no limit".
var ZeroHash Hash

// IsZero reports whether h is the all-zero sentinel.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// String renders the hash byte-reversed in hex, the conventional
// human-facing order for block hashes.
func (h Hash) String() string {
	var rev [HashSize]byte
	for i, b := range h {
		rev[HashSize-1-i] = b
	}
	return hex.EncodeToString(rev[:])
}

// NewHashFromString parses the byte-reversed hex form produced by String.
func NewHashFromString(s string) (Hash, error) {
	if len(s) != HashSize*2 {
		return Hash{}, fmt.Errorf("wire: invalid hash length: %d", len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("wire: invalid hash: %w", err)
	}
	var h Hash
	for i, b := range raw {
		h[HashSize-1-i] = b
	}
	return h, nil
}
