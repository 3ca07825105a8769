// Package wire owns the wire contract and parsing primitives for the
// peer-to-peer message layer.
//
// Ownership boundary:
// - compact-size / byte-stream primitives
// - envelope framing (magic, command, length, checksum)
// - command registry and payload dispatch
// - concrete payload codecs
package wire
