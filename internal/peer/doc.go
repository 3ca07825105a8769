// Package peer owns the thin per-connection transport helpers around
// the wire codec.
//
// Ownership boundary:
// - deadline-bounded envelope read/write over a net.Conn
// - inbound rate limiting and traffic counters
// - reconnect backoff and TLS transport validation
//
// Connection lifecycle policy (when to dial, when to give up on a
// misbehaving peer) stays with the caller.
package peer
