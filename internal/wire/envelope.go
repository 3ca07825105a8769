package wire

import (
	"bytes"
	"fmt"
	"io"
)

// HeaderSize is the fixed envelope header width: magic 4 + command 12 +
// length 4 + checksum 4.
const HeaderSize = 24

// Envelope is one complete wire frame after framing validation.
type Envelope struct {
	Net     Network
	Command string
	Payload []byte
}

// Limits constrains envelope decode memory use against untrusted input.
type Limits struct {
	MaxPayloadBytes uint32
}

// DefaultLimits bounds a single payload at 32 MiB.
func DefaultLimits() Limits {
	return Limits{MaxPayloadBytes: 32 * 1024 * 1024}
}

// WriteEnvelope frames payload under command for the given network and
// writes the complete frame to w.
func WriteEnvelope(w io.Writer, net Network, command string, payload []byte, limits Limits) error {
	cmd, err := EncodeCommand(command)
	if err != nil {
		return err
	}
	if limits.MaxPayloadBytes > 0 && uint64(len(payload)) > uint64(limits.MaxPayloadBytes) {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}

	var hdr bytes.Buffer
	hdr.Grow(HeaderSize)
	if err := writeUint32(&hdr, uint32(net)); err != nil {
		return err
	}
	if _, err := hdr.Write(cmd[:]); err != nil {
		return err
	}
	if err := writeUint32(&hdr, uint32(len(payload))); err != nil {
		return err
	}
	sum := Checksum(payload)
	if _, err := hdr.Write(sum[:]); err != nil {
		return err
	}

	if _, err := w.Write(hdr.Bytes()); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	_, err = w.Write(payload)
	return err
}

// ReadEnvelope consumes exactly one frame from r and validates it for the
// given network. The magic is checked before any further bytes are read,
// so a mismatched frame never has its payload consumed.
func ReadEnvelope(r io.Reader, net Network, limits Limits) (Envelope, error) {
	magic, err := readUint32(r)
	if err != nil {
		return Envelope{}, err
	}
	if Network(magic) != net {
		return Envelope{}, fmt.Errorf("%w: got 0x%08x want %s", ErrProtocolMismatch, magic, net)
	}

	var cmd [CommandSize]byte
	if err := readFull(r, cmd[:]); err != nil {
		return Envelope{}, err
	}
	command, err := DecodeCommand(cmd)
	if err != nil {
		return Envelope{}, err
	}

	length, err := readUint32(r)
	if err != nil {
		return Envelope{}, err
	}
	if limits.MaxPayloadBytes > 0 && length > limits.MaxPayloadBytes {
		return Envelope{}, fmt.Errorf("%w: header declares %d bytes", ErrPayloadTooLarge, length)
	}

	var declared [ChecksumSize]byte
	if err := readFull(r, declared[:]); err != nil {
		return Envelope{}, err
	}

	payload := make([]byte, length)
	if length > 0 {
		if err := readFull(r, payload); err != nil {
			return Envelope{}, err
		}
	}

	if computed := Checksum(payload); computed != declared {
		return Envelope{}, fmt.Errorf("%w: command %q", ErrChecksumMismatch, command)
	}

	return Envelope{Net: net, Command: command, Payload: payload}, nil
}
