package wire

import (
	"fmt"
	"io"
)

// MaxAddrPerMsg bounds the declared entry count of an addr payload.
const MaxAddrPerMsg = 1000

// TimestampedAddress is one addr entry: when the address was last seen
// plus the endpoint itself.
type TimestampedAddress struct {
	Timestamp uint32
	Addr      NetAddress
}

// MsgAddr shares known peer endpoints.
type MsgAddr struct {
	Addresses []TimestampedAddress
}

func (m *MsgAddr) Command() string {
	return CmdAddr
}

func (m *MsgAddr) Encode(w io.Writer) error {
	if len(m.Addresses) > MaxAddrPerMsg {
		return fmt.Errorf("%w: %d addresses", ErrCountTooLarge, len(m.Addresses))
	}
	if err := WriteVarInt(w, uint64(len(m.Addresses))); err != nil {
		return err
	}
	for _, entry := range m.Addresses {
		if err := writeUint32(w, entry.Timestamp); err != nil {
			return err
		}
		if err := writeNetAddress(w, entry.Addr); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgAddr) Decode(r io.Reader) error {
	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > MaxAddrPerMsg {
		return fmt.Errorf("%w: %d addresses", ErrCountTooLarge, count)
	}
	addresses := make([]TimestampedAddress, 0, count)
	for i := uint64(0); i < count; i++ {
		ts, err := readUint32(r)
		if err != nil {
			return err
		}
		na, err := readNetAddress(r)
		if err != nil {
			return err
		}
		addresses = append(addresses, TimestampedAddress{Timestamp: ts, Addr: na})
	}
	m.Addresses = addresses
	return nil
}
