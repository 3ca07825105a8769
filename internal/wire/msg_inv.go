package wire

import (
	"fmt"
	"io"
)

// MsgInv advertises inventory a peer has. MsgGetData requests it and
// MsgNotFound reports requested inventory the peer cannot serve; all
// three share the vector-list payload.
type MsgInv struct {
	Inventory []InvVect
}

func (m *MsgInv) Command() string {
	return CmdInv
}

func (m *MsgInv) Encode(w io.Writer) error {
	return encodeInvList(w, m.Inventory)
}

func (m *MsgInv) Decode(r io.Reader) error {
	inv, err := decodeInvList(r)
	if err != nil {
		return err
	}
	m.Inventory = inv
	return nil
}

type MsgGetData struct {
	Inventory []InvVect
}

func (m *MsgGetData) Command() string {
	return CmdGetData
}

func (m *MsgGetData) Encode(w io.Writer) error {
	return encodeInvList(w, m.Inventory)
}

func (m *MsgGetData) Decode(r io.Reader) error {
	inv, err := decodeInvList(r)
	if err != nil {
		return err
	}
	m.Inventory = inv
	return nil
}

type MsgNotFound struct {
	Inventory []InvVect
}

func (m *MsgNotFound) Command() string {
	return CmdNotFound
}

func (m *MsgNotFound) Encode(w io.Writer) error {
	return encodeInvList(w, m.Inventory)
}

func (m *MsgNotFound) Decode(r io.Reader) error {
	inv, err := decodeInvList(r)
	if err != nil {
		return err
	}
	m.Inventory = inv
	return nil
}

func encodeInvList(w io.Writer, inv []InvVect) error {
	if len(inv) > MaxInvPerMsg {
		return fmt.Errorf("%w: %d inventory vectors", ErrCountTooLarge, len(inv))
	}
	if err := WriteVarInt(w, uint64(len(inv))); err != nil {
		return err
	}
	for _, iv := range inv {
		if err := writeUint32(w, uint32(iv.Type)); err != nil {
			return err
		}
		if err := writeHash(w, iv.Hash); err != nil {
			return err
		}
	}
	return nil
}

func decodeInvList(r io.Reader) ([]InvVect, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > MaxInvPerMsg {
		return nil, fmt.Errorf("%w: %d inventory vectors", ErrCountTooLarge, count)
	}
	inv := make([]InvVect, 0, count)
	for i := uint64(0); i < count; i++ {
		typ, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		h, err := readHash(r)
		if err != nil {
			return nil, err
		}
		inv = append(inv, InvVect{Type: InvType(typ), Hash: h})
	}
	return inv, nil
}
