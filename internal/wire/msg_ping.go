package wire

import "io"

// MsgPing probes liveness. The nonce ties a pong back to the ping that
// prompted it.
type MsgPing struct {
	Nonce uint64
}

func (m *MsgPing) Command() string {
	return CmdPing
}

func (m *MsgPing) Encode(w io.Writer) error {
	return writeUint64(w, m.Nonce)
}

func (m *MsgPing) Decode(r io.Reader) error {
	nonce, err := readUint64(r)
	if err != nil {
		return err
	}
	m.Nonce = nonce
	return nil
}

// MsgPong answers a ping, echoing its nonce.
type MsgPong struct {
	Nonce uint64
}

func (m *MsgPong) Command() string {
	return CmdPong
}

func (m *MsgPong) Encode(w io.Writer) error {
	return writeUint64(w, m.Nonce)
}

func (m *MsgPong) Decode(r io.Reader) error {
	nonce, err := readUint64(r)
	if err != nil {
		return err
	}
	m.Nonce = nonce
	return nil
}
