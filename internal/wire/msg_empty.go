package wire

import "io"

// Messages whose entire meaning is their command string. Their payloads
// are empty on the wire.

// MsgVerAck acknowledges a version message.
type MsgVerAck struct{}

func (m *MsgVerAck) Command() string        { return CmdVerAck }
func (m *MsgVerAck) Encode(io.Writer) error { return nil }
func (m *MsgVerAck) Decode(io.Reader) error { return nil }

// MsgGetAddr asks a peer for addresses of other nodes it knows.
type MsgGetAddr struct{}

func (m *MsgGetAddr) Command() string        { return CmdGetAddr }
func (m *MsgGetAddr) Encode(io.Writer) error { return nil }
func (m *MsgGetAddr) Decode(io.Reader) error { return nil }

// MsgMemPool asks a peer to advertise its mempool contents.
type MsgMemPool struct{}

func (m *MsgMemPool) Command() string        { return CmdMemPool }
func (m *MsgMemPool) Encode(io.Writer) error { return nil }
func (m *MsgMemPool) Decode(io.Reader) error { return nil }
