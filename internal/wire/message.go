package wire

import (
	"bytes"
	"io"
)

// Known command strings. Commands without a codec in this package still
// round through the registry as *Opaque.
const (
	CmdVersion     = "version"
	CmdVerAck      = "verack"
	CmdGetAddr     = "getaddr"
	CmdAddr        = "addr"
	CmdGetBlocks   = "getblocks"
	CmdGetHeaders  = "getheaders"
	CmdInv         = "inv"
	CmdGetData     = "getdata"
	CmdNotFound    = "notfound"
	CmdBlock       = "block"
	CmdTx          = "tx"
	CmdHeaders     = "headers"
	CmdPing        = "ping"
	CmdPong        = "pong"
	CmdMemPool     = "mempool"
	CmdMerkleBlock = "merkleblock"
	CmdFilterLoad  = "filterload"
)

// Message is one protocol payload. Implementations own their wire
// representation; framing stays in the envelope codec.
type Message interface {
	Command() string
	Encode(w io.Writer) error
	Decode(r io.Reader) error
}

// Opaque carries an unrecognized command and its payload verbatim so
// unknown messages survive a round trip instead of being dropped.
type Opaque struct {
	Cmd     string
	Payload []byte
}

func (m *Opaque) Command() string {
	return m.Cmd
}

func (m *Opaque) Encode(w io.Writer) error {
	if len(m.Payload) == 0 {
		return nil
	}
	_, err := w.Write(m.Payload)
	return err
}

func (m *Opaque) Decode(r io.Reader) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.Payload = payload
	return nil
}

// EncodeMessage frames msg as one complete wire frame on w.
func EncodeMessage(w io.Writer, net Network, msg Message, limits Limits) error {
	var payload bytes.Buffer
	if err := msg.Encode(&payload); err != nil {
		return err
	}
	return WriteEnvelope(w, net, msg.Command(), payload.Bytes(), limits)
}
