package wire

import (
	"fmt"
	"io"
)

// MaxUserAgentLen bounds the version user agent string.
const MaxUserAgentLen = 256

// MsgVersion opens the handshake and declares what the sender speaks.
// AddrYou is the receiver as seen by the sender; AddrMe is the sender's
// own endpoint.
type MsgVersion struct {
	ProtocolVersion uint32
	Services        ServiceFlag
	Timestamp       int64
	AddrYou         NetAddress
	AddrMe          NetAddress
	Nonce           uint64
	UserAgent       string
	LastBlock       uint32
}

func (m *MsgVersion) Command() string {
	return CmdVersion
}

func (m *MsgVersion) Encode(w io.Writer) error {
	if len(m.UserAgent) > MaxUserAgentLen {
		return fmt.Errorf("%w: user agent %d bytes", ErrCountTooLarge, len(m.UserAgent))
	}
	if err := writeUint32(w, m.ProtocolVersion); err != nil {
		return err
	}
	if err := writeUint64(w, uint64(m.Services)); err != nil {
		return err
	}
	if err := writeUint64(w, uint64(m.Timestamp)); err != nil {
		return err
	}
	if err := writeNetAddress(w, m.AddrYou); err != nil {
		return err
	}
	if err := writeNetAddress(w, m.AddrMe); err != nil {
		return err
	}
	if err := writeUint64(w, m.Nonce); err != nil {
		return err
	}
	if err := WriteVarString(w, m.UserAgent); err != nil {
		return err
	}
	return writeUint32(w, m.LastBlock)
}

func (m *MsgVersion) Decode(r io.Reader) error {
	version, err := readUint32(r)
	if err != nil {
		return err
	}
	services, err := readUint64(r)
	if err != nil {
		return err
	}
	timestamp, err := readUint64(r)
	if err != nil {
		return err
	}
	addrYou, err := readNetAddress(r)
	if err != nil {
		return err
	}
	addrMe, err := readNetAddress(r)
	if err != nil {
		return err
	}
	nonce, err := readUint64(r)
	if err != nil {
		return err
	}
	userAgent, err := ReadVarString(r, MaxUserAgentLen)
	if err != nil {
		return err
	}
	lastBlock, err := readUint32(r)
	if err != nil {
		return err
	}

	m.ProtocolVersion = version
	m.Services = ServiceFlag(services)
	m.Timestamp = int64(timestamp)
	m.AddrYou = addrYou
	m.AddrMe = addrMe
	m.Nonce = nonce
	m.UserAgent = userAgent
	m.LastBlock = lastBlock
	return nil
}
