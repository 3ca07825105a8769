package wire

import "io"

// MsgGetBlocks requests inventory for blocks after the best-known
// locator hash. The payload layout is identical to getheaders.
type MsgGetBlocks struct {
	Version  uint32
	Locators []Hash
	HashStop Hash
}

// NewMsgGetBlocks builds a request with HashStop left at the zero
// sentinel.
func NewMsgGetBlocks(version uint32, locators ...Hash) *MsgGetBlocks {
	return &MsgGetBlocks{Version: version, Locators: locators}
}

func (m *MsgGetBlocks) Command() string {
	return CmdGetBlocks
}

func (m *MsgGetBlocks) Encode(w io.Writer) error {
	return encodeLocatorRequest(w, m.Version, m.Locators, m.HashStop)
}

func (m *MsgGetBlocks) Decode(r io.Reader) error {
	version, locators, stop, err := decodeLocatorRequest(r)
	if err != nil {
		return err
	}
	m.Version = version
	m.Locators = locators
	m.HashStop = stop
	return nil
}
