package wire

import (
	"fmt"
	"io"
)

// MaxBlockLocatorsPerMsg bounds the declared locator count before any
// allocation happens. A remote peer controls the count field, so it is
// never trusted to size a buffer directly.
const MaxBlockLocatorsPerMsg = 500

// MsgGetHeaders requests block headers starting after the most recent
// locator hash the responder recognizes, up to HashStop. A zero HashStop
// means "as many as the responder is willing to send". Treat the value
// as immutable once built.
type MsgGetHeaders struct {
	Version  uint32
	Locators []Hash
	HashStop Hash
}

// NewMsgGetHeaders builds a request with HashStop left at the zero
// sentinel.
func NewMsgGetHeaders(version uint32, locators ...Hash) *MsgGetHeaders {
	return &MsgGetHeaders{Version: version, Locators: locators}
}

func (m *MsgGetHeaders) Command() string {
	return CmdGetHeaders
}

func (m *MsgGetHeaders) Encode(w io.Writer) error {
	return encodeLocatorRequest(w, m.Version, m.Locators, m.HashStop)
}

func (m *MsgGetHeaders) Decode(r io.Reader) error {
	version, locators, stop, err := decodeLocatorRequest(r)
	if err != nil {
		return err
	}
	m.Version = version
	m.Locators = locators
	m.HashStop = stop
	return nil
}

func encodeLocatorRequest(w io.Writer, version uint32, locators []Hash, stop Hash) error {
	if len(locators) > MaxBlockLocatorsPerMsg {
		return fmt.Errorf("%w: %d locators", ErrCountTooLarge, len(locators))
	}
	if err := writeUint32(w, version); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(locators))); err != nil {
		return err
	}
	for _, h := range locators {
		if err := writeHash(w, h); err != nil {
			return err
		}
	}
	return writeHash(w, stop)
}

func decodeLocatorRequest(r io.Reader) (uint32, []Hash, Hash, error) {
	version, err := readUint32(r)
	if err != nil {
		return 0, nil, Hash{}, err
	}
	count, err := ReadVarInt(r)
	if err != nil {
		return 0, nil, Hash{}, err
	}
	if count > MaxBlockLocatorsPerMsg {
		return 0, nil, Hash{}, fmt.Errorf("%w: %d locators", ErrCountTooLarge, count)
	}
	locators := make([]Hash, 0, count)
	for i := uint64(0); i < count; i++ {
		h, err := readHash(r)
		if err != nil {
			return 0, nil, Hash{}, err
		}
		locators = append(locators, h)
	}
	stop, err := readHash(r)
	if err != nil {
		return 0, nil, Hash{}, err
	}
	return version, locators, stop, nil
}
