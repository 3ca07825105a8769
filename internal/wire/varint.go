package wire

import "io"

// MaxVarIntBytes is the widest serialized form of a compact-size integer.
const MaxVarIntBytes = 9

// ReadVarInt reads a compact-size unsigned integer: one byte for values
// up to 0xFC, otherwise a 0xFD/0xFE/0xFF prefix selecting a 2/4/8 byte
// little-endian value. Non-minimal encodings are accepted.
func ReadVarInt(r io.Reader) (uint64, error) {
	prefix, err := readUint8(r)
	if err != nil {
		return 0, err
	}
	switch prefix {
	case 0xfd:
		v, err := readUint16(r)
		if err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xfe:
		v, err := readUint32(r)
		if err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xff:
		return readUint64(r)
	default:
		return uint64(prefix), nil
	}
}

// WriteVarInt writes v in its minimal compact-size form.
func WriteVarInt(w io.Writer, v uint64) error {
	switch {
	case v <= 0xfc:
		return writeUint8(w, uint8(v))
	case v <= 0xffff:
		if err := writeUint8(w, 0xfd); err != nil {
			return err
		}
		return writeUint16(w, uint16(v))
	case v <= 0xffffffff:
		if err := writeUint8(w, 0xfe); err != nil {
			return err
		}
		return writeUint32(w, uint32(v))
	default:
		if err := writeUint8(w, 0xff); err != nil {
			return err
		}
		return writeUint64(w, v)
	}
}

// VarIntSerializeSize returns the number of bytes WriteVarInt emits for v.
func VarIntSerializeSize(v uint64) int {
	switch {
	case v <= 0xfc:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// ReadVarString reads a compact-size length followed by that many bytes,
// rejecting lengths above maxLen before allocating.
func ReadVarString(r io.Reader, maxLen uint64) (string, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}
	if n > maxLen {
		return "", ErrCountTooLarge
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteVarString writes a compact-size length followed by the string bytes.
func WriteVarString(w io.Writer, s string) error {
	if err := WriteVarInt(w, uint64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
