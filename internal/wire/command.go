package wire

import "fmt"

// CommandSize is the fixed width of the command field. Shorter commands
// are zero padded on the wire.
const CommandSize = 12

// EncodeCommand left-justifies command into a 12-byte zero-filled buffer.
func EncodeCommand(command string) ([CommandSize]byte, error) {
	var buf [CommandSize]byte
	if len(command) == 0 || len(command) > CommandSize {
		return buf, fmt.Errorf("%w: %q", ErrInvalidCommand, command)
	}
	copy(buf[:], command)
	return buf, nil
}

// DecodeCommand strips trailing zero padding and returns the command
// string. An all-zero buffer is invalid.
func DecodeCommand(buf [CommandSize]byte) (string, error) {
	end := CommandSize
	for end > 0 && buf[end-1] == 0 {
		end--
	}
	if end == 0 {
		return "", fmt.Errorf("%w: empty command field", ErrInvalidCommand)
	}
	return string(buf[:end]), nil
}
