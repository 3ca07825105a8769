package wire

import (
	"errors"
	"testing"
)

func TestCommandRoundTrip(t *testing.T) {
	for _, command := range []string{"a", "ping", "getheaders", "filterload12"} {
		buf, err := EncodeCommand(command)
		if err != nil {
			t.Fatalf("encode %q: %v", command, err)
		}
		got, err := DecodeCommand(buf)
		if err != nil {
			t.Fatalf("decode %q: %v", command, err)
		}
		if got != command {
			t.Fatalf("round trip mismatch: got %q want %q", got, command)
		}
	}
}

func TestCommandZeroPadding(t *testing.T) {
	buf, err := EncodeCommand("ping")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for i := 4; i < CommandSize; i++ {
		if buf[i] != 0 {
			t.Fatalf("byte %d not zero padded: %#x", i, buf[i])
		}
	}
}

func TestEncodeCommandRejectsEmpty(t *testing.T) {
	if _, err := EncodeCommand(""); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}

func TestEncodeCommandRejectsOverlong(t *testing.T) {
	if _, err := EncodeCommand("thirteenchars"); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}

func TestDecodeCommandRejectsAllZero(t *testing.T) {
	var buf [CommandSize]byte
	if _, err := DecodeCommand(buf); !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("expected ErrInvalidCommand, got %v", err)
	}
}
