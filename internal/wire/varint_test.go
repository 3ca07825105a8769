package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestVarIntRoundTripBoundaries(t *testing.T) {
	values := []uint64{0, 1, 252, 253, 65535, 65536, 4294967295, 4294967296, ^uint64(0)}
	for _, v := range values {
		var buf bytes.Buffer
		if err := WriteVarInt(&buf, v); err != nil {
			t.Fatalf("write %d: %v", v, err)
		}
		if buf.Len() != VarIntSerializeSize(v) {
			t.Fatalf("value %d: wrote %d bytes, size func says %d", v, buf.Len(), VarIntSerializeSize(v))
		}
		got, err := ReadVarInt(&buf)
		if err != nil {
			t.Fatalf("read %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip mismatch: got %d want %d", got, v)
		}
	}
}

func TestVarIntPrefixWidths(t *testing.T) {
	cases := []struct {
		value uint64
		width int
	}{
		{0, 1},
		{252, 1},
		{253, 3},
		{65535, 3},
		{65536, 5},
		{4294967295, 5},
		{4294967296, 9},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := WriteVarInt(&buf, tc.value); err != nil {
			t.Fatalf("write %d: %v", tc.value, err)
		}
		if buf.Len() != tc.width {
			t.Fatalf("value %d: got width %d want %d", tc.value, buf.Len(), tc.width)
		}
	}
}

func TestVarIntUnderflow(t *testing.T) {
	// 0xfd prefix promises two more bytes but only one follows.
	_, err := ReadVarInt(bytes.NewReader([]byte{0xfd, 0x01}))
	if !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
}

func TestVarIntAcceptsNonMinimalEncoding(t *testing.T) {
	// 5 redundantly encoded with the 4-byte prefix form.
	got, err := ReadVarInt(bytes.NewReader([]byte{0xfe, 0x05, 0x00, 0x00, 0x00}))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 5 {
		t.Fatalf("got %d want 5", got)
	}
}

func TestVarStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVarString(&buf, "/chainwire:0.1.0/"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadVarString(&buf, 64)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "/chainwire:0.1.0/" {
		t.Fatalf("got %q", got)
	}
}

func TestVarStringLengthBound(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVarString(&buf, "0123456789"); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := ReadVarString(&buf, 4)
	if !errors.Is(err, ErrCountTooLarge) {
		t.Fatalf("expected ErrCountTooLarge, got %v", err)
	}
}
