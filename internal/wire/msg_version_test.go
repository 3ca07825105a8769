package wire

import (
	"bytes"
	"errors"
	"net"
	"strings"
	"testing"
)

func TestVersionRoundTrip(t *testing.T) {
	in := &MsgVersion{
		ProtocolVersion: 70015,
		Services:        SFNodeNetwork,
		Timestamp:       1231006505,
		AddrYou: NetAddress{
			Services: SFNodeNetwork,
			IP:       net.ParseIP("203.0.113.7"),
			Port:     8333,
		},
		AddrMe: NetAddress{
			Services: SFNodeNetwork,
			IP:       net.ParseIP("2001:db8::1"),
			Port:     18333,
		},
		Nonce:     0xdeadbeefcafe,
		UserAgent: "/chainwire:0.1.0/",
		LastBlock: 812345,
	}

	var buf bytes.Buffer
	if err := in.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out MsgVersion
	if err := out.Decode(&buf); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if out.ProtocolVersion != in.ProtocolVersion || out.Services != in.Services ||
		out.Timestamp != in.Timestamp || out.Nonce != in.Nonce ||
		out.UserAgent != in.UserAgent || out.LastBlock != in.LastBlock {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if !out.AddrYou.IP.Equal(in.AddrYou.IP) || out.AddrYou.Port != in.AddrYou.Port {
		t.Fatalf("addr_you mismatch: %+v", out.AddrYou)
	}
	if !out.AddrMe.IP.Equal(in.AddrMe.IP) || out.AddrMe.Port != in.AddrMe.Port {
		t.Fatalf("addr_me mismatch: %+v", out.AddrMe)
	}
}

func TestVersionRejectsOverlongUserAgent(t *testing.T) {
	in := &MsgVersion{UserAgent: strings.Repeat("x", MaxUserAgentLen+1)}
	var buf bytes.Buffer
	if err := in.Encode(&buf); !errors.Is(err, ErrCountTooLarge) {
		t.Fatalf("expected ErrCountTooLarge, got %v", err)
	}
}

func TestAddrRoundTrip(t *testing.T) {
	in := &MsgAddr{Addresses: []TimestampedAddress{
		{
			Timestamp: 1700000000,
			Addr: NetAddress{
				Services: SFNodeNetwork,
				IP:       net.ParseIP("198.51.100.4"),
				Port:     8333,
			},
		},
	}}
	var buf bytes.Buffer
	if err := in.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out MsgAddr
	if err := out.Decode(&buf); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Addresses) != 1 {
		t.Fatalf("entry count mismatch: %d", len(out.Addresses))
	}
	got := out.Addresses[0]
	if got.Timestamp != 1700000000 || got.Addr.Port != 8333 || !got.Addr.IP.Equal(in.Addresses[0].Addr.IP) {
		t.Fatalf("entry mismatch: %+v", got)
	}
}

func TestAddrRejectsImplausibleCount(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteVarInt(&buf, MaxAddrPerMsg+1); err != nil {
		t.Fatalf("write count: %v", err)
	}
	var out MsgAddr
	if err := out.Decode(&buf); !errors.Is(err, ErrCountTooLarge) {
		t.Fatalf("expected ErrCountTooLarge, got %v", err)
	}
}
