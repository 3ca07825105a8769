package peer

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"testing"
	"time"

	"github.com/danmuck/chainwire/internal/testutil/testlog"
	"github.com/danmuck/chainwire/internal/wire"
)

func pipePeers(t *testing.T) (*Peer, *Peer) {
	t.Helper()
	testlog.Start(t)
	left, right := net.Pipe()
	cfg := DefaultConfig(wire.SimNet)
	cfg.ReadTimeout = 2 * time.Second
	cfg.WriteTimeout = 2 * time.Second
	a := New(left, cfg)
	b := New(right, cfg)
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return a, b
}

func TestPeerMessageRoundTrip(t *testing.T) {
	a, b := pipePeers(t)

	done := make(chan error, 1)
	go func() {
		done <- a.WriteMessage(&wire.MsgPing{Nonce: 7})
	}()

	msg, err := b.ReadMessage(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	ping, ok := msg.(*wire.MsgPing)
	if !ok {
		t.Fatalf("expected *wire.MsgPing, got %T", msg)
	}
	if ping.Nonce != 7 {
		t.Fatalf("nonce mismatch: %d", ping.Nonce)
	}
	if got := b.Stats().MessagesIn.Load(); got != 1 {
		t.Fatalf("messages in counter: %d", got)
	}
	if got := a.Stats().MessagesOut.Load(); got != 1 {
		t.Fatalf("messages out counter: %d", got)
	}
}

func TestPeerWrongNetworkIsFatal(t *testing.T) {
	testlog.Start(t)
	left, right := net.Pipe()
	t.Cleanup(func() {
		left.Close()
		right.Close()
	})

	sender := New(left, DefaultConfig(wire.MainNet))
	receiverCfg := DefaultConfig(wire.TestNet3)
	receiverCfg.ReadTimeout = 2 * time.Second
	receiver := New(right, receiverCfg)

	go sender.WriteMessage(&wire.MsgVerAck{})

	_, err := receiver.ReadMessage(context.Background())
	if !errors.Is(err, wire.ErrProtocolMismatch) {
		t.Fatalf("expected ErrProtocolMismatch, got %v", err)
	}
}

func TestPeerReadCanceledByContext(t *testing.T) {
	_, b := pipePeers(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// The limiter wait observes the canceled context before any bytes
	// are read.
	if _, err := b.ReadMessage(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNextBackoffDelayGrowsAndCaps(t *testing.T) {
	cfg := BackoffConfig{
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     500 * time.Millisecond,
	}
	if got := NextBackoffDelay(cfg, 1, nil); got != 100*time.Millisecond {
		t.Fatalf("attempt 1: %v", got)
	}
	if got := NextBackoffDelay(cfg, 2, nil); got != 200*time.Millisecond {
		t.Fatalf("attempt 2: %v", got)
	}
	if got := NextBackoffDelay(cfg, 10, nil); got != 500*time.Millisecond {
		t.Fatalf("attempt 10 not capped: %v", got)
	}
}

func TestNextBackoffDelayJitterStaysBounded(t *testing.T) {
	cfg := BackoffConfig{
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     time.Second,
		Jitter:       true,
	}
	rng := rand.New(rand.NewSource(1))
	for attempt := 2; attempt < 8; attempt++ {
		got := NextBackoffDelay(cfg, attempt, rng)
		if got < 0 || got > 1500*time.Millisecond {
			t.Fatalf("attempt %d out of bounds: %v", attempt, got)
		}
	}
}

func TestValidateTransportProductionRequiresTLS(t *testing.T) {
	cfg := DefaultConfig(wire.MainNet)
	cfg.SecurityMode = SecurityModeProduction
	if err := cfg.ValidateTransport(); !errors.Is(err, ErrTLSRequired) {
		t.Fatalf("expected ErrTLSRequired, got %v", err)
	}

	cfg.TLS.Enabled = true
	cfg.TLS.CAFile = "ca.pem"
	if err := cfg.ValidateTransport(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.TLS.Mutual = true
	if err := cfg.ValidateTransport(); !errors.Is(err, ErrTLSCertFileRequired) {
		t.Fatalf("expected ErrTLSCertFileRequired, got %v", err)
	}
}

func TestValidateTransportRejectsUnknownMode(t *testing.T) {
	cfg := DefaultConfig(wire.MainNet)
	cfg.SecurityMode = "paranoid"
	if err := cfg.ValidateTransport(); !errors.Is(err, ErrInvalidSecurityMode) {
		t.Fatalf("expected ErrInvalidSecurityMode, got %v", err)
	}
}
