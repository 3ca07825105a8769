package peer

import (
	"time"

	"github.com/danmuck/chainwire/internal/wire"
)

// BackoffConfig defines reconnect backoff behavior.
type BackoffConfig struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
	Jitter       bool
}

// TLSConfig declares how a connection is tunneled when the wire
// protocol runs over TLS.
type TLSConfig struct {
	Enabled            bool
	Mutual             bool
	CertFile           string
	KeyFile            string
	CAFile             string
	InsecureSkipVerify bool
}

// Config bounds one connection's transport behavior.
type Config struct {
	Network           wire.Network
	Registry          *wire.Registry
	Limits            wire.Limits
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	MessagesPerSecond float64
	MessageBurst      int
	SecurityMode      SecurityMode
	TLS               TLSConfig
	Backoff           BackoffConfig
}

// DefaultConfig returns transport defaults for the given network.
func DefaultConfig(network wire.Network) Config {
	return Config{
		Network:           network,
		Registry:          wire.CoreRegistry(),
		Limits:            wire.DefaultLimits(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		MessagesPerSecond: 50,
		MessageBurst:      100,
		Backoff: BackoffConfig{
			InitialDelay: 250 * time.Millisecond,
			Multiplier:   2.0,
			MaxDelay:     30 * time.Second,
			Jitter:       true,
		},
	}
}
