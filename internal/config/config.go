package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/chainwire/internal/netparams"
)

// NodeConfig is the node-level wire configuration.
type NodeConfig struct {
	Network         string     `toml:"network"`
	MaxPayloadBytes uint32     `toml:"max_payload_bytes"`
	Peer            PeerConfig `toml:"peer"`
}

// PeerConfig bounds per-connection behavior.
type PeerConfig struct {
	ReadTimeout       string  `toml:"read_timeout"`
	WriteTimeout      string  `toml:"write_timeout"`
	MessagesPerSecond float64 `toml:"messages_per_second"`
	MessageBurst      int     `toml:"message_burst"`
}

// LoadNodeConfig reads path, fills defaults and validates the result.
func LoadNodeConfig(path string) (NodeConfig, error) {
	var cfg NodeConfig
	if err := loadToml(path, &cfg); err != nil {
		return NodeConfig{}, err
	}
	applyDefaults(&cfg)
	if err := ValidateNodeConfig(cfg); err != nil {
		return NodeConfig{}, err
	}
	return cfg, nil
}

// DefaultNodeConfig returns the configuration used when no file is given.
func DefaultNodeConfig() NodeConfig {
	var cfg NodeConfig
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *NodeConfig) {
	if cfg.Network == "" {
		cfg.Network = netparams.MainNetParams.Name
	}
	if cfg.MaxPayloadBytes == 0 {
		cfg.MaxPayloadBytes = 32 * 1024 * 1024
	}
	if cfg.Peer.ReadTimeout == "" {
		cfg.Peer.ReadTimeout = "15s"
	}
	if cfg.Peer.WriteTimeout == "" {
		cfg.Peer.WriteTimeout = "15s"
	}
	if cfg.Peer.MessagesPerSecond == 0 {
		cfg.Peer.MessagesPerSecond = 50
	}
	if cfg.Peer.MessageBurst == 0 {
		cfg.Peer.MessageBurst = 100
	}
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateNodeConfig rejects configurations the wire layer cannot run
// with.
func ValidateNodeConfig(cfg NodeConfig) error {
	if _, err := netparams.ByName(strings.TrimSpace(cfg.Network)); err != nil {
		return err
	}
	if _, err := time.ParseDuration(cfg.Peer.ReadTimeout); err != nil {
		return fmt.Errorf("invalid peer read_timeout: %w", err)
	}
	if _, err := time.ParseDuration(cfg.Peer.WriteTimeout); err != nil {
		return fmt.Errorf("invalid peer write_timeout: %w", err)
	}
	if cfg.Peer.MessagesPerSecond < 0 {
		return fmt.Errorf("messages_per_second must not be negative")
	}
	if cfg.Peer.MessageBurst < 0 {
		return fmt.Errorf("message_burst must not be negative")
	}
	return nil
}

// Params resolves the configured network.
func (cfg NodeConfig) Params() (netparams.Params, error) {
	return netparams.ByName(strings.TrimSpace(cfg.Network))
}

// ReadTimeoutDuration parses the validated read timeout.
func (cfg NodeConfig) ReadTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(cfg.Peer.ReadTimeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// WriteTimeoutDuration parses the validated write timeout.
func (cfg NodeConfig) WriteTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(cfg.Peer.WriteTimeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}
