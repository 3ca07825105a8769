package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/chainwire/internal/config"
	"github.com/danmuck/chainwire/internal/logging"
	"github.com/danmuck/chainwire/internal/wire"
)

const usage = `wirectl <command> [flags]

commands:
  init        write a default node config
  decode      decode hex-encoded frames from stdin or -frame
  getheaders  craft a getheaders frame from locator hashes
  ping        craft a ping frame
`

func main() {
	// Optional .env for CHAINWIRE_LOG_* overrides; absence is fine.
	_ = godotenv.Load()
	logging.ConfigureRuntime()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "getheaders":
		err = runGetHeaders(os.Args[2:])
	case "ping":
		err = runPing(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("wirectl failed")
	}
}

func loadConfig(path string) (config.NodeConfig, error) {
	if path == "" {
		return config.DefaultNodeConfig(), nil
	}
	return config.LoadNodeConfig(path)
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	output := fs.String("output", "node.toml", "output path for the config template")
	force := fs.Bool("force", false, "overwrite an existing config file")
	fs.Parse(args)

	if err := config.WriteTemplate(*output, *force); err != nil {
		return err
	}
	log.Info().Str("path", *output).Msg("wrote node config")
	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	configPath := fs.String("config", "", "node config path")
	frameHex := fs.String("frame", "", "hex frame; stdin is read when empty")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	raw := *frameHex
	if raw == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		raw = string(data)
	}
	frame, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	limits := wire.Limits{MaxPayloadBytes: cfg.MaxPayloadBytes}
	registry := wire.CoreRegistry()
	r := bytes.NewReader(frame)
	for r.Len() > 0 {
		msg, err := registry.ReadMessage(r, params.Net, limits)
		if err != nil {
			return err
		}
		describe(msg, params.Net)
	}
	return nil
}

func describe(msg wire.Message, net wire.Network) {
	event := log.Info().Str("network", net.String()).Str("command", msg.Command())
	switch m := msg.(type) {
	case *wire.MsgGetHeaders:
		event = event.Uint32("version", m.Version).Int("locators", len(m.Locators)).
			Str("hash_stop", m.HashStop.String())
	case *wire.MsgGetBlocks:
		event = event.Uint32("version", m.Version).Int("locators", len(m.Locators)).
			Str("hash_stop", m.HashStop.String())
	case *wire.MsgPing:
		event = event.Uint64("nonce", m.Nonce)
	case *wire.MsgPong:
		event = event.Uint64("nonce", m.Nonce)
	case *wire.MsgInv:
		event = event.Int("inventory", len(m.Inventory))
	case *wire.MsgVersion:
		event = event.Uint32("protocol", m.ProtocolVersion).Str("user_agent", m.UserAgent)
	case *wire.MsgAddr:
		event = event.Int("addresses", len(m.Addresses))
	case *wire.Opaque:
		event = event.Int("payload_bytes", len(m.Payload)).Bool("opaque", true)
	}
	event.Msg("decoded frame")
}

func runGetHeaders(args []string) error {
	fs := flag.NewFlagSet("getheaders", flag.ExitOnError)
	configPath := fs.String("config", "", "node config path")
	version := fs.Uint("version", 70015, "protocol version")
	locators := fs.String("locators", "", "comma-separated locator hashes, newest first")
	stop := fs.String("stop", "", "hash stop; zero hash when empty")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}

	var hashes []wire.Hash
	for _, raw := range strings.Split(*locators, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		h, err := wire.NewHashFromString(raw)
		if err != nil {
			return err
		}
		hashes = append(hashes, h)
	}

	msg := wire.NewMsgGetHeaders(uint32(*version), hashes...)
	if *stop != "" {
		h, err := wire.NewHashFromString(strings.TrimSpace(*stop))
		if err != nil {
			return err
		}
		msg.HashStop = h
	}

	return emit(msg, params.Net, cfg.MaxPayloadBytes)
}

func runPing(args []string) error {
	fs := flag.NewFlagSet("ping", flag.ExitOnError)
	configPath := fs.String("config", "", "node config path")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	return emit(&wire.MsgPing{Nonce: rand.Uint64()}, params.Net, cfg.MaxPayloadBytes)
}

func emit(msg wire.Message, net wire.Network, maxPayload uint32) error {
	var buf bytes.Buffer
	if err := wire.EncodeMessage(&buf, net, msg, wire.Limits{MaxPayloadBytes: maxPayload}); err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(buf.Bytes()))
	return nil
}
