// Package netparams defines the per-network constants a node needs to
// speak the wire protocol on a given network.
package netparams

import (
	"fmt"

	"github.com/danmuck/chainwire/internal/wire"
)

// Params describes one network.
type Params struct {
	Name            string
	Net             wire.Network
	DefaultPort     string
	ProtocolVersion uint32
}

var (
	MainNetParams = Params{
		Name:            "mainnet",
		Net:             wire.MainNet,
		DefaultPort:     "8333",
		ProtocolVersion: 70015,
	}

	TestNet3Params = Params{
		Name:            "testnet3",
		Net:             wire.TestNet3,
		DefaultPort:     "18333",
		ProtocolVersion: 70015,
	}

	RegTestParams = Params{
		Name:            "regtest",
		Net:             wire.RegTest,
		DefaultPort:     "18444",
		ProtocolVersion: 70015,
	}

	SimNetParams = Params{
		Name:            "simnet",
		Net:             wire.SimNet,
		DefaultPort:     "18555",
		ProtocolVersion: 70015,
	}
)

// ByName resolves a network by its config-facing name.
func ByName(name string) (Params, error) {
	switch name {
	case MainNetParams.Name:
		return MainNetParams, nil
	case TestNet3Params.Name:
		return TestNet3Params, nil
	case RegTestParams.Name:
		return RegTestParams, nil
	case SimNetParams.Name:
		return SimNetParams, nil
	default:
		return Params{}, fmt.Errorf("netparams: unknown network %q", name)
	}
}
