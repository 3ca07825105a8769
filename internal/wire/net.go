package wire

import "fmt"

// Network identifies which network a frame belongs to. The value is the
// 4-byte magic written at the start of every envelope.
type Network uint32

const (
	MainNet  Network = 0xd9b4bef9
	TestNet3 Network = 0x0709110b
	RegTest  Network = 0xdab5bffa
	SimNet   Network = 0x12141c16
)

func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet3:
		return "testnet3"
	case RegTest:
		return "regtest"
	case SimNet:
		return "simnet"
	default:
		return fmt.Sprintf("unknown(0x%08x)", uint32(n))
	}
}
