package config

import (
	"fmt"
	"os"
)

const nodeTemplate = `# chainwire node configuration

# Network to speak on: mainnet, testnet3, regtest or simnet.
network = "mainnet"

# Upper bound for a single message payload, in bytes.
max_payload_bytes = 33554432

[peer]
read_timeout = "15s"
write_timeout = "15s"
messages_per_second = 50.0
message_burst = 100
`

// WriteTemplate writes the default node config to path. An existing
// file is preserved unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(nodeTemplate), 0o600)
}
