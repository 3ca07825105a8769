package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/chainwire/internal/logging"
)

// Start configures quiet test logging and marks the test boundary.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}
