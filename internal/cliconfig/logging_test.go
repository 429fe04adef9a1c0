package cliconfig

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buff bytes.Buffer

	log := NewLogger(&buff, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buff.String(), "hidden", "debug messages should not be logged unless verbose")
	assert.Contains(t, buff.String(), "shown")

	buff.Reset()

	log = NewLogger(&buff, true)
	log.Debug().Msg("detail")
	assert.Contains(t, buff.String(), "detail", "debug messages should be logged when verbose")
}
