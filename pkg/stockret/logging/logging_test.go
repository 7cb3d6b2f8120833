package logging

import (
	"bytes"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", &buf, false)
	l.Info().Msg("hidden")
	l.Warn().Str("stock", "C").Msg("row rejected")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "row rejected")
	assert.Contains(t, out, "stock=")
}

func TestParseLevelFallback(t *testing.T) {
	assert.Equal(t, log.InfoLevel, parseLevel("loud"))
	assert.Equal(t, log.DebugLevel, parseLevel("debug"))
	assert.Equal(t, log.ErrorLevel, parseLevel("error"))
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error().Msg("nothing")
}
