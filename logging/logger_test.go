package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teknopark/matchmaking-contract-tests/framework"
)

func TestInfoIsAlwaysWritten(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{NoColor: true, RunID: "r1"})
	logger.Info().Str("base_url", "http://x").Msg("starting")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "starting")
	assert.Contains(t, out, "base_url=http://x")
	assert.Contains(t, out, "run_id=r1")
}

func TestPrintfIsDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{NoColor: true})
	var l framework.Logger = &logger
	l.Printf("hidden %d", 1)
	assert.Equal(t, "", buf.String())

	buf.Reset()
	logger = New(&buf, Options{NoColor: true, Debug: true})
	l = &logger
	l.Printf("shown %d", 2)
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestElapsedIsRounded(t *testing.T) {
	d := Elapsed(time.Now().Add(-time.Millisecond * 1500))
	assert.Equal(t, time.Duration(0), d%time.Millisecond)
	assert.GreaterOrEqual(t, d, time.Millisecond*1500)
}
