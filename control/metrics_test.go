package control_test

import (
	"bytes"
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/control"
	"github.com/momentics/hioload-net/socket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestResultMetricsCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := control.NewResultMetrics(reg)
	assert.NilError(t, err)

	m.Observe("read", api.ResultSuccess)
	m.Observe("read", api.ResultSuccess)
	m.Observe("read", api.ResultWouldBlock)

	assert.Equal(t, testutil.ToFloat64(m.Counter("read", api.ResultSuccess)), 2.0)
	assert.Equal(t, testutil.ToFloat64(m.Counter("read", api.ResultWouldBlock)), 1.0)

	snap, updated := m.Snapshot()
	assert.Equal(t, snap[control.OpResult{Op: "read", Result: api.ResultSuccess}], uint64(2))
	assert.Assert(t, !updated.IsZero())

	_, err = control.NewResultMetrics(reg)
	assert.Assert(t, err != nil, "second registration must collide")
}

func TestResultMetricsAsObserver(t *testing.T) {
	useFake(t)
	m, err := control.NewResultMetrics(nil)
	assert.NilError(t, err)
	socket.SetObserver(m)
	t.Cleanup(func() { socket.SetObserver(nil) })

	h, err := socket.Open(api.ProtocolTCP, api.FamilyIPv4)
	assert.NilError(t, err)
	_ = socket.Listen(h, -1)

	snap, _ := m.Snapshot()
	assert.Equal(t, snap[control.OpResult{Op: "open", Result: api.ResultSuccess}], uint64(1))
	assert.Equal(t, snap[control.OpResult{Op: "listen", Result: api.ResultInvalidInputParam}], uint64(1))
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	log, err := control.NewLogger(control.LogConfig{Level: "warn"}, &out)
	assert.NilError(t, err)
	log.Info().Msg("hidden")
	log.Warn().Str("op", "bind").Msg("shown")
	assert.Assert(t, !bytes.Contains(out.Bytes(), []byte("hidden")))
	assert.Assert(t, is.Contains(out.String(), `"op":"bind"`))

	_, err = control.NewLogger(control.LogConfig{Level: "loud"}, &out)
	assert.Assert(t, err != nil)
}
