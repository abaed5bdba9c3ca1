//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package platform_test

import (
	"math"
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/internal/platform"
	"gotest.tools/v3/assert"
)

func TestPollRejectsOversizedDescriptor(t *testing.T) {
	checks := []api.Check{{Handle: api.Handle(math.MaxInt32) + 1, Requested: api.EventRead}}
	_, err := platform.Native().Poll(checks, 0)
	assert.ErrorIs(t, err, api.ResultInvalidFileDescriptor)
	assert.Equal(t, checks[0].Returned, api.Event(0))
}
