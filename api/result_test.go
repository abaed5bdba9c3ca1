package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momentics/hioload-net/api"
	"gotest.tools/v3/assert"
)

func TestResultNames(t *testing.T) {
	assert.Equal(t, api.ResultSuccess.String(), "SUCCESS")
	assert.Equal(t, api.ResultWouldBlock.String(), "WOULD_BLOCK")
	assert.Equal(t, api.ResultTimedOut.String(), "TIMEDOUT")
	assert.Equal(t, api.ResultNameResolutionFailure.String(), "NAME_RESOLUTION_FAILURE")
	assert.Equal(t, api.Result(250).String(), "INTERNAL_ERROR")
	assert.Equal(t, api.ResultBufferTooSmall.Error(), "socket: BUFFER_TOO_SMALL")

	seen := map[string]bool{}
	for _, r := range api.Results() {
		name := r.String()
		assert.Assert(t, name != "", "result %d has no name", r)
		assert.Assert(t, !seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Equal(t, len(seen), 39)
}

func TestResultClasses(t *testing.T) {
	cases := map[api.Result]api.Class{
		api.ResultSuccess:               api.ClassNone,
		api.ResultInvalidInputParam:     api.ClassValidation,
		api.ResultBufferTooSmall:        api.ClassValidation,
		api.ResultWouldBlock:            api.ClassTransient,
		api.ResultInProgress:            api.ClassTransient,
		api.ResultNoFreeFileDescriptors: api.ClassResourceExhaustion,
		api.ResultSocketReset:           api.ClassPeer,
		api.ResultPlatformNotSupported:  api.ClassCapabilityGap,
		api.ResultUnknown:               api.ClassUnknown,
	}
	for r, want := range cases {
		assert.Equal(t, r.Class(), want, "%s", r)
	}
	assert.Assert(t, api.ResultInProgress.Pending())
	assert.Assert(t, !api.ResultTimedOut.Pending())
	assert.Assert(t, api.ResultTimedOut.Temporary())
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, api.ResultOf(nil), api.ResultSuccess)
	assert.Equal(t, api.ResultOf(api.ResultNoName), api.ResultNoName)
	assert.Equal(t, api.ResultOf(fmt.Errorf("bind: %w", api.ResultAccessDenied)), api.ResultAccessDenied)
	assert.Equal(t, api.ResultOf(errors.New("other")), api.ResultUnknown)

	assert.NilError(t, api.ResultSuccess.Err())
	assert.ErrorIs(t, api.ResultFail.Err(), api.ResultFail)
}
