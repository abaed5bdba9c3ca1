package socket_test

import (
	"os"
	"testing"

	"github.com/momentics/hioload-net/socket"
)

func TestMain(m *testing.M) {
	if err := socket.Startup(); err != nil {
		panic(err)
	}
	code := m.Run()
	socket.Shutdown()
	os.Exit(code)
}
