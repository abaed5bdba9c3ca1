package control_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/control"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const sample = `
[log]
level = "debug"
console = false

[server]
host = "127.0.0.1"
port = "7000"
protocol = "udp"
family = "ipv6"
profile = "lowlat"

[profile.lowlat]
reuse_addr = true
tcp_nodelay = true
ttl = 32
recv_timeout_ms = 250
`

func TestParseConfig(t *testing.T) {
	cfg, err := control.ParseConfig([]byte(sample))
	assert.NilError(t, err)
	assert.Equal(t, cfg.Log.Level, "debug")
	assert.Equal(t, cfg.Server.Port, "7000")
	assert.Equal(t, cfg.Server.Backlog, api.DefaultBacklog)

	proto, family, err := cfg.Server.Endpoint()
	assert.NilError(t, err)
	assert.Equal(t, proto, api.ProtocolUDP)
	assert.Equal(t, family, api.FamilyIPv6)

	p, ok := cfg.Profiles["lowlat"]
	assert.Assert(t, ok)
	assert.Assert(t, p.ReuseAddr != nil && *p.ReuseAddr)
	assert.Assert(t, p.TTL != nil && *p.TTL == 32)
	assert.Assert(t, p.KeepAlive == nil)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NilError(t, control.DefaultConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"protocol": "[server]\nprotocol = \"sctp\"\n",
		"family":   "[server]\nfamily = \"ipx\"\n",
		"backlog":  "[server]\nbacklog = -1\n",
		"profile":  "[server]\nprofile = \"missing\"\n",
		"ttl":      "[profile.default]\nttl = 300\n",
		"syncnt":   "[profile.default]\ntcp_syncnt = 256\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := control.ParseConfig([]byte(doc))
			assert.Assert(t, err != nil)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.toml")
	assert.NilError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := control.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Server.Host, "127.0.0.1")

	_, err = control.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Assert(t, is.ErrorContains(err, "read config"))
}

func TestConfigStoreReload(t *testing.T) {
	store := control.NewConfigStore(nil)
	assert.Equal(t, store.Get().Server.Port, "5000")

	var got []string
	store.OnReload(func(c *control.Config) { got = append(got, c.Server.Port) })

	path := filepath.Join(t.TempDir(), "net.toml")
	assert.NilError(t, os.WriteFile(path, []byte(sample), 0o600))
	assert.NilError(t, store.Reload(path))
	assert.Equal(t, store.Get().Server.Port, "7000")
	assert.DeepEqual(t, got, []string{"7000"})

	assert.NilError(t, os.WriteFile(path, []byte("[server]\nprotocol = \"x\"\n"), 0o600))
	assert.Assert(t, store.Reload(path) != nil)
	assert.Equal(t, store.Get().Server.Port, "7000")
	assert.Equal(t, len(got), 1)
}
