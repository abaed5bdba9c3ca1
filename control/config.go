// control/config.go
// Author: momentics <momentics@gmail.com>
//
// TOML configuration for socket programs.

package control

import (
	"os"

	"github.com/momentics/hioload-net/api"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config is the root of a configuration file.
type Config struct {
	Log      LogConfig                `toml:"log"`
	Server   ServerConfig             `toml:"server"`
	Profiles map[string]SocketProfile `toml:"profile"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// ServerConfig describes one listening endpoint.
type ServerConfig struct {
	Host          string `toml:"host"`
	Port          string `toml:"port"`
	Protocol      string `toml:"protocol"`
	Family        string `toml:"family"`
	Backlog       int    `toml:"backlog"`
	PollTimeoutMs int    `toml:"poll_timeout_ms"`
	BufferSize    int    `toml:"buffer_size"`
	MaxClients    int    `toml:"max_clients"`
	Profile       string `toml:"profile"`
}

// SocketProfile is a named set of socket options. Unset fields are left at
// the OS default.
type SocketProfile struct {
	ReuseAddr     *bool `toml:"reuse_addr"`
	ReusePort     *bool `toml:"reuse_port"`
	KeepAlive     *bool `toml:"keepalive"`
	Broadcast     *bool `toml:"broadcast"`
	NoDelay       *bool `toml:"tcp_nodelay"`
	RecvTimeoutMs *int  `toml:"recv_timeout_ms"`
	SendTimeoutMs *int  `toml:"send_timeout_ms"`
	SynCount      *int  `toml:"tcp_syncnt"`
	UserTimeoutMs *int  `toml:"tcp_user_timeout_ms"`
	TTL           *int  `toml:"ttl"`
	Nonblocking   *bool `toml:"nonblocking"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	on := true
	return &Config{
		Log: LogConfig{Level: "info", Console: true},
		Server: ServerConfig{
			Host:          api.AnyAddress,
			Port:          "5000",
			Protocol:      "tcp",
			Family:        "ipv4",
			Backlog:       api.DefaultBacklog,
			PollTimeoutMs: 1000,
			BufferSize:    4096,
			MaxClients:    64,
			Profile:       "default",
		},
		Profiles: map[string]SocketProfile{
			"default": {ReuseAddr: &on},
		},
	}
}

// LoadConfig reads path over the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes TOML over the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and cross references.
func (c *Config) Validate() error {
	s := c.Server
	if _, err := api.ParseProtocol(s.Protocol); err != nil {
		return errors.Errorf("server.protocol %q: want tcp or udp", s.Protocol)
	}
	if _, err := api.ParseFamily(s.Family); err != nil {
		return errors.Errorf("server.family %q: want ipv4 or ipv6", s.Family)
	}
	if s.Backlog < 0 {
		return errors.Errorf("server.backlog %d is negative", s.Backlog)
	}
	if s.BufferSize <= 0 {
		return errors.Errorf("server.buffer_size must be positive")
	}
	if s.MaxClients <= 0 {
		return errors.Errorf("server.max_clients must be positive")
	}
	if s.Profile != "" {
		if _, ok := c.Profiles[s.Profile]; !ok {
			return errors.Errorf("server.profile %q is not defined", s.Profile)
		}
	}
	for name, p := range c.Profiles {
		if err := p.validate(); err != nil {
			return errors.Wrapf(err, "profile %s", name)
		}
	}
	return nil
}

func (p SocketProfile) validate() error {
	checks := []struct {
		name   string
		v      *int
		lo, hi int
	}{
		{"recv_timeout_ms", p.RecvTimeoutMs, 0, 1<<31 - 1},
		{"send_timeout_ms", p.SendTimeoutMs, 0, 1<<31 - 1},
		{"tcp_syncnt", p.SynCount, 0, 255},
		{"tcp_user_timeout_ms", p.UserTimeoutMs, 0, 1<<31 - 1},
		{"ttl", p.TTL, 1, 255},
	}
	for _, c := range checks {
		if c.v != nil && (*c.v < c.lo || *c.v > c.hi) {
			return errors.Errorf("%s %d out of range [%d, %d]", c.name, *c.v, c.lo, c.hi)
		}
	}
	return nil
}

// Endpoint returns the protocol and family of the server section.
func (s ServerConfig) Endpoint() (api.Protocol, api.Family, error) {
	proto, err := api.ParseProtocol(s.Protocol)
	if err != nil {
		return 0, 0, err
	}
	family, err := api.ParseFamily(s.Family)
	if err != nil {
		return 0, 0, err
	}
	return proto, family, nil
}
