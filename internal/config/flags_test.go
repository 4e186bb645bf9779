package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Host: "", Port: 5000}, ":5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		host        string
		port        int
	}{
		{"localhost", "localhost:8080", false, "localhost", 8080},
		{"ipv4", "127.0.0.1:9090", false, "127.0.0.1", 9090},
		{"all interfaces", ":5000", false, "", 5000},
		{"ipv6", "[::1]:5000", false, "[::1]", 5000},
		{"no port separator", "localhost", true, "", 0},
		{"non numeric port", "localhost:http", true, "", 0},
		{"zero port", "localhost:0", true, "", 0},
		{"port too large", "localhost:70000", true, "", 0},
		{"hostname not ip", "example.com:80", true, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, addr.Host)
			assert.Equal(t, tt.port, addr.Port)
		})
	}
}

func TestNetAddress_Type(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "address", addr.Type())
}

// ── ParseServerFlags ──────────────────────────────────────────────────────────

func TestParseServerFlags_AllFlags(t *testing.T) {
	cfg, err := ParseServerFlags([]string{
		"-a", ":7000",
		"-d", "postgres://localhost/db",
		"-c", "/etc/sync.json",
		"--admin-password", "pw",
		"--token-sign-key", "sign",
		"--token-issuer", "iss",
		"--token-duration", "2h",
		"--request-timeout", "10s",
		"--max-data-size", "4096",
		"--max-versions", "4",
		"--rate", "1.5",
		"--prune-interval", "1m",
	})

	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/sync.json", cfg.JSONFilePath)
	assert.Equal(t, "pw", cfg.App.AdminPassword)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(4096), cfg.Limits.MaxDataSize)
	assert.Equal(t, 4, cfg.Limits.MaxVersions)
	assert.InDelta(t, 1.5, cfg.Limits.RatePerSecond, 1e-9)
	assert.Equal(t, time.Minute, cfg.Workers.PruneInterval)
}

func TestParseServerFlags_NoArgs(t *testing.T) {
	cfg, err := ParseServerFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseServerFlags_UnknownFlag(t *testing.T) {
	_, err := ParseServerFlags([]string{"--nope"})
	assert.Error(t, err)
}

func TestParseServerFlags_BadAddress(t *testing.T) {
	_, err := ParseServerFlags([]string{"-a", "nowhere"})
	assert.Error(t, err)
}

// ── BindClientFlags ───────────────────────────────────────────────────────────

func TestBindClientFlags(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	flags := BindClientFlags(fs)

	require.NoError(t, fs.Parse([]string{
		"--state", "memory",
		"--profile", "/p.json",
		"--log-file", "/l.log",
		"--debug",
		"--request-timeout", "4s",
		"--crypto-scheme", "legacy",
		"-c", "/c.json",
	}))

	cfg := flags.structured()
	assert.Equal(t, "memory", cfg.Client.StateDSN)
	assert.Equal(t, "/p.json", cfg.Client.ProfilePath)
	assert.Equal(t, "/l.log", cfg.Client.LogFile)
	assert.True(t, cfg.Client.Debug)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "legacy", cfg.Crypto.Scheme)
	assert.Equal(t, "/c.json", cfg.JSONFilePath)
}

func TestClientFlags_NilStructured(t *testing.T) {
	var flags *ClientFlags
	assert.Nil(t, flags.structured())
}
