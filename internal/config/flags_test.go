package config

import (
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestListValue_Set(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		expected []string
	}{
		{name: "single", inputs: []string{"a.pub"}, expected: []string{"a.pub"}},
		{name: "comma separated", inputs: []string{"a.pub,b.pub"}, expected: []string{"a.pub", "b.pub"}},
		{name: "repeated flag", inputs: []string{"a.pub", "b.pub"}, expected: []string{"a.pub", "b.pub"}},
		{name: "blanks dropped", inputs: []string{" a.pub , ,b.pub "}, expected: []string{"a.pub", "b.pub"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l listValue
			for _, in := range tt.inputs {
				require.NoError(t, l.Set(in))
			}
			assert.Equal(t, tt.expected, []string(l))
			assert.Equal(t, strings.Join(tt.expected, ","), l.String())
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-c", "/etc/node.json",
		"-node-url", "http://node1:8080",
		"-public-keys", "a.pub,b.pub",
		"-private-keys", "a.key,b.key",
		"-always-send-to", "c.pub",
		"-other-nodes", "http://node2:8080",
		"-log-level", "warn",
		"-storage", "sqlite",
		"-storage-path", "/tmp/node.db",
		"-node-address", ":9000",
		"-client-address", ":9001",
		"-node-tls", "strict",
		"-client-tls", "off",
		"-push-timeout", "4s",
		"-push-attempts", "2",
		"-discovery-interval", "15s",
	}

	cfg, err := parseFlags(newTestFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, "/etc/node.json", cfg.JSONFilePath)
	assert.Equal(t, "http://node1:8080", cfg.App.NodeURL)
	assert.Equal(t, []string{"a.pub", "b.pub"}, cfg.App.PublicKeys)
	assert.Equal(t, []string{"a.key", "b.key"}, cfg.App.PrivateKeys)
	assert.Equal(t, []string{"c.pub"}, cfg.App.AlwaysSendTo)
	assert.Equal(t, []string{"http://node2:8080"}, cfg.App.OtherNodes)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, EngineSQLite, cfg.Storage.Engine)
	assert.Equal(t, "/tmp/node.db", cfg.Storage.Path)
	assert.Equal(t, ":9000", cfg.Server.Node.Address)
	assert.Equal(t, ":9001", cfg.Server.Client.Address)
	assert.Equal(t, TLSModeStrict, cfg.Server.Node.TLS.Mode)
	assert.Equal(t, TLSModeOff, cfg.Server.Client.TLS.Mode)
	assert.Equal(t, 4*time.Second, cfg.Adapter.PushTimeout)
	assert.Equal(t, 2, cfg.Adapter.PushAttempts)
	assert.Equal(t, 15*time.Second, cfg.Workers.DiscoveryInterval)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-config", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_GenerateKeys(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-generatekeys", "node1"})
	require.NoError(t, err)
	assert.Equal(t, "node1", cfg.GenerateKeys)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.App.NodeURL)
	assert.Nil(t, cfg.App.PublicKeys)
	assert.Zero(t, cfg.Adapter.PushTimeout)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-push-timeout", "later"})
	assert.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-bogus"})
	assert.Error(t, err)
}
