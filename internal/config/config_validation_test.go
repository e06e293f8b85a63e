package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "node url without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.App.NodeURL = "node1:8080" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "unpaired key files",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.PublicKeys = []string{"a.pub", "b.pub"}
				cfg.App.PrivateKeys = []string{"a.key"}
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown engine",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Engine = "tape" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "badger without path",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Engine = EngineBadger },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Engine = EnginePostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty client address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Client.Address = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown tls mode",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Node.TLS.Mode = "maybe" },
			wantErr: ErrInvalidTLSConfigs,
		},
		{
			name:    "strict without certificate",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Node.TLS.Mode = TLSModeStrict },
			wantErr: ErrInvalidTLSConfigs,
		},
		{
			name: "strict with certificate",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.Node.TLS.Mode = TLSModeStrict
				cfg.Server.Node.TLS.ServerCert = "node.crt"
				cfg.Server.Node.TLS.ServerKey = "node.key"
			},
		},
		{
			name:    "zero push attempts",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.PushAttempts = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero discovery interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.DiscoveryInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name: "key generation skips validation",
			mutate: func(cfg *StructuredConfig) {
				cfg.GenerateKeys = "node"
				cfg.Storage.Engine = "tape"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTLS_Enabled(t *testing.T) {
	assert.True(t, TLS{Mode: TLSModeStrict}.Enabled())
	assert.False(t, TLS{Mode: TLSModeOff}.Enabled())
	assert.False(t, TLS{}.Enabled())
}
