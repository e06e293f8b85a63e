package handler

import (
	"testing"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Server
		wantNode   bool
		wantClient bool
		wantErr    bool
	}{
		{
			name:       "both interfaces",
			cfg:        config.Server{Node: config.Interface{Address: ":8080"}, Client: config.Interface{Address: ":8888"}},
			wantNode:   true,
			wantClient: true,
		},
		{
			name:     "node only",
			cfg:      config.Server{Node: config.Interface{Address: ":8080"}},
			wantNode: true,
		},
		{
			name:       "client only",
			cfg:        config.Server{Client: config.Interface{Address: ":8888"}},
			wantClient: true,
		},
		{
			name:    "no interfaces",
			cfg:     config.Server{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// handlers only store the services pointer at construction
			h, err := NewHandlers(nil, newTestMetrics(), tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoHandlersAreCreated)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNode, h.Node != nil)
			assert.Equal(t, tt.wantClient, h.Client != nil)
		})
	}
}
