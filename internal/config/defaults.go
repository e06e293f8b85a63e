// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Storage engines.
const (
	EngineMemory   = "memory"
	EngineBadger   = "badger"
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
	EngineRedis    = "redis"
)

// TLS modes of an interface.
const (
	TLSModeOff    = "off"
	TLSModeStrict = "strict"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			NodeURL:  "http://127.0.0.1:8080",
			LogLevel: "info",
		},
		Storage: Storage{
			Engine: EngineMemory,
		},
		Server: Server{
			Node: Interface{
				Address:      "127.0.0.1:8080",
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
				// strict needs a certificate, so TLS is opt-in here
				TLS: TLS{
					Mode:         TLSModeOff,
					ServerTrust:  "tofu",
					KnownClients: "tls-known-clients",
					ClientTrust:  "ca-or-tofu",
					KnownServers: "tls-known-servers",
				},
			},
			Client: Interface{
				Address:      "127.0.0.1:8888",
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				TLS: TLS{
					Mode:         TLSModeOff,
					ServerTrust:  "ca-or-tofu",
					KnownClients: "client-connection-known-clients",
				},
			},
		},
		Adapter: Adapter{
			PushTimeout:         10 * time.Second,
			PushAttempts:        3,
			RetryWait:           200 * time.Millisecond,
			MaxConcurrentPushes: 16,
		},
		Workers: Workers{
			DiscoveryInterval: 30 * time.Second,
		},
	}
}
