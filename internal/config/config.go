// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// privacy node. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file, then filled with defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - json     : key in the optional JSON config file.
type StructuredConfig struct {
	// App holds node identity settings: advertised URL, key files and
	// bootstrap peers.
	App App `envPrefix:"APP_" json:"app"`

	// Storage selects and configures the key/value engine.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Server holds the two independently configured network interfaces.
	Server Server `envPrefix:"SERVER_" json:"server"`

	// Adapter controls outbound peer requests.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_" json:"workers"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`

	// GenerateKeys, when set, requests key pair generation under this base
	// name instead of starting the node. Flag only.
	GenerateKeys string `json:"-"`
}

// App holds the node identity.
type App struct {
	// NodeURL is the base URL peers use to reach this node's peer interface.
	// Env: APP_NODE_URL
	NodeURL string `env:"NODE_URL" json:"node_url"`

	// PublicKeys and PrivateKeys are paired key file paths; the first pair is
	// the node's primary identity.
	// Env: APP_PUBLIC_KEYS, APP_PRIVATE_KEYS (comma separated)
	PublicKeys  []string `env:"PUBLIC_KEYS" envSeparator:"," json:"public_keys"`
	PrivateKeys []string `env:"PRIVATE_KEYS" envSeparator:"," json:"private_keys"`

	// Passwords is an optional file with one password per line, unlocking
	// the private key file at the same position.
	// Env: APP_PASSWORDS
	Passwords string `env:"PASSWORDS" json:"passwords"`

	// AlwaysSendTo lists public key files added as recipients of every
	// legacy distribution.
	// Env: APP_ALWAYS_SEND_TO
	AlwaysSendTo []string `env:"ALWAYS_SEND_TO" envSeparator:"," json:"always_send_to"`

	// OtherNodes are bootnode URLs contacted by network discovery.
	// Env: APP_OTHER_NODES
	OtherNodes []string `env:"OTHER_NODES" envSeparator:"," json:"other_nodes"`

	// LogLevel is one of debug, info, warn, error.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`
}

// Storage selects the key/value engine.
type Storage struct {
	// Engine is one of memory, badger, sqlite, postgres, redis.
	// Env: STORAGE_ENGINE
	Engine string `env:"ENGINE" json:"engine"`

	// Path is the data directory (badger) or database file (sqlite).
	// Env: STORAGE_PATH
	Path string `env:"PATH" json:"path"`

	// DSN is the connection string for postgres or the address for redis.
	// Env: STORAGE_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Server holds the peer (node) interface and the local client interface.
// They never share TLS state so each can run its own trust posture.
type Server struct {
	Node   Interface `envPrefix:"NODE_" json:"node"`
	Client Interface `envPrefix:"CLIENT_" json:"client"`
}

// Interface configures one listening network interface.
type Interface struct {
	// Address is the TCP listen address in host:port form.
	// Env: SERVER_NODE_ADDRESS / SERVER_CLIENT_ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" json:"read_timeout"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" json:"write_timeout"`

	TLS TLS `envPrefix:"TLS_" json:"tls"`
}

// TLS configures transport security for one interface.
type TLS struct {
	// Mode is "off" (plain HTTP) or "strict" (TLS with client certificates).
	Mode string `env:"MODE" json:"mode"`

	// ServerCert, ServerKey and ServerChain identify this interface to callers.
	ServerCert  string   `env:"SERVER_CERT" json:"server_cert"`
	ServerKey   string   `env:"SERVER_KEY" json:"server_key"`
	ServerChain []string `env:"SERVER_CHAIN" envSeparator:"," json:"server_chain"`

	// ServerTrust is the trust mode applied to inbound client certificates,
	// KnownClients the hostname/fingerprint file it consults.
	ServerTrust  string `env:"SERVER_TRUST" json:"server_trust"`
	KnownClients string `env:"KNOWN_CLIENTS" json:"known_clients"`

	// ClientCert, ClientKey, ClientChain, ClientTrust and KnownServers are used
	// by the node interface when it dials peers.
	ClientCert   string   `env:"CLIENT_CERT" json:"client_cert"`
	ClientKey    string   `env:"CLIENT_KEY" json:"client_key"`
	ClientChain  []string `env:"CLIENT_CHAIN" envSeparator:"," json:"client_chain"`
	ClientTrust  string   `env:"CLIENT_TRUST" json:"client_trust"`
	KnownServers string   `env:"KNOWN_SERVERS" json:"known_servers"`

	// CAFile is an optional PEM bundle used by the ca trust modes instead of
	// the system pool.
	CAFile string `env:"CA_FILE" json:"ca_file"`
}

// Enabled reports whether the interface terminates TLS.
func (t TLS) Enabled() bool {
	return t.Mode == TLSModeStrict
}

// Adapter controls outbound peer requests.
type Adapter struct {
	// PushTimeout bounds every single push attempt.
	// Env: ADAPTER_PUSH_TIMEOUT
	PushTimeout time.Duration `env:"PUSH_TIMEOUT" json:"push_timeout"`

	// PushAttempts is the total number of attempts per peer, at least 1.
	// Env: ADAPTER_PUSH_ATTEMPTS
	PushAttempts int `env:"PUSH_ATTEMPTS" json:"push_attempts"`

	// RetryWait is the initial backoff between attempts.
	// Env: ADAPTER_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT" json:"retry_wait"`

	// MaxConcurrentPushes caps the fan-out width of one distribution.
	// Env: ADAPTER_MAX_CONCURRENT_PUSHES
	MaxConcurrentPushes int `env:"MAX_CONCURRENT_PUSHES" json:"max_concurrent_pushes"`
}

// Workers holds background worker settings.
type Workers struct {
	// DiscoveryInterval is the period of the party info exchange.
	// Env: WORKERS_DISCOVERY_INTERVAL
	DiscoveryInterval time.Duration `env:"DISCOVERY_INTERVAL" json:"discovery_interval"`
}

// GetStructuredConfig loads, merges, defaults and validates the node
// configuration. Sources are applied in this order, later non-zero values
// overriding earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(ParseFlags()).
		withJSON().
		build()
}
