package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// listValue is a comma separated flag.Value.
type listValue []string

func (l *listValue) String() string {
	return strings.Join(*l, ",")
}

func (l *listValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-c/-config           json file path with configs
//	-generatekeys        write <name>.pub/<name>.key and exit
//	-node-url            URL advertised to peers
//	-public-keys         comma separated public key files
//	-private-keys        comma separated private key files
//	-passwords           file with one password per private key
//	-always-send-to      comma separated public key files
//	-other-nodes         comma separated bootnode URLs
//	-log-level           debug, info, warn, error
//	-storage             memory, badger, sqlite, postgres, redis
//	-storage-path        badger directory or sqlite file
//	-storage-dsn         postgres DSN or redis address
//	-node-address        peer interface listen address
//	-client-address      client interface listen address
//	-node-tls            off or strict
//	-client-tls          off or strict
//	-push-timeout        per attempt push timeout (e.g. "10s")
//	-push-attempts       bounded attempts per peer
//	-discovery-interval  party info exchange period (e.g. "30s")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var publicKeys, privateKeys, alwaysSendTo, otherNodes listValue
	var pushTimeout, discoveryInterval time.Duration

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.GenerateKeys, "generatekeys", "", "Generate a key pair with this base name and exit")

	fs.StringVar(&cfg.App.NodeURL, "node-url", "", "URL advertised to peers")
	fs.Var(&publicKeys, "public-keys", "Public key files")
	fs.Var(&privateKeys, "private-keys", "Private key files")
	fs.StringVar(&cfg.App.Passwords, "passwords", "", "File with one password per private key")
	fs.Var(&alwaysSendTo, "always-send-to", "Public key files added to every legacy distribution")
	fs.Var(&otherNodes, "other-nodes", "Bootnode URLs")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	fs.StringVar(&cfg.Storage.Engine, "storage", "", "Storage engine")
	fs.StringVar(&cfg.Storage.Path, "storage-path", "", "Storage path")
	fs.StringVar(&cfg.Storage.DSN, "storage-dsn", "", "Storage DSN")

	fs.StringVar(&cfg.Server.Node.Address, "node-address", "", "Peer interface address host:port")
	fs.StringVar(&cfg.Server.Client.Address, "client-address", "", "Client interface address host:port")
	fs.StringVar(&cfg.Server.Node.TLS.Mode, "node-tls", "", "Peer interface TLS mode")
	fs.StringVar(&cfg.Server.Client.TLS.Mode, "client-tls", "", "Client interface TLS mode")

	fs.DurationVar(&pushTimeout, "push-timeout", 0, "Push timeout (e.g., 10s)")
	fs.IntVar(&cfg.Adapter.PushAttempts, "push-attempts", 0, "Push attempts per peer")
	fs.DurationVar(&discoveryInterval, "discovery-interval", 0, "Discovery interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.App.PublicKeys = publicKeys
	cfg.App.PrivateKeys = privateKeys
	cfg.App.AlwaysSendTo = alwaysSendTo
	cfg.App.OtherNodes = otherNodes
	cfg.Adapter.PushTimeout = pushTimeout
	cfg.Workers.DiscoveryInterval = discoveryInterval

	return cfg, nil
}
