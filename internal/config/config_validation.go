// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Key generation runs without a node, so it is exempt.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.GenerateKeys != "" {
		return nil
	}

	if err := cfg.App.validate(); err != nil {
		return err
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if err := cfg.Server.Node.validate("node"); err != nil {
		return err
	}
	if err := cfg.Server.Client.validate("client"); err != nil {
		return err
	}

	if cfg.Adapter.PushAttempts < 1 || cfg.Adapter.PushTimeout <= 0 || cfg.Adapter.MaxConcurrentPushes < 1 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DiscoveryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a App) validate() error {
	u, err := url.Parse(a.NodeURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: node url %q", ErrInvalidAppConfigs, a.NodeURL)
	}

	if len(a.PublicKeys) != len(a.PrivateKeys) {
		return fmt.Errorf("%w: %d public keys but %d private keys",
			ErrInvalidAppConfigs, len(a.PublicKeys), len(a.PrivateKeys))
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Engine {
	case EngineMemory:
		return nil
	case EngineBadger, EngineSQLite:
		if s.Path == "" {
			return fmt.Errorf("%w: %s requires a path", ErrInvalidStorageConfigs, s.Engine)
		}
	case EnginePostgres, EngineRedis:
		if s.DSN == "" {
			return fmt.Errorf("%w: %s requires a dsn", ErrInvalidStorageConfigs, s.Engine)
		}
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidStorageConfigs, s.Engine)
	}

	return nil
}

func (i Interface) validate(name string) error {
	if i.Address == "" {
		return fmt.Errorf("%w: %s address is empty", ErrInvalidServerConfigs, name)
	}

	switch i.TLS.Mode {
	case TLSModeOff:
	case TLSModeStrict:
		if i.TLS.ServerCert == "" || i.TLS.ServerKey == "" {
			return fmt.Errorf("%w: %s interface requires a server certificate and key", ErrInvalidTLSConfigs, name)
		}
	default:
		return fmt.Errorf("%w: %s mode %q", ErrInvalidTLSConfigs, name, i.TLS.Mode)
	}

	return nil
}
