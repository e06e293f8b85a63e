// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"crypto/rand"
	"fmt"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/enclave"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/models"
	"golang.org/x/crypto/nacl/box"
)

// GenerateKeys writes <basename>.pub and <basename>.key. The private key is
// locked with the first line of passwordsFile when one is given.
func GenerateKeys(basename, passwordsFile string, log *logger.Logger) error {
	var password string
	if passwordsFile != "" {
		passwords, err := enclave.ReadPasswords(passwordsFile)
		if err != nil {
			return err
		}
		if len(passwords) == 0 {
			return ErrNoPassword
		}
		password = passwords[0]
	}

	kp, err := enclave.NewKeyLocker().GenerateKeyFiles(basename, password)
	if err != nil {
		return err
	}

	log.Info().
		Str("func", "GenerateKeys").
		Str("public_key", kp.Public.String()).
		Bool("locked", password != "").
		Msgf("key pair written to %s.pub and %s.key", basename, basename)
	return nil
}

// newEnclave loads the configured key pairs. A node without configured keys
// runs with a single ephemeral identity.
func newEnclave(cfg config.App, log *logger.Logger) (*enclave.NaclEnclave, error) {
	passwords, err := enclave.ReadPasswords(cfg.Passwords)
	if err != nil {
		return nil, err
	}

	pairs, err := enclave.NewKeyLocker().LoadKeyPairs(cfg.PublicKeys, cfg.PrivateKeys, passwords)
	if err != nil {
		return nil, fmt.Errorf("load node keys: %w", err)
	}

	if len(pairs) == 0 {
		pub, priv, err := box.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate ephemeral key: %w", err)
		}
		kp := enclave.KeyPair{Public: models.PublicKey(*pub), Private: *priv}
		log.Warn().
			Str("func", "newEnclave").
			Str("public_key", kp.Public.String()).
			Msg("no node keys configured, using an ephemeral identity")
		pairs = append(pairs, kp)
	}

	alwaysSendTo, err := enclave.ReadPublicKeys(cfg.AlwaysSendTo)
	if err != nil {
		return nil, fmt.Errorf("load always send to keys: %w", err)
	}

	return enclave.NewNaclEnclave(pairs, alwaysSendTo)
}
