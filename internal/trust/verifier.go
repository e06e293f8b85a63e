// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trust

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-privacy-node/internal/logger"
)

// Direction tells a [Verifier] which side of the handshake it checks.
type Direction int

const (
	// Inbound verifies client certificates offered to a listener.
	Inbound Direction = iota

	// Outbound verifies server certificates of dialed peers.
	Outbound
)

func (d Direction) String() string {
	if d == Outbound {
		return "outbound"
	}
	return "inbound"
}

// Verifier is the single verification entry point of one interface side.
type Verifier struct {
	mode      Mode
	direction Direction
	known     *KnownHosts
	roots     *x509.CertPool

	logger *logger.Logger
}

// NewVerifier builds a verifier. known may be nil only for modes that do not
// use a known hosts file; a nil roots pool means the system pool.
func NewVerifier(mode Mode, direction Direction, known *KnownHosts, roots *x509.CertPool, log *logger.Logger) (*Verifier, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if mode.usesKnownHosts() && known == nil {
		return nil, fmt.Errorf("trust mode %s needs a known hosts file", mode)
	}

	return &Verifier{
		mode:      mode,
		direction: direction,
		known:     known,
		roots:     roots,
		logger:    log,
	}, nil
}

// Mode is the configured policy.
func (v *Verifier) Mode() Mode {
	return v.mode
}

// Verify checks chain, leaf first, against identity. Any failure is logged
// with its reason and reported as [ErrRejected].
func (v *Verifier) Verify(identity string, chain []*x509.Certificate) error {
	if err := v.verify(identity, chain); err != nil {
		event := v.logger.Warn().Err(err).
			Str("func", "*Verifier.Verify").
			Str("mode", string(v.mode)).
			Str("direction", v.direction.String()).
			Str("identity", identity)
		if len(chain) > 0 {
			event = event.Str("fingerprint", Fingerprint(chain[0]))
		}
		event.Msg("rejected peer certificate")
		return ErrRejected
	}
	return nil
}

func (v *Verifier) verify(identity string, chain []*x509.Certificate) error {
	if len(chain) == 0 {
		return ErrNoCertificate
	}
	if v.mode == ModeInsecure {
		return nil
	}
	if identity == "" || strings.ContainsFunc(identity, unicode.IsSpace) {
		return errNoIdentity
	}

	fp := Fingerprint(chain[0])
	switch v.mode {
	case ModeRecord:
		if err := v.known.Record(identity, fp); err != nil {
			v.logger.Err(err).Str("func", "*Verifier.verify").Msg("error recording fingerprint")
		}
		return nil
	case ModeWhitelist:
		return v.known.Match(identity, fp)
	case ModeTOFU:
		return v.known.TrustOnFirstUse(identity, fp)
	case ModeCA:
		return v.verifyChain(identity, chain)
	case ModeCAOrWhitelist:
		caErr := v.verifyChain(identity, chain)
		if caErr == nil {
			return nil
		}
		return errors.Join(caErr, v.known.Match(identity, fp))
	case ModeCAOrTOFU:
		caErr := v.verifyChain(identity, chain)
		if caErr == nil {
			return nil
		}
		return errors.Join(caErr, v.known.TrustOnFirstUse(identity, fp))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, v.mode)
	}
}

func (v *Verifier) verifyChain(identity string, chain []*x509.Certificate) error {
	intermediates := x509.NewCertPool()
	for _, cert := range chain[1:] {
		intermediates.AddCert(cert)
	}

	opts := x509.VerifyOptions{
		Roots:         v.roots,
		Intermediates: intermediates,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	if v.direction == Outbound {
		opts.KeyUsages = []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}
		opts.DNSName = hostOf(identity)
	}

	if _, err := chain[0].Verify(opts); err != nil {
		return fmt.Errorf("%w: %w", errUntrustedChain, err)
	}
	return nil
}

func hostOf(hostport string) string {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		return hostport
	}
	return host
}
