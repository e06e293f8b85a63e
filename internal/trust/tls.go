// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trust

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
)

// NewServerTLSConfig builds a listener config that requires a client
// certificate and hands it to v with the certificate CommonName as identity.
// Verification runs inside every handshake, resumed ones included, before
// any request is read.
func NewServerTLSConfig(cert tls.Certificate, v *Verifier) *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		ClientAuth:   tls.RequireAnyClientCert,
		VerifyConnection: func(cs tls.ConnectionState) error {
			if len(cs.PeerCertificates) == 0 {
				return v.Verify("", nil)
			}
			return v.Verify(cs.PeerCertificates[0].Subject.CommonName, cs.PeerCertificates)
		},
	}
}

// Dialer opens outbound TLS connections verified against the dialed
// host:port.
type Dialer struct {
	base     *tls.Config
	verifier *Verifier
	net      net.Dialer
}

// NewDialer builds a dialer presenting cert, when given, as client
// certificate.
func NewDialer(cert *tls.Certificate, v *Verifier) *Dialer {
	base := &tls.Config{
		MinVersion: tls.VersionTLS12,
		// chain and identity are checked in VerifyConnection
		InsecureSkipVerify: true,
	}
	if cert != nil {
		base.Certificates = []tls.Certificate{*cert}
	}

	return &Dialer{
		base:     base,
		verifier: v,
		net:      net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second},
	}
}

// DialTLSContext has the signature of [http.Transport.DialTLSContext].
func (d *Dialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	cfg := d.base.Clone()
	if host := hostOf(addr); net.ParseIP(host) == nil {
		cfg.ServerName = host
	}
	cfg.VerifyConnection = func(cs tls.ConnectionState) error {
		return d.verifier.Verify(addr, cs.PeerCertificates)
	}

	dialer := &tls.Dialer{NetDialer: &d.net, Config: cfg}
	return dialer.DialContext(ctx, network, addr)
}

// Transport returns an HTTP transport dialing every https URL through d.
func (d *Dialer) Transport() *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialTLSContext = d.DialTLSContext
	return transport
}

// ServerConfig builds the listener TLS config of one interface.
func ServerConfig(cfg config.TLS, log *logger.Logger) (*tls.Config, error) {
	cert, err := LoadCertificate(cfg.ServerCert, cfg.ServerKey, cfg.ServerChain)
	if err != nil {
		return nil, err
	}

	v, err := newVerifierFromConfig(cfg.ServerTrust, Inbound, cfg.KnownClients, cfg.CAFile, log)
	if err != nil {
		return nil, err
	}

	return NewServerTLSConfig(cert, v), nil
}

// ClientDialer builds the outbound dialer of the node interface. The server
// certificate doubles as client certificate when no client pair is set.
func ClientDialer(cfg config.TLS, log *logger.Logger) (*Dialer, error) {
	certFile, keyFile, chain := cfg.ClientCert, cfg.ClientKey, cfg.ClientChain
	if certFile == "" {
		certFile, keyFile, chain = cfg.ServerCert, cfg.ServerKey, cfg.ServerChain
	}

	var cert *tls.Certificate
	if certFile != "" {
		loaded, err := LoadCertificate(certFile, keyFile, chain)
		if err != nil {
			return nil, err
		}
		cert = &loaded
	}

	v, err := newVerifierFromConfig(cfg.ClientTrust, Outbound, cfg.KnownServers, cfg.CAFile, log)
	if err != nil {
		return nil, err
	}

	return NewDialer(cert, v), nil
}

func newVerifierFromConfig(rawMode string, direction Direction, knownFile, caFile string, log *logger.Logger) (*Verifier, error) {
	mode, err := ParseMode(rawMode)
	if err != nil {
		return nil, err
	}

	var known *KnownHosts
	if mode.usesKnownHosts() {
		if knownFile == "" {
			return nil, fmt.Errorf("trust mode %s needs a known hosts file", mode)
		}
		if known, err = LoadKnownHosts(knownFile); err != nil {
			return nil, err
		}
	}

	var roots *x509.CertPool
	if mode.usesCA() && caFile != "" {
		if roots, err = LoadCAPool(caFile); err != nil {
			return nil, err
		}
	}

	return NewVerifier(mode, direction, known, roots, log)
}

// LoadCertificate loads a PEM key pair and appends the optional chain files.
func LoadCertificate(certFile, keyFile string, chain []string) (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("load certificate %s: %w", certFile, err)
	}

	for _, path := range chain {
		pool, err := readPEMCertificates(path)
		if err != nil {
			return tls.Certificate{}, err
		}
		for _, c := range pool {
			cert.Certificate = append(cert.Certificate, c.Raw)
		}
	}

	return cert, nil
}

// LoadCAPool reads a PEM bundle of trusted roots.
func LoadCAPool(path string) (*x509.CertPool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ca bundle %s: %w", path, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(raw) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCA, path)
	}
	return pool, nil
}

func readPEMCertificates(path string) ([]*x509.Certificate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read certificate chain %s: %w", path, err)
	}

	var certs []*x509.Certificate
	for {
		var block *pem.Block
		block, raw = pem.Decode(raw)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse certificate chain %s: %w", path, err)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}
