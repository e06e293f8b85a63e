package server

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"io"
	"math/big"
	"net"
	nethttp "net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-privacy-node/internal/config"
	"github.com/MKhiriev/go-privacy-node/internal/handler"
	"github.com/MKhiriev/go-privacy-node/internal/handler/http"
	"github.com/MKhiriev/go-privacy-node/internal/logger"
	"github.com/MKhiriev/go-privacy-node/internal/metrics"
	"github.com/MKhiriev/go-privacy-node/internal/trust"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

type pair struct {
	cert     tls.Certificate
	certPath string
	keyPath  string
}

func newPair(t *testing.T, dir, cn string) pair {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		DNSNames:     []string{"localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	p := pair{
		certPath: filepath.Join(dir, cn+".crt"),
		keyPath:  filepath.Join(dir, cn+".key"),
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	require.NoError(t, os.WriteFile(p.certPath, certPEM, 0o600))
	require.NoError(t, os.WriteFile(p.keyPath, keyPEM, 0o600))

	p.cert, err = tls.X509KeyPair(certPEM, keyPEM)
	require.NoError(t, err)
	return p
}

func fingerprintOf(t *testing.T, p pair) string {
	t.Helper()
	leaf, err := x509.ParseCertificate(p.cert.Certificate[0])
	require.NoError(t, err)
	return trust.Fingerprint(leaf)
}

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return &handler.Handlers{
		Node:   http.NewHandler(nil, m, http.IfaceNode, logger.Nop()),
		Client: http.NewHandler(nil, m, http.IfaceClient, logger.Nop()),
	}
}

// start serves s on ephemeral ports and returns their addresses
// in interface order.
func start(t *testing.T, s Server) ([]string, context.CancelFunc, <-chan error) {
	t.Helper()
	srv := s.(*server)

	listeners := make([]net.Listener, 0, len(srv.servers))
	addrs := make([]string, 0, len(srv.servers))
	for range srv.servers {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners = append(listeners, ln)
		addrs = append(addrs, ln.Addr().String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, listeners) }()
	return addrs, cancel, done
}

func get(t *testing.T, client *nethttp.Client, url string) (string, error) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body), nil
}

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	s, err := NewServer(newTestHandlers(t), config.Server{
		Node:   config.Interface{Address: "127.0.0.1:0"},
		Client: config.Interface{Address: "127.0.0.1:0"},
	}, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, s.(*server).servers, 2)
}

func TestNewServer_InvalidTLS(t *testing.T) {
	_, err := NewServer(newTestHandlers(t), config.Server{
		Node: config.Interface{
			Address: "127.0.0.1:0",
			TLS:     config.TLS{Mode: config.TLSModeStrict, ServerCert: "missing.crt", ServerKey: "missing.key", ServerTrust: "ca"},
		},
	}, logger.Nop())
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// serving
// ─────────────────────────────────────────────

func TestServer_PlainInterfacesAndGracefulShutdown(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.Server{
		Node:   config.Interface{Address: "127.0.0.1:0"},
		Client: config.Interface{Address: "127.0.0.1:0"},
	}, logger.Nop())
	require.NoError(t, err)

	addrs, cancel, done := start(t, s)

	for _, addr := range addrs {
		body, err := get(t, nethttp.DefaultClient, "http://"+addr+"/upcheck")
		require.NoError(t, err)
		assert.Equal(t, "I'm up!", body)
	}

	// only the client interface exposes metrics
	resp, err := nethttp.Get("http://" + addrs[1] + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = nethttp.Get("http://" + addrs[0] + "/upcheck")
	assert.Error(t, err)
}

func TestServer_UpcheckRequiresTrustedHandshake(t *testing.T) {
	dir := t.TempDir()
	serverPair := newPair(t, dir, "node-a")
	trusted := newPair(t, dir, "node-b")
	stranger := newPair(t, dir, "node-c")

	knownClients := filepath.Join(dir, "known-clients")
	require.NoError(t, os.WriteFile(knownClients, fmt.Appendf(nil, "node-b %s\n", fingerprintOf(t, trusted)), 0o600))

	s, err := NewServer(newTestHandlers(t), config.Server{
		Node: config.Interface{
			Address: "127.0.0.1:0",
			TLS: config.TLS{
				Mode:         config.TLSModeStrict,
				ServerCert:   serverPair.certPath,
				ServerKey:    serverPair.keyPath,
				ServerTrust:  "whitelist",
				KnownClients: knownClients,
			},
		},
	}, logger.Nop())
	require.NoError(t, err)

	addrs, cancel, done := start(t, s)
	defer func() {
		cancel()
		<-done
	}()
	url := "https://" + addrs[0] + "/upcheck"

	clientWith := func(certs ...tls.Certificate) *nethttp.Client {
		return &nethttp.Client{
			Timeout: 5 * time.Second,
			Transport: &nethttp.Transport{TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
				Certificates:       certs,
			}},
		}
	}

	body, err := get(t, clientWith(trusted.cert), url)
	require.NoError(t, err)
	assert.Equal(t, "I'm up!", body)

	_, err = get(t, clientWith(stranger.cert), url)
	assert.Error(t, err)

	_, err = get(t, clientWith(), url)
	assert.Error(t, err)

	// plaintext is answered with net/http's 400, never the upcheck
	body, _ = get(t, nethttp.DefaultClient, "http://"+addrs[0]+"/upcheck")
	assert.NotEqual(t, "I'm up!", body)
}
