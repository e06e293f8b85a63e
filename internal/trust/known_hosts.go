// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trust

import (
	"bufio"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
)

// Fingerprint is the lowercase hex SHA-256 of the DER encoded certificate.
func Fingerprint(cert *x509.Certificate) string {
	sum := sha256.Sum256(cert.Raw)
	return hex.EncodeToString(sum[:])
}

// NormalizeFingerprint lowercases fp and strips ':' separators.
func NormalizeFingerprint(fp string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(fp), ":", ""))
}

// KnownHosts is the identity to fingerprint list of one interface. The file
// holds one "<identity> <hex-fingerprint>" pair per line; lines starting
// with '#' are comments.
type KnownHosts struct {
	mu      sync.Mutex
	path    string
	entries map[string][]string
}

// LoadKnownHosts reads path. A missing file is an empty list; it is created
// on the first recorded entry.
func LoadKnownHosts(path string) (*KnownHosts, error) {
	k := &KnownHosts{path: path, entries: make(map[string][]string)}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return k, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open known hosts %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s line %d", ErrInvalidKnownHosts, path, lineNo)
		}
		fp := NormalizeFingerprint(fields[1])
		if _, err := hex.DecodeString(fp); err != nil || fp == "" {
			return nil, fmt.Errorf("%w: %s line %d: bad fingerprint", ErrInvalidKnownHosts, path, lineNo)
		}
		k.add(fields[0], fp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read known hosts %s: %w", path, err)
	}

	return k, nil
}

// Path is the backing file.
func (k *KnownHosts) Path() string {
	return k.path
}

// Len is the number of recorded pairs.
func (k *KnownHosts) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	n := 0
	for _, fps := range k.entries {
		n += len(fps)
	}
	return n
}

// Match fails unless identity is listed with fingerprint fp.
func (k *KnownHosts) Match(identity, fp string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.match(identity, NormalizeFingerprint(fp))
}

// TrustOnFirstUse records fp for an identity seen for the first time and
// otherwise behaves like [KnownHosts.Match].
func (k *KnownHosts) TrustOnFirstUse(identity, fp string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	fp = NormalizeFingerprint(fp)
	if _, known := k.entries[identity]; known {
		return k.match(identity, fp)
	}
	return k.appendEntry(identity, fp)
}

// Record stores the pair unless it is already listed. It never rejects.
func (k *KnownHosts) Record(identity, fp string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	fp = NormalizeFingerprint(fp)
	if slices.Contains(k.entries[identity], fp) {
		return nil
	}
	return k.appendEntry(identity, fp)
}

func (k *KnownHosts) match(identity, fp string) error {
	fps, known := k.entries[identity]
	if !known {
		return errUnknownIdentity
	}
	if !slices.Contains(fps, fp) {
		return errFingerprintMismatch
	}
	return nil
}

func (k *KnownHosts) add(identity, fp string) {
	if !slices.Contains(k.entries[identity], fp) {
		k.entries[identity] = append(k.entries[identity], fp)
	}
}

func (k *KnownHosts) appendEntry(identity, fp string) error {
	file, err := os.OpenFile(k.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open known hosts %s: %w", k.path, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s %s\n", identity, fp); err != nil {
		return fmt.Errorf("append known hosts %s: %w", k.path, err)
	}

	k.add(identity, fp)
	return nil
}
