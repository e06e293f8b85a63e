// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package enclave

import (
	"bufio"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-privacy-node/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

// Key file types.
const (
	KeyFileUnlocked = "unlocked"
	KeyFileLocked   = "argon2id-sbox"
)

// KeyFile is the JSON document stored in a .key file.
type KeyFile struct {
	Type string      `json:"type"`
	Data KeyFileData `json:"data"`
}

// KeyFileData holds the private key, sealed with a password derived key when
// the file is locked.
type KeyFileData struct {
	Bytes string `json:"bytes"`

	Salt    string `json:"salt,omitempty"`
	Nonce   string `json:"snonce,omitempty"`
	Time    uint32 `json:"aopslimit,omitempty"`
	Memory  uint32 `json:"amemlimit,omitempty"`
	Threads uint8  `json:"athreads,omitempty"`
}

// KeyLocker protects private key files with a password. The password is
// stretched with Argon2id into a secretbox key.
type KeyLocker struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyLocker constructs a [KeyLocker] with the Argon2id parameters
// recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewKeyLocker() *KeyLocker {
	return &KeyLocker{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// Lock produces a key file for priv. An empty password produces an
// unlocked file.
func (k *KeyLocker) Lock(priv [32]byte, password string) (KeyFile, error) {
	if password == "" {
		return KeyFile{
			Type: KeyFileUnlocked,
			Data: KeyFileData{Bytes: base64.StdEncoding.EncodeToString(priv[:])},
		}, nil
	}

	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return KeyFile{}, err
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return KeyFile{}, err
	}

	kek := k.deriveKEK(password, salt, k.argonTime, k.argonMemory, k.argonThreads)
	sealed := secretbox.Seal(nil, priv[:], &nonce, &kek)

	return KeyFile{
		Type: KeyFileLocked,
		Data: KeyFileData{
			Bytes:   base64.StdEncoding.EncodeToString(sealed),
			Salt:    base64.StdEncoding.EncodeToString(salt),
			Nonce:   base64.StdEncoding.EncodeToString(nonce[:]),
			Time:    k.argonTime,
			Memory:  k.argonMemory,
			Threads: k.argonThreads,
		},
	}, nil
}

// Unlock recovers the private key from file. The Argon2id parameters are
// read from the file, not from the receiver.
func (k *KeyLocker) Unlock(file KeyFile, password string) ([32]byte, error) {
	var priv [32]byte

	raw, err := base64.StdEncoding.DecodeString(file.Data.Bytes)
	if err != nil {
		return priv, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	switch file.Type {
	case KeyFileUnlocked:
		if len(raw) != len(priv) {
			return priv, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKey, len(priv), len(raw))
		}
		copy(priv[:], raw)
		return priv, nil

	case KeyFileLocked:
		salt, err := base64.StdEncoding.DecodeString(file.Data.Salt)
		if err != nil {
			return priv, fmt.Errorf("%w: salt: %w", ErrInvalidKey, err)
		}
		nonceRaw, err := base64.StdEncoding.DecodeString(file.Data.Nonce)
		if err != nil || len(nonceRaw) != nonceSize {
			return priv, fmt.Errorf("%w: nonce", ErrInvalidKey)
		}
		var nonce [nonceSize]byte
		copy(nonce[:], nonceRaw)
		if file.Data.Time == 0 || file.Data.Threads == 0 {
			return priv, fmt.Errorf("%w: argon2 parameters", ErrInvalidKey)
		}

		kek := k.deriveKEK(password, salt, file.Data.Time, file.Data.Memory, file.Data.Threads)
		opened, ok := secretbox.Open(nil, raw, &nonce, &kek)
		if !ok || len(opened) != len(priv) {
			return priv, ErrWrongPassword
		}
		copy(priv[:], opened)
		return priv, nil

	default:
		return priv, fmt.Errorf("%w: unsupported type %q", ErrInvalidKey, file.Type)
	}
}

func (k *KeyLocker) deriveKEK(password string, salt []byte, time, memory uint32, threads uint8) [32]byte {
	var kek [32]byte
	copy(kek[:], argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(kek))))
	return kek
}

// GenerateKeyFiles creates a new key pair and writes <basename>.pub (base64
// public key) and <basename>.key (JSON [KeyFile]).
func (k *KeyLocker) GenerateKeyFiles(basename, password string) (KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate key pair: %w", err)
	}

	file, err := k.Lock(*priv, password)
	if err != nil {
		return KeyPair{}, fmt.Errorf("lock private key: %w", err)
	}
	data, err := json.Marshal(file)
	if err != nil {
		return KeyPair{}, fmt.Errorf("marshal key file: %w", err)
	}

	kp := KeyPair{Public: models.PublicKey(*pub), Private: *priv}

	if err := os.WriteFile(basename+".pub", []byte(kp.Public.String()), 0o644); err != nil {
		return KeyPair{}, fmt.Errorf("write public key: %w", err)
	}
	if err := os.WriteFile(basename+".key", data, 0o600); err != nil {
		return KeyPair{}, fmt.Errorf("write private key: %w", err)
	}

	return kp, nil
}

// LoadKeyPair reads a public key file and its private key file.
func (k *KeyLocker) LoadKeyPair(publicPath, privatePath, password string) (KeyPair, error) {
	pub, err := ReadPublicKey(publicPath)
	if err != nil {
		return KeyPair{}, err
	}

	data, err := os.ReadFile(privatePath)
	if err != nil {
		return KeyPair{}, fmt.Errorf("read private key %s: %w", privatePath, err)
	}
	var file KeyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return KeyPair{}, fmt.Errorf("%w: %s: %w", ErrInvalidKey, privatePath, err)
	}

	priv, err := k.Unlock(file, password)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%s: %w", privatePath, err)
	}

	return KeyPair{Public: pub, Private: priv}, nil
}

// LoadKeyPairs loads paired key files. passwords may be shorter than the
// key lists; missing entries mean unlocked files.
func (k *KeyLocker) LoadKeyPairs(publicPaths, privatePaths, passwords []string) ([]KeyPair, error) {
	if len(publicPaths) != len(privatePaths) {
		return nil, fmt.Errorf("%w: %d public keys but %d private keys", ErrInvalidKey, len(publicPaths), len(privatePaths))
	}

	pairs := make([]KeyPair, 0, len(publicPaths))
	for i := range publicPaths {
		var password string
		if i < len(passwords) {
			password = passwords[i]
		}
		kp, err := k.LoadKeyPair(publicPaths[i], privatePaths[i], password)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kp)
	}

	return pairs, nil
}

// ReadPublicKey reads a base64 public key file.
func ReadPublicKey(path string) (models.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PublicKey{}, fmt.Errorf("read public key %s: %w", path, err)
	}

	key, err := models.ParsePublicKey(strings.TrimSpace(string(data)))
	if err != nil {
		return models.PublicKey{}, fmt.Errorf("%s: %w", path, err)
	}
	return key, nil
}

// ReadPublicKeys reads every file in paths.
func ReadPublicKeys(paths []string) ([]models.PublicKey, error) {
	keys := make([]models.PublicKey, 0, len(paths))
	for _, p := range paths {
		key, err := ReadPublicKey(p)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ReadPasswords reads one password per line. An empty path yields none.
func ReadPasswords(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open passwords file: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		passwords = append(passwords, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read passwords file: %w", err)
	}

	return passwords, nil
}
