package enclave

import "errors"

var (
	ErrEncrypt       = errors.New("encryption failed")
	ErrDecrypt       = errors.New("decryption failed")
	ErrUnknownKey    = errors.New("no private key for identity")
	ErrNoKeys        = errors.New("enclave requires at least one key pair")
	ErrKeyMismatch   = errors.New("private key does not match public key")
	ErrInvalidKey    = errors.New("invalid key file")
	ErrWrongPassword = errors.New("wrong key file password")
)
