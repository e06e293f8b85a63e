package trust

import "errors"

// ErrRejected is the only verification error handed to crypto/tls, so the
// remote side cannot tell why its certificate was refused.
var ErrRejected = errors.New("certificate rejected")

var (
	ErrUnknownMode       = errors.New("unknown trust mode")
	ErrInvalidKnownHosts = errors.New("invalid known hosts file")
	ErrNoCertificate     = errors.New("no certificate")
	ErrInvalidCA         = errors.New("invalid ca bundle")
)

// verification reasons, logged locally only
var (
	errNoIdentity          = errors.New("certificate carries no identity")
	errUnknownIdentity     = errors.New("identity is not known")
	errFingerprintMismatch = errors.New("fingerprint does not match the identity")
	errUntrustedChain      = errors.New("certificate does not chain to a trusted root")
)
