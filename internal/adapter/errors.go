package adapter

import "errors"

var (
	// ErrPeerUnreachable covers dial failures, TLS rejections and timeouts.
	ErrPeerUnreachable = errors.New("peer unreachable")

	// ErrPeerRejected is a 4xx answer: the peer refused the request.
	ErrPeerRejected = errors.New("peer rejected request")

	// ErrPeerFailed is a 5xx answer.
	ErrPeerFailed = errors.New("peer failed to process request")

	ErrInvalidPeerResponse = errors.New("invalid peer response")
)
