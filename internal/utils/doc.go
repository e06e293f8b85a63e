// Package utils holds small helpers shared by the transport layers: JSON
// response writing, the outbound HTTP client and trace id generation.
package utils
