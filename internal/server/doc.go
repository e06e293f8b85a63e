// Package server runs the node and client HTTP interfaces of the privacy
// node, each optionally terminating TLS with its own trust policy, and shuts
// them down gracefully.
package server
