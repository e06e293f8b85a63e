// Package app assembles a privacy node from its configuration: the enclave,
// storage, network directory, peer adapter, services, both HTTP interfaces
// and the background workers.
package app
