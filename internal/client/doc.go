// Package client implements the command-line client application runtime.
//
// It wires the server adapter, the local share cache, the vault session, and
// background synchronization into a single process lifecycle. The client is
// where all plaintext key material lives: the vault session unwraps keys in
// memory, and only wrapped blobs ever travel through the adapter.
package client
