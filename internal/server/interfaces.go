package server

// Server is the lifecycle contract for the transport servers managed by this
// package. Implementations block in [RunServer] until shutdown is requested
// and release their resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and releases its resources.
	Shutdown()
}
