package client

// Client is the lifecycle contract for a runnable client application.
type Client interface {
	// Run executes the client and blocks until the requested command
	// finishes.
	Run() error
}
