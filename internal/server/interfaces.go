package server

// Server is a runnable transport.
type Server interface {
	// RunServer blocks until a termination signal arrives or the listener
	// fails, and returns once the server has shut down.
	RunServer() error

	Shutdown()
}
