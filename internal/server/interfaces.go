package server

// Server is the lifecycle contract for the API's inbound transport.
//
// [RunServer] blocks until a stop signal arrives and in-flight requests
// drain; [Shutdown] asks the transport to stop accepting new work.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
