package server

// Server is the lifecycle of the REST service.
type Server interface {
	// RunServer serves until a stop signal arrives.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
