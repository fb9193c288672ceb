package configs

import "time"

// HTTP configures the public API server.
type HTTP struct {
	// Port is the TCP port the API server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown of both servers.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// RequestTimeout is applied to every API request through middleware.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}
