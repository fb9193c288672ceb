package configs

// Metrics configures the operational server exposing /metrics and /healthz.
type Metrics struct {
	Address string `env:"ADDRESS" envDefault:":9090"`
}
