package configs

import "time"

// Callback configures the email lifecycle callback endpoint. Concurrency
// caps in-flight callbacks of one bulk call; 0 launches them all at once.
type Callback struct {
	URL         string        `env:"URL" envDefault:"http://localhost:9001"`
	Secret      string        `env:"SECRET"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"10s"`
	Concurrency int           `env:"CONCURRENCY" envDefault:"0"`
}
