package configs

import "time"

// Scheduler configures the periodic refresh of due autopilots.
type Scheduler struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Spec is a standard five-field cron expression.
	Spec     string `env:"SPEC" envDefault:"0 * * * *"`
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c Scheduler) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
