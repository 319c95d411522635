package traceix

import "github.com/kelseyhightower/envconfig"

// envPrefix scopes every environment variable read by the SDK.
const envPrefix = "traceix"

// Config holds client settings sourced from TRACEIX_* environment variables.
// It is read once at construction; request logic never touches the
// environment directly.
type Config struct {
	// APIKey is the fallback API key, from TRACEIX_API_KEY.
	APIKey string `envconfig:"API_KEY"`
	// DisableTelemetry suppresses platform details in the User-Agent when
	// set to the literal "1" (TRACEIX_DISABLE_TELEMETRY). Any other value
	// leaves telemetry on.
	DisableTelemetry string `envconfig:"DISABLE_TELEMETRY"`
}

// FromEnv populates a Config from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TelemetryDisabled reports whether the telemetry opt-out sentinel is set.
func (c Config) TelemetryDisabled() bool {
	return c.DisableTelemetry == "1"
}
