package otel

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string `envconfig:"HYDRATE_OTEL_ENDPOINT"`
	Enabled  bool   `envconfig:"HYDRATE_OTEL_ENABLED" default:"false"`
	Insecure bool   `envconfig:"HYDRATE_OTEL_INSECURE" default:"false"`
}
