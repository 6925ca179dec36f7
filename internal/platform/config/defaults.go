package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10
	defaultRateLimitBurst = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"mcp.transport": "stdio",
		"mcp.path":      "/mcp",
		"mcp.name":      "docseed",
		"mcp.version":   "0.1.0",

		"google.auth.access_token":  "",
		"google.auth.client_id":     "",
		"google.auth.client_secret": "",
		"google.auth.refresh_token": "",
		"google.auth.token_url":     "https://oauth2.googleapis.com/token",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "docseed",
	}

	clientDefaults(d, "clients.drive", "https://www.googleapis.com")
	clientDefaults(d, "clients.docs", "https://docs.googleapis.com")

	return d
}

// clientDefaults fills the shared downstream client defaults under prefix.
func clientDefaults(d map[string]any, prefix, baseURL string) {
	d[prefix+".base_url"] = baseURL
	d[prefix+".timeout"] = "30s"
	d[prefix+".retry.max_attempts"] = defaultRetryMaxAttempts
	d[prefix+".retry.initial_interval"] = "100ms"
	d[prefix+".retry.max_interval"] = "10s"
	d[prefix+".retry.multiplier"] = defaultRetryMultiplier
	d[prefix+".circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
	d[prefix+".circuit_breaker.timeout"] = "30s"
	d[prefix+".circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
	d[prefix+".rate_limit.requests_per_second"] = defaultRateLimitRPS
	d[prefix+".rate_limit.burst_size"] = defaultRateLimitBurst
}
