package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.MCP.validate(),
		c.serverIfHTTP(),
		c.Clients.Drive.validate("clients.drive"),
		c.Clients.Docs.validate("clients.docs"),
		c.Google.Auth.validate(),
		c.Telemetry.validate(),
	)
}

// serverIfHTTP validates the HTTP server settings only when they are used.
func (c *Config) serverIfHTTP() error {
	if c.MCP.Transport != TransportHTTP {
		return nil
	}
	return c.Server.validate()
}

// MCP transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (m *MCPConfig) validate() error {
	var errs []error

	switch m.Transport {
	case TransportStdio, TransportHTTP:
		// Valid transports.
	default:
		errs = append(errs, fmt.Errorf("mcp.transport must be one of: stdio, http; got %q", m.Transport))
	}
	if m.Transport == TransportHTTP && !strings.HasPrefix(m.Path, "/") {
		errs = append(errs, fmt.Errorf("mcp.path must start with '/', got %q", m.Path))
	}
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, errors.New("mcp.name must not be empty"))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative, got %f",
			prefix, cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			prefix, cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (a *GoogleAuthConfig) validate() error {
	if a.RefreshToken == "" {
		return nil
	}

	var errs []error

	if a.ClientID == "" {
		errs = append(errs, errors.New("google.auth.client_id must not be empty when refresh_token is set"))
	}
	if a.ClientSecret == "" {
		errs = append(errs, errors.New("google.auth.client_secret must not be empty when refresh_token is set"))
	}
	if a.TokenURL == "" {
		errs = append(errs, errors.New("google.auth.token_url must not be empty when refresh_token is set"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
