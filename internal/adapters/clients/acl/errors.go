// Package acl implements the Anti-Corruption Layer between the Google Drive
// and Docs REST APIs and the document domain. Wire formats live in the drive
// and docs subpackages; request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/docseed/internal/domain"
)

const maxErrorBodySize = 1 << 20 // 1 MB

// Reasons reported by Google APIs that mean "slow down" even though the
// status is 403.
const (
	reasonRateLimitExceeded     = "rateLimitExceeded"
	reasonUserRateLimitExceeded = "userRateLimitExceeded"
)

// googleErrorEnvelope is the JSON error body returned by Google REST APIs.
type googleErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Errors  []struct {
			Reason  string `json:"reason"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"error"`
}

// APIError is a non-2xx response from a Google API. It unwraps to the domain
// sentinel that classifies it.
type APIError struct {
	StatusCode int
	Status     string
	Reason     string
	Message    string
	Kind       error
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (HTTP %d, %s)", e.Message, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// TranslateHTTPError maps a Google API error response to an *APIError whose
// Kind is one of the domain sentinels.
func TranslateHTTPError(resp *http.Response) error {
	env := parseErrorEnvelope(resp)

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     env.Error.Status,
		Message:    env.Error.Message,
	}
	if len(env.Error.Errors) > 0 {
		apiErr.Reason = env.Error.Errors[0].Reason
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		apiErr.Kind = domain.ErrNotFound
	case resp.StatusCode == http.StatusForbidden && isRateLimitReason(apiErr.Reason):
		apiErr.Kind = domain.ErrUnavailable
	case resp.StatusCode == http.StatusForbidden:
		apiErr.Kind = domain.ErrForbidden
	case resp.StatusCode == http.StatusUnauthorized:
		apiErr.Kind = domain.ErrUnauthenticated
	case resp.StatusCode == http.StatusBadRequest:
		apiErr.Kind = domain.ErrValidation
	case resp.StatusCode == http.StatusConflict:
		apiErr.Kind = domain.ErrConflict
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		apiErr.Kind = domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, apiErr.Message)
	}

	return apiErr
}

func isRateLimitReason(reason string) bool {
	return reason == reasonRateLimitExceeded || reason == reasonUserRateLimitExceeded
}

// parseErrorEnvelope reads the Google error body. An unreadable or
// non-JSON body yields a zero envelope.
func parseErrorEnvelope(resp *http.Response) googleErrorEnvelope {
	var env googleErrorEnvelope
	if resp.Body == nil {
		return env
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return env
	}
	_ = json.Unmarshal(body, &env)
	return env
}
