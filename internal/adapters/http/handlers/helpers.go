package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/docseed/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docseed/internal/domain"
)

// maxJSONBodyBytes caps request bodies. initialContent may carry a whole
// Markdown document, hence 4 MiB rather than the usual few KiB.
const maxJSONBodyBytes = 4 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// decodeJSONBody reads exactly one JSON value into dst. Oversized bodies,
// malformed JSON and trailing data are reported as a body validation error.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))

	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err == nil {
		return true
	}

	dto.WriteErrorResponse(w, r, &domain.ValidationError{
		Fields: map[string]string{"body": bodyProblem(err)},
	})
	return false
}

var errTrailingData = errors.New("trailing data after JSON value")

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("exceeds %d bytes", tooLarge.Limit)
	case errors.Is(err, io.EOF):
		return "is empty"
	case errors.Is(err, errTrailingData):
		return "must contain a single JSON object"
	default:
		return "invalid JSON"
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes then validates dst, writing the problem response
// itself when either step fails.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
