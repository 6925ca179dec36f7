package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/docseed/internal/domain"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one invalid request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problem binds an error kind to its status and problem type.
type problem struct {
	kind   error
	status int
	typ    string
}

// problems is matched in order, first hit wins. The creation kinds come
// before the generic sentinels because a CreationError also unwraps to the
// Drive error that caused it.
var problems = []problem{
	{kind: document.ErrInvalidParent, status: http.StatusNotFound, typ: "urn:docseed:problem:invalid-parent"},
	{kind: document.ErrPermissionDenied, status: http.StatusForbidden, typ: "urn:docseed:problem:permission-denied"},
	{kind: document.ErrCreationFailed, status: http.StatusBadGateway, typ: "urn:docseed:problem:creation-failed"},
	{kind: domain.ErrValidation, status: http.StatusBadRequest},
	{kind: domain.ErrNotFound, status: http.StatusNotFound},
	{kind: domain.ErrForbidden, status: http.StatusForbidden},
	{kind: domain.ErrUnauthenticated, status: http.StatusUnauthorized},
	{kind: domain.ErrConflict, status: http.StatusConflict},
	{kind: domain.ErrUnavailable, status: http.StatusBadGateway},
}

func classify(err error) problem {
	for _, p := range problems {
		if errors.Is(err, p.kind) {
			return p
		}
	}
	return problem{status: http.StatusInternalServerError}
}

// NewErrorResponse builds the problem document for err. Creation failures
// get a docseed problem type so clients can branch without parsing detail;
// everything else is about:blank.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	p := classify(err)

	resp := ErrorResponse{
		Type:     cmp.Or(p.typ, "about:blank"),
		Title:    http.StatusText(p.status),
		Status:   p.status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

// fieldDetails lists validation failures sorted by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
