package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/docseed/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docseed/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docseed/internal/domain"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/mocks"
)

func newDocumentHandler(t *testing.T) (*handlers.DocumentHandler, *mocks.MockDocumentService) {
	t.Helper()
	svc := mocks.NewMockDocumentService(t)
	return handlers.NewDocumentHandler(svc), svc
}

func postDocument(h *handlers.DocumentHandler, body *bytes.Buffer) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateDocument(rec, req)
	return rec
}

func TestCreateDocument_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	svc.EXPECT().CreateDocument(mock.Anything, &document.CreationRequest{
		Title:          "Q3 Report",
		ParentFolderID: "F1",
		InitialContent: "# Summary",
		ContentFormat:  document.FormatMarkdown,
	}).Return(&document.CreatedDocument{
		ID:   "abc123",
		Name: "Q3 Report",
		URL:  "https://docs.google.com/document/d/abc123/edit",
	}, nil)

	rec := postDocument(h, jsonBody(t, dto.CreateDocumentRequest{
		Title:          "Q3 Report",
		ParentFolderID: "F1",
		InitialContent: "# Summary",
		ContentFormat:  "markdown",
	}))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.DocumentResponse](t, rec)
	if resp.ID != "abc123" {
		t.Errorf("ID = %q, want %q", resp.ID, "abc123")
	}
	if resp.URL != "https://docs.google.com/document/d/abc123/edit" {
		t.Errorf("URL = %q, want the document link", resp.URL)
	}
}

func TestCreateDocument_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newDocumentHandler(t)

	rec := postDocument(h, jsonBody(t, dto.CreateDocumentRequest{ContentFormat: "html"}))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2 (title, contentFormat)", len(resp.Errors))
	}
	svc.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
}

func TestCreateDocument_BadBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "malformed", body: "{not json", message: "invalid JSON"},
		{name: "empty", body: "", message: "is empty"},
		{name: "two objects", body: `{"title":"a"} {"title":"b"}`, message: "must contain a single JSON object"},
		{name: "too large", body: `{"title":"big","initialContent":"` + strings.Repeat("x", 5<<20) + `"}`, message: "exceeds 4194304 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newDocumentHandler(t)

			rec := postDocument(h, bytes.NewBufferString(tt.body))

			requireStatus(t, rec, http.StatusBadRequest)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.body" || resp.Errors[0].Message != tt.message {
				t.Errorf("Errors = %+v, want body.body %q", resp.Errors, tt.message)
			}
			svc.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateDocument_CreationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "invalid parent",
			err:        document.NewCreationError(document.ErrInvalidParent, domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantDetail: "Parent folder not found",
		},
		{
			name:       "permission denied",
			err:        document.NewCreationError(document.ErrPermissionDenied, domain.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantDetail: "Permission denied",
		},
		{
			name:       "creation failed",
			err:        document.NewCreationError(document.ErrCreationFailed, domain.ErrUnavailable),
			wantStatus: http.StatusBadGateway,
			wantDetail: "Failed to create document: unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newDocumentHandler(t)

			svc.EXPECT().CreateDocument(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := postDocument(h, jsonBody(t, dto.CreateDocumentRequest{Title: "Notes", ParentFolderID: "F1"}))

			requireStatus(t, rec, tt.wantStatus)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if !strings.HasPrefix(resp.Detail, tt.wantDetail) {
				t.Errorf("Detail = %q, want prefix %q", resp.Detail, tt.wantDetail)
			}
		})
	}
}
