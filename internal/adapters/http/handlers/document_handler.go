// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/docseed/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docseed/internal/ports"
)

// DocumentHandler handles HTTP requests for document creation.
type DocumentHandler struct {
	svc ports.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler with the given service port.
func NewDocumentHandler(svc ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// CreateDocument handles POST /api/v1/documents. A document whose initial
// content could not be inserted is still reported as 201 Created.
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDocumentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateDocument(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToDocumentResponse(created))
}
