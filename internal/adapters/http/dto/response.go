// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/docseed/internal/domain/document"

// DocumentResponse represents a created document in HTTP responses.
type DocumentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ToDocumentResponse converts a created document to an HTTP response DTO.
func ToDocumentResponse(d *document.CreatedDocument) DocumentResponse {
	return DocumentResponse{
		ID:   d.ID,
		Name: d.Name,
		URL:  d.URL,
	}
}

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks maps each downstream dependency to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
