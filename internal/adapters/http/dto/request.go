package dto

import (
	"fmt"

	"github.com/jsamuelsen11/docseed/internal/domain"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
)

const msgRequired = "is required"

// CreateDocumentRequest represents the JSON body for creating a document.
// Field names match the createDocument tool arguments.
type CreateDocumentRequest struct {
	Title          string `json:"title"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
	InitialContent string `json:"initialContent,omitempty"`
	ContentFormat  string `json:"contentFormat,omitempty"`
}

// Validate checks that required fields are present and the content format,
// when given, is known. Returns a *domain.ValidationError if any checks fail.
func (r *CreateDocumentRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title == "" {
		fields["title"] = msgRequired
	}
	if r.ContentFormat != "" && !document.Format(r.ContentFormat).IsValid() {
		fields["contentFormat"] = fmt.Sprintf("invalid: %q", r.ContentFormat)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request into a domain creation request.
func (r *CreateDocumentRequest) ToDomain() *document.CreationRequest {
	return &document.CreationRequest{
		Title:          r.Title,
		ParentFolderID: r.ParentFolderID,
		InitialContent: r.InitialContent,
		ContentFormat:  document.Format(r.ContentFormat),
	}
}
