// Package document holds the domain model for creating a document container
// and seeding it with initial content: the creation request, the created
// document, the content-mutation requests sent to the document service, and
// the caller-facing creation errors.
package document

import (
	"fmt"

	"github.com/jsamuelsen11/docseed/internal/domain"
)

// MimeTypeDocument is the Drive MIME type assigned to every created container.
const MimeTypeDocument = "application/vnd.google-apps.document"

// BodyStartIndex is the first insertable position in a document body. Index 0
// is the implicit root boundary of the document model.
const BodyStartIndex = 1

// CreationRequest describes a document to create and its optional initial content.
type CreationRequest struct {
	Title          string
	ParentFolderID string
	InitialContent string
	ContentFormat  Format
}

// Validate checks business rules for the CreationRequest.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. An empty ContentFormat is valid and means markdown.
// Like the tool schema (minLength 1), it accepts a whitespace-only title.
func (r *CreationRequest) Validate() error {
	if r == nil {
		return &domain.ValidationError{Fields: map[string]string{"request": domain.MsgRequired}}
	}

	fields := make(map[string]string)

	if r.Title == "" {
		fields["title"] = domain.MsgRequired
	}
	if !r.ContentFormat.OrDefault().IsValid() {
		fields["contentFormat"] = fmt.Sprintf("invalid: %q", r.ContentFormat)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// HasContent reports whether initial content was supplied. Empty content is
// treated the same as absent content.
func (r *CreationRequest) HasContent() bool {
	return r.InitialContent != ""
}

// Metadata builds the container metadata for Drive. The parent
// list is empty when no folder was given, which places the document at the
// root of the caller's drive.
func (r *CreationRequest) Metadata() FileMetadata {
	meta := FileMetadata{
		Name:     r.Title,
		MimeType: MimeTypeDocument,
	}
	if r.ParentFolderID != "" {
		meta.Parents = []string{r.ParentFolderID}
	}
	return meta
}

// FileMetadata is the container description sent to Drive.
type FileMetadata struct {
	Name     string
	MimeType string
	Parents  []string
}

// File is a container object as reported by Drive.
type File struct {
	ID          string
	Name        string
	WebViewLink string
}

// CreatedDocument is the result returned to the caller once the container
// exists. It is never modified after creation.
type CreatedDocument struct {
	ID   string
	Name string
	URL  string
}

// NewCreatedDocument builds the caller-facing result from the Drive file.
func NewCreatedDocument(f *File) *CreatedDocument {
	return &CreatedDocument{
		ID:   f.ID,
		Name: f.Name,
		URL:  f.WebViewLink,
	}
}
