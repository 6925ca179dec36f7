package ports

import (
	"context"

	"github.com/jsamuelsen11/docseed/internal/domain/document"
)

// DriveClient defines the client port for Google Drive.
// Implemented by the ACL adapter; called by the application layer.
type DriveClient interface {
	// CreateFile creates a container object described by meta and returns
	// its identifier, name and web link. The call is attempted exactly once.
	// Returns domain.ErrNotFound if a parent folder does not exist and
	// domain.ErrForbidden if the caller may not write to the destination.
	CreateFile(ctx context.Context, meta document.FileMetadata) (*document.File, error)
}

// DocsClient defines the client port for the downstream document service.
// Implemented by the ACL adapter; called by the application layer.
type DocsClient interface {
	// BatchUpdate applies the requests to the document in order. The
	// document service applies a batch atomically: either every request
	// succeeds or none does.
	BatchUpdate(ctx context.Context, documentID string, requests []document.Request) error
}

// MarkdownTranslator converts Markdown into an ordered batch of mutation
// requests starting at opts.StartIndex. Implementations are pure: they do
// not contact the document service.
type MarkdownTranslator interface {
	Translate(markdown string, opts document.MarkdownOptions) (*document.Translation, error)
}
