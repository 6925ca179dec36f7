package ports

import (
	"context"

	"github.com/jsamuelsen11/docseed/internal/domain/document"
)

// DocumentService defines the service port for document creation.
// Implemented by the application layer; called by inbound adapters.
type DocumentService interface {
	// CreateDocument creates a document container and, when initial content
	// is supplied, seeds it on a best-effort basis.
	//
	// Returns a *document.CreationError (ErrInvalidParent,
	// ErrPermissionDenied or ErrCreationFailed) only when the container could
	// not be created. A failure while seeding content is logged and never
	// returned. Returns domain.ErrValidation if the request is malformed.
	CreateDocument(ctx context.Context, req *document.CreationRequest) (*document.CreatedDocument, error)
}
