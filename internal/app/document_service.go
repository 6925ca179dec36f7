// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/docseed/internal/domain"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/internal/platform/telemetry"
	"github.com/jsamuelsen11/docseed/internal/ports"
)

var _ ports.DocumentService = (*DocumentService)(nil)

const tracerName = "github.com/jsamuelsen11/docseed/internal/app"

// DocumentService implements ports.DocumentService. It creates the container
// through the Drive port and then seeds content through the Docs port. Only
// the first step can fail the call.
//
// All fields are set at construction and never mutated, so one instance
// serves concurrent requests.
type DocumentService struct {
	drive      ports.DriveClient
	docs       ports.DocsClient
	translator ports.MarkdownTranslator
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// NewDocumentService creates a DocumentService. metrics may be nil; a nil
// logger discards output.
func NewDocumentService(
	drive ports.DriveClient,
	docs ports.DocsClient,
	translator ports.MarkdownTranslator,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *DocumentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DocumentService{
		drive:      drive,
		docs:       docs,
		translator: translator,
		metrics:    metrics,
		logger:     logger,
	}
}

// CreateDocument creates the document and, when initial content is given,
// seeds it. The returned document reflects the container regardless of
// whether seeding succeeded.
func (s *DocumentService) CreateDocument(
	ctx context.Context,
	req *document.CreationRequest,
) (*document.CreatedDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	format := req.ContentFormat.OrDefault()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "DocumentService.CreateDocument",
		trace.WithAttributes(
			attribute.Bool("document.has_parent", req.ParentFolderID != ""),
			attribute.Bool("document.has_content", req.HasContent()),
			attribute.String("document.content_format", format.String()),
		),
	)
	defer span.End()

	s.logger.InfoContext(ctx, "creating document",
		slog.String("title", req.Title),
		slog.String("parent_folder_id", req.ParentFolderID),
		slog.Bool("has_content", req.HasContent()),
		slog.String("content_format", format.String()),
	)

	created, err := s.createContainer(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("document.id", created.ID))

	if !req.HasContent() {
		s.metrics.RecordContentInjection(ctx, format.String(), telemetry.ResultSkipped)
		return created, nil
	}

	if err := s.seedContent(ctx, created.ID, req.InitialContent, format); err != nil {
		span.AddEvent("content injection failed", trace.WithAttributes(attribute.String("error", err.Error())))
		s.metrics.RecordContentInjection(ctx, format.String(), telemetry.ResultError)
		s.logger.WarnContext(ctx, "document created but initial content could not be inserted",
			slog.String("operation", "CreateDocument"),
			slog.String("document_id", created.ID),
			slog.String("content_format", format.String()),
			slog.Any("error", err),
		)
		return created, nil
	}

	s.metrics.RecordContentInjection(ctx, format.String(), telemetry.ResultSuccess)
	return created, nil
}

// createContainer issues the single create call and classifies its failure.
func (s *DocumentService) createContainer(
	ctx context.Context,
	req *document.CreationRequest,
) (*document.CreatedDocument, error) {
	file, err := s.drive.CreateFile(ctx, req.Metadata())
	if err != nil {
		creationErr := classifyCreationError(err)
		s.logger.ErrorContext(ctx, "failed to create document",
			slog.String("operation", "CreateDocument"),
			slog.String("title", req.Title),
			slog.String("parent_folder_id", req.ParentFolderID),
			slog.String("kind", creationErr.Kind.Error()),
			slog.Any("error", err),
		)
		return nil, creationErr
	}

	created := document.NewCreatedDocument(file)
	if created.Name == "" {
		created.Name = req.Title
	}
	return created, nil
}

// classifyCreationError maps the Drive failure onto the closed set
// of creation error kinds.
func classifyCreationError(err error) *document.CreationError {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return document.NewCreationError(document.ErrInvalidParent, err)
	case errors.Is(err, domain.ErrForbidden):
		return document.NewCreationError(document.ErrPermissionDenied, err)
	default:
		return document.NewCreationError(document.ErrCreationFailed, err)
	}
}

// seedContent inserts content into the new document. Its error is reported
// by the caller and never returned from CreateDocument.
func (s *DocumentService) seedContent(ctx context.Context, documentID, content string, format document.Format) error {
	switch format {
	case document.FormatRaw:
		return s.docs.BatchUpdate(ctx, documentID, document.NewInsertText(document.BodyStartIndex, content))

	case document.FormatMarkdown:
		tr, err := s.translator.Translate(content, document.MarkdownOptions{
			StartIndex:          document.BodyStartIndex,
			FirstHeadingAsTitle: true,
		})
		if err != nil {
			return fmt.Errorf("translating markdown: %w", err)
		}
		if len(tr.Requests) > 0 {
			if err := s.docs.BatchUpdate(ctx, documentID, tr.Requests); err != nil {
				return err
			}
		}
		s.logger.InfoContext(ctx, "markdown content inserted",
			slog.String("document_id", documentID),
			slog.Int("requests", len(tr.Requests)),
			slog.String("summary", tr.Outcome.Summary()),
		)
		return nil

	default:
		return fmt.Errorf("unsupported content format %q", format)
	}
}
