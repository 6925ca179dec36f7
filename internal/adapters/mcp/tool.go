package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/internal/platform/telemetry"
)

// ToolCreateDocument is the name the tool is registered under.
const ToolCreateDocument = "createDocument"

const createDocumentDescription = "Create a new Google Docs document, optionally inside a folder, " +
	"and seed it with initial content. Markdown content is converted into native headings, " +
	"lists, links and text styles. Returns the document id, name and URL."

// CreateDocumentInput is the argument object of the createDocument tool.
type CreateDocumentInput struct {
	Title          string `json:"title"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
	InitialContent string `json:"initialContent,omitempty"`
	ContentFormat  string `json:"contentFormat,omitempty"`
}

// CreateDocumentOutput is the JSON payload returned on success.
type CreateDocumentOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (in CreateDocumentInput) toDomain() *document.CreationRequest {
	return &document.CreationRequest{
		Title:          in.Title,
		ParentFolderID: in.ParentFolderID,
		InitialContent: in.InitialContent,
		ContentFormat:  document.Format(in.ContentFormat),
	}
}

// createDocument handles a createDocument call. Service errors become tool
// error results carrying the error message; they are never protocol errors.
func (s *Server) createDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in CreateDocumentInput,
) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	created, err := s.svc.CreateDocument(ctx, in.toDomain())
	if err != nil {
		s.metrics.RecordToolCall(ctx, ToolCreateDocument, telemetry.ResultError, start)
		s.logger.DebugContext(ctx, "tool call failed",
			slog.String("tool", ToolCreateDocument),
			slog.Any("error", err),
		)
		return errorResult(err.Error()), nil, nil
	}

	payload, err := json.Marshal(CreateDocumentOutput{
		ID:   created.ID,
		Name: created.Name,
		URL:  created.URL,
	})
	if err != nil {
		s.metrics.RecordToolCall(ctx, ToolCreateDocument, telemetry.ResultError, start)
		return nil, nil, fmt.Errorf("encoding createDocument result: %w", err)
	}

	s.metrics.RecordToolCall(ctx, ToolCreateDocument, telemetry.ResultSuccess, start)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
