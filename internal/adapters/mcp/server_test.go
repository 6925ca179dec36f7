package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/docseed/internal/app"
	"github.com/jsamuelsen11/docseed/internal/domain"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/internal/platform/config"
	"github.com/jsamuelsen11/docseed/internal/ports"
	"github.com/jsamuelsen11/docseed/mocks"
)

var testConfig = config.MCPConfig{Name: "docseed-test", Version: "0.0.1"}

// connect starts the tool server on an in-memory transport and returns a
// connected client session.
func connect(t *testing.T, svc ports.DocumentService) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv := NewServer(testConfig, svc, nil, nil)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ss, err := srv.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}

func callCreateDocument(t *testing.T, cs *mcp.ClientSession, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      ToolCreateDocument,
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content type = %T, want *mcp.TextContent", res.Content[0])
	return text.Text
}

func TestServer_ListTools(t *testing.T) {
	t.Parallel()
	cs := connect(t, mocks.NewMockDocumentService(t))

	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, res.Tools, 1)

	tool := res.Tools[0]
	assert.Equal(t, ToolCreateDocument, tool.Name)
	assert.NotEmpty(t, tool.Description)

	raw, err := json.Marshal(tool.InputSchema)
	require.NoError(t, err)
	var schema jsonschema.Schema
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"title"}, schema.Required)
	require.Contains(t, schema.Properties, "title")
	require.NotNil(t, schema.Properties["title"].MinLength)
	assert.Equal(t, 1, *schema.Properties["title"].MinLength)
	assert.Contains(t, schema.Properties, "parentFolderId")
	assert.Contains(t, schema.Properties, "initialContent")
	require.Contains(t, schema.Properties, "contentFormat")
	assert.ElementsMatch(t, []any{"markdown", "raw"}, schema.Properties["contentFormat"].Enum)
	assert.JSONEq(t, `"markdown"`, string(schema.Properties["contentFormat"].Default))
}

func TestServer_CreateDocument_Success(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockDocumentService(t)
	cs := connect(t, svc)

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

	res := callCreateDocument(t, cs, map[string]any{
		"title":          "Q3 Report",
		"parentFolderId": "F1",
		"initialContent": "# Summary",
		"contentFormat":  "markdown",
	})

	assert.False(t, res.IsError)
	assert.JSONEq(t,
		`{"id":"abc123","name":"Q3 Report","url":"https://docs.google.com/document/d/abc123/edit"}`,
		resultText(t, res))
}

func TestServer_CreateDocument_OptionalArgumentsOmitted(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockDocumentService(t)
	cs := connect(t, svc)

	svc.EXPECT().CreateDocument(mock.Anything, mock.MatchedBy(func(req *document.CreationRequest) bool {
		return req.Title == "Notes" &&
			req.ParentFolderID == "" &&
			req.InitialContent == "" &&
			req.ContentFormat.OrDefault() == document.FormatMarkdown
	})).Return(&document.CreatedDocument{ID: "d1", Name: "Notes", URL: "u"}, nil)

	res := callCreateDocument(t, cs, map[string]any{"title": "Notes"})

	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"id":"d1","name":"Notes","url":"u"}`, resultText(t, res))
}

func TestServer_CreateDocument_WhitespaceTitleReachesDrive(t *testing.T) {
	t.Parallel()

	drive := mocks.NewMockDriveClient(t)
	svc := app.NewDocumentService(drive, mocks.NewMockDocsClient(t), mocks.NewMockMarkdownTranslator(t), nil, nil)
	cs := connect(t, svc)

	drive.EXPECT().CreateFile(mock.Anything, document.FileMetadata{
		Name:     " ",
		MimeType: document.MimeTypeDocument,
	}).Return(&document.File{ID: "ws1", Name: " ", WebViewLink: "https://docs.google.com/document/d/ws1/edit"}, nil)

	res := callCreateDocument(t, cs, map[string]any{"title": " "})

	assert.False(t, res.IsError, "result: %s", resultText(t, res))
	assert.JSONEq(t,
		`{"id":"ws1","name":" ","url":"https://docs.google.com/document/d/ws1/edit"}`,
		resultText(t, res))
}

func TestServer_CreateDocument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "invalid parent",
			err:     document.NewCreationError(document.ErrInvalidParent, domain.ErrNotFound),
			wantMsg: "Parent folder not found. Check the folder ID.",
		},
		{
			name:    "permission denied",
			err:     document.NewCreationError(document.ErrPermissionDenied, domain.ErrForbidden),
			wantMsg: "Permission denied. Make sure you have write access to the destination folder.",
		},
		{
			name:    "creation failed",
			err:     document.NewCreationError(document.ErrCreationFailed, fmt.Errorf("Backend Error: %w", domain.ErrUnavailable)),
			wantMsg: "Failed to create document: Backend Error: unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockDocumentService(t)
			cs := connect(t, svc)

			svc.EXPECT().CreateDocument(mock.Anything, mock.Anything).Return(nil, tt.err)

			res := callCreateDocument(t, cs, map[string]any{"title": "Notes", "parentFolderId": "F1"})

			assert.True(t, res.IsError)
			assert.Equal(t, tt.wantMsg, resultText(t, res))
		})
	}
}

func TestServer_CreateDocument_RejectsInvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "missing title", args: map[string]any{"initialContent": "x"}},
		{name: "empty title", args: map[string]any{"title": ""}},
		{name: "unknown format", args: map[string]any{"title": "x", "contentFormat": "html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockDocumentService(t)
			cs := connect(t, svc)

			res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      ToolCreateDocument,
				Arguments: tt.args,
			})
			if err == nil {
				assert.True(t, res.IsError, "CallTool(%v) succeeded, want rejection", tt.args)
			}
			svc.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateDocumentInput_ToDomain(t *testing.T) {
	t.Parallel()

	in := CreateDocumentInput{
		Title:          "T",
		ParentFolderID: "P",
		InitialContent: "C",
		ContentFormat:  "raw",
	}
	assert.Equal(t, &document.CreationRequest{
		Title:          "T",
		ParentFolderID: "P",
		InitialContent: "C",
		ContentFormat:  document.FormatRaw,
	}, in.toDomain())
}
