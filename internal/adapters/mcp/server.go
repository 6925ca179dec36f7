// Package mcp provides the inbound tool adapter. It exposes the document
// service as the createDocument tool over the Model Context Protocol, either
// on stdio or as a streamable HTTP handler.
package mcp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen11/docseed/internal/platform/config"
	"github.com/jsamuelsen11/docseed/internal/platform/telemetry"
	"github.com/jsamuelsen11/docseed/internal/ports"
)

// Server registers the document tools on an MCP server.
type Server struct {
	mcp     *mcp.Server
	svc     ports.DocumentService
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewServer creates a Server exposing svc. metrics may be nil; a nil logger
// discards output.
func NewServer(
	cfg config.MCPConfig,
	svc ports.DocumentService,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		svc:     svc,
		metrics: metrics,
		logger:  logger,
	}

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        ToolCreateDocument,
		Description: createDocumentDescription,
		InputSchema: createDocumentSchema(),
	}, s.createDocument)

	return s
}

// Connect starts a session over transport and returns immediately. Used by
// tests with in-memory transports.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcp.Connect(ctx, transport, nil)
}

// RunStdio serves a single session on stdin/stdout until the client
// disconnects or ctx is canceled. Nothing else may write to stdout while it
// runs.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.InfoContext(ctx, "serving tools on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP transport for mounting on a router.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}
