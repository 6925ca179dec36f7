package acl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/docseed/internal/adapters/clients/acl/docs"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/internal/platform/httpclient"
	"github.com/jsamuelsen11/docseed/internal/ports"
)

var _ ports.DocsClient = (*DocsClient)(nil)

// DocsClient is the outbound adapter for the Docs v1 documents API. It
// implements [ports.DocsClient].
type DocsClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewDocsClient creates a DocsClient on top of client, whose BaseURL is the
// Docs API root (https://docs.googleapis.com).
func NewDocsClient(client *httpclient.Client, logger *slog.Logger) *DocsClient {
	return &DocsClient{
		client: client,
		req:    NewRequester(client, logger),
	}
}

// BatchUpdate applies requests to the document in one documents.batchUpdate
// call. The API applies the batch atomically. An empty batch is a no-op.
func (c *DocsClient) BatchUpdate(ctx context.Context, documentID string, requests []document.Request) error {
	body := docs.ToBatchUpdateRequest(requests)
	if len(body.Requests) == 0 {
		return nil
	}

	path := "/v1/documents/" + url.PathEscape(documentID) + ":batchUpdate"

	var resp docs.BatchUpdateResponseDTO
	return c.req.Post(ctx, path, nil, body, &resp)
}

// Name identifies the Docs API in the health registry.
func (c *DocsClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the circuit breaker state of the Docs client.
func (c *DocsClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
