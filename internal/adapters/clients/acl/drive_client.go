package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/docseed/internal/adapters/clients/acl/drive"
	"github.com/jsamuelsen11/docseed/internal/domain"
	"github.com/jsamuelsen11/docseed/internal/domain/document"
	"github.com/jsamuelsen11/docseed/internal/platform/httpclient"
	"github.com/jsamuelsen11/docseed/internal/ports"
)

var _ ports.DriveClient = (*DriveClient)(nil)

const driveFilesPath = "/drive/v3/files"

// DriveClient is the outbound adapter for the Drive v3 files API. It
// implements [ports.DriveClient].
type DriveClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewDriveClient creates a DriveClient on top of client, whose BaseURL is the
// Drive API root (https://www.googleapis.com).
func NewDriveClient(client *httpclient.Client, logger *slog.Logger) *DriveClient {
	return &DriveClient{
		client: client,
		req:    NewRequester(client, logger),
	}
}

// CreateFile sends files.create with the given metadata and returns the new
// file. Shared drives are supported. The call is never retried: a repeated
// create would leave a duplicate document behind.
func (c *DriveClient) CreateFile(ctx context.Context, meta document.FileMetadata) (*document.File, error) {
	query := url.Values{}
	query.Set("supportsAllDrives", "true")
	query.Set("fields", drive.CreateFileFields)

	var dto drive.FileDTO
	if err := c.req.Post(httpclient.WithoutRetry(ctx), driveFilesPath, query, drive.ToCreateFileRequest(meta), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, fmt.Errorf("files.create returned no file id: %w", domain.ErrUnavailable)
	}
	return drive.ToDomainFile(&dto), nil
}

// Name identifies the Drive API in the health registry.
func (c *DriveClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the circuit breaker state of the Drive client.
func (c *DriveClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
