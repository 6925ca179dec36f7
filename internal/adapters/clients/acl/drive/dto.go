// Package drive holds the Drive v3 wire types used when creating files and
// their translation to and from the document domain.
package drive

// CreateFileRequestDTO is the metadata body of files.create.
type CreateFileRequestDTO struct {
	Name     string   `json:"name"`
	MimeType string   `json:"mimeType"`
	Parents  []string `json:"parents,omitempty"`
}

// FileDTO is the subset of the Drive File resource requested via the
// fields parameter.
type FileDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WebViewLink string `json:"webViewLink"`
}

// CreateFileFields is the partial-response mask sent with files.create.
const CreateFileFields = "id,name,webViewLink"
