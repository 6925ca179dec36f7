package mcp

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/jsamuelsen11/docseed/internal/domain/document"
)

// createDocumentSchema describes the createDocument arguments. It is written
// out rather than inferred so that minLength, the format enum and its
// default are advertised to callers.
func createDocumentSchema() *jsonschema.Schema {
	minTitle := 1
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"title": {
				Type:        "string",
				Description: "Title of the new document.",
				MinLength:   &minTitle,
			},
			"parentFolderId": {
				Type:        "string",
				Description: "ID of the folder to create the document in. Defaults to the root of the caller's drive.",
			},
			"initialContent": {
				Type:        "string",
				Description: "Content to insert into the new document.",
			},
			"contentFormat": {
				Type:        "string",
				Description: "How initialContent is interpreted: markdown is converted into headings, lists and styles, raw is inserted verbatim.",
				Enum:        []any{string(document.FormatMarkdown), string(document.FormatRaw)},
				Default:     json.RawMessage(`"` + string(document.FormatMarkdown) + `"`),
			},
		},
		Required: []string{"title"},
	}
}
