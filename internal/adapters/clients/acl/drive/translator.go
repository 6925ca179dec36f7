package drive

import "github.com/jsamuelsen11/docseed/internal/domain/document"

// ToCreateFileRequest converts domain metadata to the files.create body.
func ToCreateFileRequest(meta document.FileMetadata) CreateFileRequestDTO {
	return CreateFileRequestDTO{
		Name:     meta.Name,
		MimeType: meta.MimeType,
		Parents:  meta.Parents,
	}
}

// ToDomainFile converts the files.create response to a domain File.
func ToDomainFile(dto *FileDTO) *document.File {
	return &document.File{
		ID:          dto.ID,
		Name:        dto.Name,
		WebViewLink: dto.WebViewLink,
	}
}
