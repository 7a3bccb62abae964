package filestorage

import "mime/multipart"

// Storage defines the interface for uploaded file storage operations.
type Storage interface {
	// SaveFile stores an uploaded file and returns the public path to
	// persist alongside the owning row (e.g. "/uploads/<name>").
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously stored file. Deleting a file that no
	// longer exists is not an error.
	DeleteFile(publicPath string) error
}
