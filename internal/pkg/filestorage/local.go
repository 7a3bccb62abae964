package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/archiva/campusconnect/internal/pkg/logger"
)

// publicPrefix is the URL path the uploads directory is served under.
const publicPrefix = "/uploads"

// LocalStorage saves uploaded files to a directory on the local filesystem.
// Filenames are regenerated per upload so concurrent uploads never collide.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile stores the uploaded file under a unique name and returns its
// public "/uploads/..." path.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	uniqueName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueName).Msg("File saved")
	return publicPrefix + "/" + uniqueName, nil
}

// DeleteFile removes a stored file given its public path. A missing file is
// treated as already deleted.
func (ls *LocalStorage) DeleteFile(publicPath string) error {
	if publicPath == "" {
		return nil
	}

	filename := filepath.Base(publicPath)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", publicPath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// BasePath returns the directory files are stored in, for static serving.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
