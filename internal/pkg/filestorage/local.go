package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files are stored
	baseURL  string // The base URL prepended to returned file paths
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// ValidateExtension checks the upload's extension against an allow-list.
// Extensions are matched case-insensitively and without the leading dot.
func ValidateExtension(fileHeader *multipart.FileHeader, allowed []string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	for _, a := range allowed {
		if ext == strings.TrimPrefix(strings.ToLower(a), ".") {
			return nil
		}
	}
	return apperrors.NewCustomError(apperrors.ErrFileTypeNotAllowed,
		fmt.Sprintf("file extension %q is not allowed (allowed: %s)", ext, strings.Join(allowed, ", ")))
}

// SaveFileWithPath saves a file to a subdirectory under the storage root
// and returns the URL it will be served at.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	if subPath != "" {
		return strings.TrimRight(ls.baseURL, "/") + "/" + subPath + "/" + uniqueFilename, nil
	}
	return strings.TrimRight(ls.baseURL, "/") + "/" + uniqueFilename, nil
}

// DeleteFileByURL removes a stored file given the URL returned by SaveFileWithPath.
func (ls *LocalStorage) DeleteFileByURL(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	relative := strings.TrimPrefix(fileURL, strings.TrimRight(ls.baseURL, "/"))
	relative = strings.TrimLeft(relative, "/")
	if relative == "" {
		return nil
	}

	fullPath := filepath.Join(ls.basePath, filepath.FromSlash(relative))

	// Refuse paths that escape the storage root
	if !strings.HasPrefix(filepath.Clean(fullPath), filepath.Clean(ls.basePath)) {
		return fmt.Errorf("refusing to delete file outside storage root: %s", fileURL)
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", fullPath).Msg("File already gone during delete")
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}
