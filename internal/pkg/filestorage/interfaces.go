package filestorage

import "mime/multipart"

// FileStorage abstracts where uploaded files end up. The platform only
// ships a local-disk implementation; object stores are a deployment concern.
type FileStorage interface {
	// SaveFileWithPath stores the upload under the given subdirectory and
	// returns the URL the file is reachable at.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)
	// DeleteFileByURL removes a previously stored file given its URL.
	DeleteFileByURL(fileURL string) error
}
