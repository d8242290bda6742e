package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize is the byte ceiling for a single uploaded file.
const MaxUploadSize = 10 << 20 // 10 MB

// Storage persists uploaded files and resolves their public URLs.
type Storage interface {
	Save(key string, contentType string, reader io.Reader) error
	Delete(key string) error
	PublicURL(key string) string
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var documentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// GenerateKey builds a collision-free storage key scoped by user and kind,
// keeping the original extension.
func GenerateKey(userID uint, kind, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s/%d/%s%s", kind, userID, uuid.New().String(), ext)
}

// SniffUpload reads the file header and returns the detected content type.
// Detection uses the content itself, not the client-declared MIME type.
func SniffUpload(file multipart.File) (string, error) {
	header := make([]byte, 512)
	n, err := file.Read(header)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(header[:n]), nil
}

func ValidImageType(contentType string) bool {
	return imageTypes[contentType]
}

func ValidDocumentType(contentType string) bool {
	return documentTypes[contentType]
}

// SaveUpload validates size and content type, then stores the file under a
// generated key and returns its public URL.
func SaveUpload(s Storage, userID uint, kind string, header *multipart.FileHeader, allowDocument bool) (string, error) {
	if header.Size > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds limit")
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType, err := SniffUpload(file)
	if err != nil {
		return "", err
	}

	if allowDocument {
		if !ValidDocumentType(contentType) {
			return "", fmt.Errorf("invalid file type")
		}
	} else if !ValidImageType(contentType) {
		return "", fmt.Errorf("invalid file type")
	}

	key := GenerateKey(userID, kind, header.Filename)
	if err := s.Save(key, contentType, file); err != nil {
		return "", err
	}

	return s.PublicURL(key), nil
}
