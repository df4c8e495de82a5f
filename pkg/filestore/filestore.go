package filestore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxFileSize is the upload size cap applied when none is configured (10MB).
const DefaultMaxFileSize = 10 << 20

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// magicNumbers maps a MIME type to its expected leading bytes.
var magicNumbers = map[string][]byte{
	"image/jpeg": {0xFF, 0xD8, 0xFF},
	"image/jpg":  {0xFF, 0xD8, 0xFF},
	"image/png":  {0x89, 0x50, 0x4E, 0x47},
	"image/webp": {0x52, 0x49, 0x46, 0x46},
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
var repeatedDots = regexp.MustCompile(`\.+`)

// ErrInvalidFile is returned when an uploaded file fails validation.
type ErrInvalidFile struct {
	Reason string
}

func (e *ErrInvalidFile) Error() string {
	return fmt.Sprintf("invalid file: %s", e.Reason)
}

// SavedFile describes a file persisted by the store.
type SavedFile struct {
	Filename string
	Path     string
	URL      string
	Size     int64
}

// Store persists uploaded photos on local disk under generated names.
type Store struct {
	uploadDir   string
	maxFileSize int64
}

// NewStore creates a file store rooted at uploadDir. A non-positive
// maxFileSize falls back to DefaultMaxFileSize.
func NewStore(uploadDir string, maxFileSize int64) *Store {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Store{
		uploadDir:   uploadDir,
		maxFileSize: maxFileSize,
	}
}

// EnsureDir creates the upload directory if it does not exist.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.uploadDir, 0o755)
}

// MaxFileSize returns the configured upload size cap in bytes.
func (s *Store) MaxFileSize() int64 {
	return s.maxFileSize
}

// UploadDir returns the directory files are stored in.
func (s *Store) UploadDir() string {
	return s.uploadDir
}

// Validate checks size, MIME type and extension of an upload. It does not
// read file content; use ValidateSignature for that.
func (s *Store) Validate(size int64, mimeType, originalName string) error {
	if size > s.maxFileSize {
		return &ErrInvalidFile{Reason: fmt.Sprintf("file size exceeds maximum allowed size of %dMB", s.maxFileSize/(1<<20))}
	}

	if mimeType != "" && !allowedMimeTypes[strings.ToLower(mimeType)] {
		return &ErrInvalidFile{Reason: fmt.Sprintf("file type %s is not allowed", mimeType)}
	}

	if originalName != "" {
		ext := strings.ToLower(filepath.Ext(originalName))
		if !allowedExtensions[ext] {
			return &ErrInvalidFile{Reason: fmt.Sprintf("file extension %s is not allowed", ext)}
		}
	}

	return nil
}

// ValidateSignature checks the file's leading bytes against the magic number
// expected for the declared MIME type. A file whose content does not match
// its declared type is rejected.
func ValidateSignature(content []byte, mimeType string) error {
	magic, ok := magicNumbers[strings.ToLower(mimeType)]
	if !ok {
		return &ErrInvalidFile{Reason: fmt.Sprintf("unsupported file type %s", mimeType)}
	}
	if len(content) < len(magic) || !bytes.Equal(content[:len(magic)], magic) {
		return &ErrInvalidFile{Reason: "file content does not match its declared type"}
	}
	return nil
}

// Save writes an uploaded file under a generated uuid filename, keeping the
// original extension. The returned URL is the serve endpoint path.
func (s *Store) Save(content []byte, originalName, mimeType string) (*SavedFile, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = extensionForMimeType(mimeType)
	}

	filename := uuid.New().String() + ext
	target := filepath.Join(s.uploadDir, filename)

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &SavedFile{
		Filename: filename,
		Path:     target,
		URL:      "/api/photos/serve/" + filename,
		Size:     int64(len(content)),
	}, nil
}

// Open returns the content of a stored file by name. The name must already
// be sanitized by the caller.
func (s *Store) Open(filename string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.uploadDir, filename))
}

// Exists reports whether a stored file is present on disk.
func (s *Store) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.uploadDir, filename))
	return err == nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *Store) Delete(filename string) error {
	err := os.Remove(filepath.Join(s.uploadDir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SanitizeFilename strips path components and dangerous characters from a
// filename. Callers must reject requests where the sanitized name differs
// from the input, which catches traversal attempts like "../../etc/passwd".
func SanitizeFilename(filename string) string {
	cleaned := filepath.Base(filename)
	cleaned = unsafeFilenameChars.ReplaceAllString(cleaned, "_")
	cleaned = repeatedDots.ReplaceAllString(cleaned, ".")
	if len(cleaned) > 255 {
		cleaned = cleaned[:255]
	}
	return cleaned
}

// ContentTypeForExtension maps a stored file's extension to the content type
// used when serving it.
func ContentTypeForExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

func extensionForMimeType(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
