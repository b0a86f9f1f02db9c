// Package storage saves uploaded ID-card images to local disk and hands back
// a publicly retrievable URL, served from the static file route.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxIDCardSize = 5 * 1024 * 1024 // 5 MB
	idCardDir     = "id-cards"

	defaultBaseDir    = "./uploads"
	defaultStaticBase = "/static/uploads"
)

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file exceeds 5MB limit")
	ErrInvalidMimeType = errors.New("file is not an image")
)

// allowedMimeTypes lists the image types accepted for ID cards.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type IDCardStore struct {
	baseDir    string
	staticBase string
}

func NewIDCardStore(baseDir, staticBase string) *IDCardStore {
	if baseDir == "" {
		baseDir = defaultBaseDir
	}
	if staticBase == "" {
		staticBase = defaultStaticBase
	}
	return &IDCardStore{baseDir: baseDir, staticBase: staticBase}
}

// Save writes the uploaded image under id-cards/ with a name derived from
// the student ID and the current timestamp, and returns its public URL.
func (s *IDCardStore) Save(studentID int64, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxIDCardSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Sniff the MIME type from the first 512 bytes.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !allowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	absDir := filepath.Join(s.baseDir, idCardDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := fmt.Sprintf("%d-%d%s", studentID, time.Now().UnixMilli(), ext)

	absPath := filepath.Join(absDir, filename)
	if _, err := os.Stat(absPath); err == nil {
		// Same student, same millisecond. Disambiguate.
		filename = fmt.Sprintf("%d-%d-%s%s", studentID, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
		absPath = filepath.Join(absDir, filename)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.staticBase + "/" + idCardDir + "/" + filename, nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
