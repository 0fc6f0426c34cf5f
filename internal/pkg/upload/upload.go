// Package upload validates photo uploads against the accepted image types and
// writes them to per-owner directories under the upload root.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/naruhodo/newsapp/internal/pkg/apperror"
)

// acceptedMime maps the accepted image MIME types to the file extension used
// for the stored photo.
var acceptedMime = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/bmp":  "bmp",
}

// sniffLen is how many leading bytes http.DetectContentType needs at most.
const sniffLen = 512

// DetectImageType sniffs the content type from the first bytes of a file and
// returns the storage extension for it. The client-supplied Content-Type
// header is never trusted.
func DetectImageType(head []byte) (string, error) {
	detected := http.DetectContentType(head)
	subtype, ok := acceptedMime[detected]
	if !ok {
		return "", &apperror.UnsupportedMediaError{Detected: detected}
	}
	return subtype, nil
}

// SavePhoto validates one uploaded file and writes it to
// <root>/imgs/<ownerID>/<uuid>.<subtype>, creating the directory if missing.
// It returns the stored path relative to the upload root. The caller persists
// the Photo record only after this succeeds.
func SavePhoto(root string, ownerID uint, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	subtype, err := DetectImageType(head[:n])
	if err != nil {
		return "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload %s: %w", fh.Filename, err)
	}

	relDir := filepath.Join("imgs", strconv.FormatUint(uint64(ownerID), 10))
	if err := os.MkdirAll(filepath.Join(root, relDir), 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	relPath := filepath.Join(relDir, uuid.New().String()+"."+subtype)
	dst, err := os.Create(filepath.Join(root, relPath))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write photo file: %w", err)
	}

	return "/" + filepath.ToSlash(relPath), nil
}
