package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naruhodo/newsapp/internal/pkg/apperror"
)

var (
	pngHead  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}
	bmpHead  = []byte{'B', 'M', 0, 0, 0, 0, 0, 0}
	gifHead  = []byte("GIF89a\x00\x00")
)

func TestDetectImageType(t *testing.T) {
	tests := []struct {
		name    string
		head    []byte
		want    string
		wantErr bool
	}{
		{"png", pngHead, "png", false},
		{"jpeg", jpegHead, "jpeg", false},
		{"bmp", bmpHead, "bmp", false},
		{"gif rejected", gifHead, "", true},
		{"plain text rejected", []byte("hello there"), "", true},
		{"empty rejected", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectImageType(tt.head)
			if tt.wantErr {
				require.Error(t, err)
				var me *apperror.UnsupportedMediaError
				assert.True(t, errors.As(err, &me))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/news", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["photo"][0]
}

func TestSavePhotoWritesFileAndReturnsRelativePath(t *testing.T) {
	root := t.TempDir()
	fh := newFileHeader(t, "cat.png", pngHead)

	url, err := SavePhoto(root, 7, fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/imgs/7/"), "got %s", url)
	assert.True(t, strings.HasSuffix(url, ".png"), "got %s", url)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(url, "/"))))
	require.NoError(t, err)
	assert.Equal(t, pngHead, data)
}

func TestSavePhotoRejectsUnsupportedType(t *testing.T) {
	root := t.TempDir()
	fh := newFileHeader(t, "anim.gif", gifHead)

	_, err := SavePhoto(root, 7, fh)
	require.Error(t, err)

	var me *apperror.UnsupportedMediaError
	assert.True(t, errors.As(err, &me))

	// Nothing may be written for a rejected upload.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSavePhotoUsesUniqueFilenames(t *testing.T) {
	root := t.TempDir()

	first, err := SavePhoto(root, 3, newFileHeader(t, "a.png", pngHead))
	require.NoError(t, err)
	second, err := SavePhoto(root, 3, newFileHeader(t, "a.png", pngHead))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
