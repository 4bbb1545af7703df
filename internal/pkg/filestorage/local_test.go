package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileHeader builds a multipart.FileHeader the way an upload handler
// would receive one.
func newFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestLocalStorage_SaveFileWithPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	header := newFileHeader(t, "lecture.pdf", "pdf-content")

	storedPath, err := storage.SaveFileWithPath(header, "notes")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(storedPath, "notes/"))
	assert.True(t, strings.HasSuffix(storedPath, ".pdf"))

	data, err := os.ReadFile(filepath.Join(dir, storedPath))
	require.NoError(t, err)
	assert.Equal(t, "pdf-content", string(data))
}

func TestLocalStorage_SaveFileWithPath_NilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	storedPath, err := storage.SaveFileWithPath(nil, "notes")
	require.NoError(t, err)
	assert.Empty(t, storedPath)
}

func TestLocalStorage_DeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	storedPath, err := storage.SaveFileWithPath(newFileHeader(t, "a.txt", "x"), "notes")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(storedPath))
	_, statErr := os.Stat(filepath.Join(dir, storedPath))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting an already removed file is not an error
	assert.NoError(t, storage.DeleteFile(storedPath))
}

func TestLocalStorage_DeleteFile_RejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.Error(t, storage.DeleteFile("../outside.txt"))
	assert.Error(t, storage.DeleteFile("/etc/passwd"))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestLocalStorage_FileURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/uploads/notes/a.pdf", storage.FileURL("notes/a.pdf"))
	assert.Empty(t, storage.FileURL(""))
}
