package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nihom/config"
	"nihom/infras/otel/mocks"
	"nihom/shared/failure"
)

func setupStore(t *testing.T, maxSizeMB int) (Store, string) {
	t.Helper()

	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Upload.Dir = dir
	cfg.Upload.URLPrefix = "uploads"
	cfg.Upload.MaxSizeMB = maxSizeMB

	return New(cfg, mocks.NewOtel()), dir
}

func multipartRequest(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := request.FormFile("file")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = file.Close()
	})

	return file, header
}

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	store, dir := setupStore(t, 10)

	file, header := multipartRequest(t, "photo.jpg", []byte("image bytes"))

	url, err := store.Save(context.Background(), file, header)
	require.NoError(t, err)
	assert.Equal(t, "uploads/photo.jpg", url)

	written, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), written)
}

func TestSaveOverwritesExistingName(t *testing.T) {
	store, dir := setupStore(t, 10)
	ctx := context.Background()

	first, firstHeader := multipartRequest(t, "photo.jpg", []byte("first"))
	_, err := store.Save(ctx, first, firstHeader)
	require.NoError(t, err)

	second, secondHeader := multipartRequest(t, "photo.jpg", []byte("second"))
	_, err = store.Save(ctx, second, secondHeader)
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), written)
}

func TestSaveStripsPathFromFilename(t *testing.T) {
	store, dir := setupStore(t, 10)

	file, header := multipartRequest(t, "../../etc/passwd", []byte("nope"))

	url, err := store.Save(context.Background(), file, header)
	require.NoError(t, err)
	assert.Equal(t, "uploads/passwd", url)

	written, err := os.ReadFile(filepath.Join(dir, "passwd"))
	require.NoError(t, err)
	assert.Equal(t, []byte("nope"), written)

	_, err = os.Stat(filepath.Join(dir, "..", "..", "etc", "passwd"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store, _ := setupStore(t, 1)

	file, header := multipartRequest(t, "big.bin", bytes.Repeat([]byte("x"), 2<<20))

	_, err := store.Save(context.Background(), file, header)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
