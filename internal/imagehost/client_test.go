package imagehost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "cover.jpg", header.Filename)
		assert.Equal(t, "jpeg-bytes", string(data))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"url":"https://i.example.com/cover.jpg"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL + "/1/upload", APIKey: "secret"})
	url, err := client.Upload(context.Background(), "cover.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://i.example.com/cover.jpg", url)
}

func TestClient_UploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"message":"Invalid API v1 key."}}`))
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, APIKey: "bad"})
	_, err := client.Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorContains(t, err, "Invalid API v1 key.")
}

func TestClient_UploadUnreadableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, APIKey: "k"})
	_, err := client.Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestClient_UploadWithoutKey(t *testing.T) {
	client := NewClient(Config{URL: "http://127.0.0.1:1"})
	_, err := client.Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUploadFailed)
}
