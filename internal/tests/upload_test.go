package tests

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"travel/internal/service"
)

// ──────────────────────────────────────────────
// 7. IMAGE UPLOADS
// ──────────────────────────────────────────────

func uploadFile(name string) service.UploadFile {
	return service.UploadFile{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("img:" + name)), nil },
	}
}

func TestUpload_PartialSuccess(t *testing.T) {
	t.Parallel()

	host := NewMockImageHost()
	host.FailFor["broken.png"] = true
	logger, _ := NullLogger()
	svc := service.NewUploadService(host, logger)

	res, err := svc.Upload(context.Background(), []service.UploadFile{
		uploadFile("a.jpg"), uploadFile("broken.png"), uploadFile("b.jpg"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.URLs) != 2 || res.URLs[0] != "https://img.example.com/a.jpg" || res.URLs[1] != "https://img.example.com/b.jpg" {
		t.Errorf("unexpected URLs: %q", res.URLs)
	}
	if len(res.Failed) != 1 || res.Failed[0].Name != "broken.png" {
		t.Errorf("unexpected failures: %+v", res.Failed)
	}
}

func TestUpload_AllFailed(t *testing.T) {
	t.Parallel()

	host := NewMockImageHost()
	host.FailFor["x.png"] = true
	logger, _ := NullLogger()
	svc := service.NewUploadService(host, logger)

	unreadable := service.UploadFile{Name: "y.png", Open: func() (io.ReadCloser, error) { return nil, errors.New("disk error") }}
	res, err := svc.Upload(context.Background(), []service.UploadFile{uploadFile("x.png"), unreadable})
	if !errors.Is(err, service.ErrAllUploadsFailed) {
		t.Fatalf("expected ErrAllUploadsFailed, got %v", err)
	}
	if len(res.Failed) != 2 {
		t.Errorf("expected both files reported, got %+v", res.Failed)
	}
}

func TestUpload_NoFiles(t *testing.T) {
	t.Parallel()

	logger, _ := NullLogger()
	svc := service.NewUploadService(NewMockImageHost(), logger)

	if _, err := svc.Upload(context.Background(), nil); !errors.Is(err, service.ErrNoFiles) {
		t.Errorf("expected ErrNoFiles, got %v", err)
	}
}
