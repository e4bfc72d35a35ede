package service

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// ImageHost stores an image and returns its public URL.
type ImageHost interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// UploadFile is one file of an upload request.
type UploadFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// UploadResult reports the outcome of every file, in request order.
type UploadResult struct {
	URLs   []string
	Failed []UploadFailure
}

// UploadFailure names a file that could not be hosted.
type UploadFailure struct {
	Name  string
	Error string
}

// UploadService relays trip images to the image host.
type UploadService struct {
	host ImageHost
	log  logrus.FieldLogger
}

// NewUploadService creates a new UploadService.
func NewUploadService(host ImageHost, log logrus.FieldLogger) *UploadService {
	return &UploadService{host: host, log: log.WithField("service", "upload")}
}

// Upload hosts each file independently. A failed file does not stop the others.
// ErrAllUploadsFailed is returned, with the result, when no file was hosted.
func (s *UploadService) Upload(ctx context.Context, files []UploadFile) (*UploadResult, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	result := &UploadResult{URLs: []string{}, Failed: []UploadFailure{}}
	for _, f := range files {
		url, err := s.uploadOne(ctx, f)
		if err != nil {
			s.log.WithError(err).WithField("file", f.Name).Warn("image upload failed")
			result.Failed = append(result.Failed, UploadFailure{Name: f.Name, Error: err.Error()})
			continue
		}
		result.URLs = append(result.URLs, url)
	}

	if len(result.URLs) == 0 {
		return result, ErrAllUploadsFailed
	}
	return result, nil
}

func (s *UploadService) uploadOne(ctx context.Context, f UploadFile) (string, error) {
	if f.Open == nil {
		return "", errors.New("file is not readable")
	}
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return s.host.Upload(ctx, f.Name, rc)
}
