package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/internal/service"
)

// uploadField is the multipart field that carries trip images.
const uploadField = "images"

// UploadHandler handles trip image uploads.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadFailureResponse names a file that could not be hosted.
type UploadFailureResponse struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// UploadResponse lists the hosted URLs in request order and any failed files.
type UploadResponse struct {
	URLs   []string                `json:"urls"`
	Failed []UploadFailureResponse `json:"failed"`
}

// Upload handles POST /v1/admin/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "multipart form with images is required"})
		return
	}

	headers := form.File[uploadField]
	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, service.UploadFile{
			Name: fh.Filename,
			Open: openPart(fh),
		})
	}

	result, err := h.uploadService.Upload(c.Request.Context(), files)
	if err != nil && !errors.Is(err, service.ErrAllUploadsFailed) {
		respondError(c, err)
		return
	}

	response := UploadResponse{URLs: result.URLs, Failed: make([]UploadFailureResponse, 0, len(result.Failed))}
	for _, f := range result.Failed {
		response.Failed = append(response.Failed, UploadFailureResponse{Name: f.Name, Error: f.Error})
	}

	status := http.StatusOK
	if err != nil {
		_ = c.Error(err)
		status = http.StatusBadGateway
	}
	respondJSON(c, status, response)
}

func openPart(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return fh.Open()
	}
}
