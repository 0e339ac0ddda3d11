package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/intervu-backend/internal/response"
	"github.com/hireloop/intervu-backend/internal/resume"
)

// ResumeHandler handles resume uploads.
type ResumeHandler struct {
	service *resume.Service
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(service *resume.Service) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// Upload godoc
// POST /upload-resume
// Accepts a multipart "resume" field (PDF or DOCX), extracts the plain
// text and the candidate identity fields, and archives the original file.
func (h *ResumeHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	res, err := h.service.Process(file, header)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrUnsupportedType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, resume.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		case errors.Is(err, resume.ErrParseFailed):
			response.Fail(c, http.StatusInternalServerError, response.ErrResumeParse)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"ok":     true,
		"fields": res.Fields,
		"text":   res.Text,
		"fileId": res.FileID,
	})
}
