package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/intervu-backend/internal/interview"
	"github.com/hireloop/intervu-backend/internal/model"
	"github.com/hireloop/intervu-backend/internal/response"
)

// CandidateHandler serves the interviewer-facing dashboard reads.
type CandidateHandler struct {
	service *interview.Service
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(service *interview.Service) *CandidateHandler {
	return &CandidateHandler{service: service}
}

// List godoc
// GET /candidates
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.service.Candidates(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if candidates == nil {
		candidates = []model.Candidate{}
	}
	response.Success(c, http.StatusOK, gin.H{"candidates": candidates})
}

// Detail godoc
// GET /candidate/:id
// Returns the candidate record plus the full session transcript. The
// session is null when the underlying session has been discarded.
func (h *CandidateHandler) Detail(c *gin.Context) {
	cand, sess, err := h.service.Candidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interview.ErrCandidateNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCandidateNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"candidate": cand,
		"session":   sess,
	})
}
