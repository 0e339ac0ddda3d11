package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/intervu-backend/internal/interview"
	"github.com/hireloop/intervu-backend/internal/model"
	"github.com/hireloop/intervu-backend/internal/question"
	"github.com/hireloop/intervu-backend/internal/response"
	"github.com/hireloop/intervu-backend/internal/validator"
)

// InterviewHandler handles the candidate-facing interview endpoints.
type InterviewHandler struct {
	service  *interview.Service
	provider *question.Provider
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(service *interview.Service, provider *question.Provider) *InterviewHandler {
	return &InterviewHandler{service: service, provider: provider}
}

// StartInterview godoc
// POST /start-interview
// Creates a session with a generated question set. Resume-grounded
// generation (non-empty resumeText) requires a configured AI key and fails
// the request on generation errors rather than degrading silently.
func (h *InterviewHandler) StartInterview(c *gin.Context) {
	var req model.StartInterviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sess, aiUsed, err := h.service.Start(c.Request.Context(), req.Name, req.Email, req.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, question.ErrNoAPIKey):
			response.Fail(c, http.StatusBadRequest, response.ErrAIKeyMissing)
		case errors.Is(err, question.ErrGenerationFailed):
			response.Fail(c, http.StatusInternalServerError, response.ErrGenerationFailed)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"questions": sess.Questions,
		"aiUsed":    aiUsed,
	})
}

// SubmitAnswer godoc
// POST /submit-answer
// Records the answer for the session's current question and advances it.
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	var req model.SubmitAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.service.SubmitAnswer(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, interview.ErrSessionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		case errors.Is(err, interview.ErrQuestionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrQuestionNotFound)
		case errors.Is(err, interview.ErrQuestionNotCurrent):
			response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotCurrent)
		case errors.Is(err, interview.ErrSessionNotActive):
			response.Fail(c, http.StatusBadRequest, response.ErrSessionNotActive)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

// FinishInterview godoc
// POST /finish-interview
// Finalizes the session and returns its candidate record. Idempotent for
// already-finished sessions. LLM failures never surface: the rule-based
// summary always produces a 200.
func (h *InterviewHandler) FinishInterview(c *gin.Context) {
	var req model.SessionRefRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	cand, err := h.service.Finish(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, interview.ErrSessionNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"candidate": cand})
}

// PauseInterview godoc
// POST /pause-interview
func (h *InterviewHandler) PauseInterview(c *gin.Context) {
	h.lifecycle(c, h.service.Pause)
}

// ResumeInterview godoc
// POST /resume-interview
func (h *InterviewHandler) ResumeInterview(c *gin.Context) {
	h.lifecycle(c, h.service.Resume)
}

// DiscardInterview godoc
// POST /discard-interview
// Removes the session and all its answers. The only deletion path.
func (h *InterviewHandler) DiscardInterview(c *gin.Context) {
	h.lifecycle(c, h.service.Discard)
}

// lifecycle binds a session reference payload, runs op against it, and
// maps the shared error set. Pause, resume, and discard all follow this
// shape.
func (h *InterviewHandler) lifecycle(c *gin.Context, op func(ctx context.Context, sessionID string) error) {
	var req model.SessionRefRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := op(c.Request.Context(), req.SessionID); err != nil {
		switch {
		case errors.Is(err, interview.ErrSessionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		case errors.Is(err, interview.ErrSessionNotActive):
			response.Fail(c, http.StatusBadRequest, response.ErrSessionNotActive)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

// UpdateCandidateInfo godoc
// POST /update-candidate-info
// Fills in identity fields collected after the session started. Only
// non-empty fields are applied; existing values are never blanked.
func (h *InterviewHandler) UpdateCandidateInfo(c *gin.Context) {
	var req model.UpdateCandidateInfoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	info := model.CandidateInfo{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.service.UpdateCandidateInfo(c.Request.Context(), req.SessionID, info); err != nil {
		if errors.Is(err, interview.ErrSessionNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

// GenerateOptions godoc
// POST /generate-options
// Regenerates four answer options for a single question text. Unlike the
// question set path there is no static fallback here: without an AI key or
// on a malformed model reply the request fails.
func (h *InterviewHandler) GenerateOptions(c *gin.Context) {
	var req model.GenerateOptionsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	opts, err := h.provider.GenerateOptions(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, question.ErrNoAPIKey) {
			response.Fail(c, http.StatusBadRequest, response.ErrAIKeyMissing)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrGenerationFailed)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"options": opts})
}
