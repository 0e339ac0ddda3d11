package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/intervu-backend/internal/config"
	"github.com/hireloop/intervu-backend/internal/genai"
	"github.com/hireloop/intervu-backend/internal/handler"
	"github.com/hireloop/intervu-backend/internal/interview"
	"github.com/hireloop/intervu-backend/internal/model"
	"github.com/hireloop/intervu-backend/internal/question"
	"github.com/hireloop/intervu-backend/internal/response"
	"github.com/hireloop/intervu-backend/internal/resume"
	"github.com/hireloop/intervu-backend/internal/router"
	"github.com/hireloop/intervu-backend/internal/store"
	"github.com/hireloop/intervu-backend/internal/validator"
)

func newTestRouter(t *testing.T, ai genai.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Setup()
	log := zerolog.Nop()

	cfg := &config.Config{
		GinMode:        gin.TestMode,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 10 * 1024 * 1024,
	}

	st := store.NewMemoryStore()
	provider := question.NewProvider(ai, log)
	svc := interview.NewService(st, provider, interview.NewEvaluator(ai, log), interview.NewSummarizer(ai, log), log)

	return router.SetupRouter(&router.Handlers{
		Interview: handler.NewInterviewHandler(svc, provider),
		Candidate: handler.NewCandidateHandler(svc),
		Resume:    handler.NewResumeHandler(resume.NewService(cfg, log)),
	}, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func errCodeOf(t *testing.T, w *httptest.ResponseRecorder) response.ErrCode {
	t.Helper()
	var body struct {
		Error response.ErrorBody `json:"error"`
	}
	decode(t, w, &body)
	return body.Error.Code
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, nil)
	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]bool
	decode(t, w, &body)
	assert.True(t, body["ok"])
}

func TestFullInterviewFlow(t *testing.T) {
	r := newTestRouter(t, nil)

	// Start without resume text: static free-text set, no AI.
	w := doJSON(t, r, http.MethodPost, "/start-interview", gin.H{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var started struct {
		SessionID string           `json:"sessionId"`
		Questions []model.Question `json:"questions"`
		AIUsed    bool             `json:"aiUsed"`
	}
	decode(t, w, &started)
	assert.False(t, started.AIUsed)
	require.NotEmpty(t, started.SessionID)
	require.Len(t, started.Questions, 6)

	// Answer every question in order.
	for _, q := range started.Questions {
		w = doJSON(t, r, http.MethodPost, "/submit-answer", gin.H{
			"sessionId":  started.SessionID,
			"questionId": q.ID,
			"answer":     "A reasonably detailed answer about my experience.",
			"timeUsed":   5,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	// The last answer finished the session; finish returns the record.
	w = doJSON(t, r, http.MethodPost, "/finish-interview", gin.H{"sessionId": started.SessionID})
	require.Equal(t, http.StatusOK, w.Code)

	var finished struct {
		Candidate model.Candidate `json:"candidate"`
	}
	decode(t, w, &finished)
	assert.Equal(t, "Ada", finished.Candidate.Name)
	assert.NotEmpty(t, finished.Candidate.Summary)

	// The record shows up on the dashboard.
	w = doJSON(t, r, http.MethodGet, "/candidates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Candidates []model.Candidate `json:"candidates"`
	}
	decode(t, w, &listing)
	require.Len(t, listing.Candidates, 1)
	assert.Equal(t, finished.Candidate.ID, listing.Candidates[0].ID)

	// And the detail view carries the transcript.
	w = doJSON(t, r, http.MethodGet, "/candidate/"+finished.Candidate.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Candidate model.Candidate `json:"candidate"`
		Session   *model.Session  `json:"session"`
	}
	decode(t, w, &detail)
	require.NotNil(t, detail.Session)
	assert.Len(t, detail.Session.Answers, 6)
	assert.Equal(t, model.SessionStatusFinished, detail.Session.Status)
}

func TestSubmitAnswerErrorMapping(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/start-interview", gin.H{"name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code)
	var started struct {
		SessionID string           `json:"sessionId"`
		Questions []model.Question `json:"questions"`
	}
	decode(t, w, &started)

	t.Run("unknown session", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/submit-answer", gin.H{
			"sessionId":  "s_missing",
			"questionId": started.Questions[0].ID,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, response.ErrSessionNotFound, errCodeOf(t, w))
	})

	t.Run("unknown question", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/submit-answer", gin.H{
			"sessionId":  started.SessionID,
			"questionId": "q_missing",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, response.ErrQuestionNotFound, errCodeOf(t, w))
	})

	t.Run("not the current question", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/submit-answer", gin.H{
			"sessionId":  started.SessionID,
			"questionId": started.Questions[2].ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrQuestionNotCurrent, errCodeOf(t, w))
	})

	t.Run("missing payload fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/submit-answer", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrValidation, errCodeOf(t, w))
	})
}

func TestPauseResumeDiscardOverHTTP(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/start-interview", gin.H{"name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code)
	var started struct {
		SessionID string           `json:"sessionId"`
		Questions []model.Question `json:"questions"`
	}
	decode(t, w, &started)

	w = doJSON(t, r, http.MethodPost, "/pause-interview", gin.H{"sessionId": started.SessionID})
	assert.Equal(t, http.StatusOK, w.Code)

	// Paused sessions reject submissions.
	w = doJSON(t, r, http.MethodPost, "/submit-answer", gin.H{
		"sessionId":  started.SessionID,
		"questionId": started.Questions[0].ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrSessionNotActive, errCodeOf(t, w))

	w = doJSON(t, r, http.MethodPost, "/resume-interview", gin.H{"sessionId": started.SessionID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/discard-interview", gin.H{"sessionId": started.SessionID})
	assert.Equal(t, http.StatusOK, w.Code)

	// Gone for good.
	w = doJSON(t, r, http.MethodPost, "/discard-interview", gin.H{"sessionId": started.SessionID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartInterviewResumeGroundedWithoutKey(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/start-interview", gin.H{
		"name":       "Ada",
		"resumeText": "10 years of Go and distributed systems",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrAIKeyMissing, errCodeOf(t, w))
}

func TestGenerateOptionsOverHTTP(t *testing.T) {
	t.Run("no key", func(t *testing.T) {
		r := newTestRouter(t, nil)
		w := doJSON(t, r, http.MethodPost, "/generate-options", gin.H{"text": "What is CSS?"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrAIKeyMissing, errCodeOf(t, w))
	})

	t.Run("scripted client", func(t *testing.T) {
		r := newTestRouter(t, &genai.Mock{Responses: []string{`["a","b","c","d"]`}})
		w := doJSON(t, r, http.MethodPost, "/generate-options", gin.H{"text": "What is CSS?"})
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Options []string `json:"options"`
		}
		decode(t, w, &body)
		assert.Equal(t, []string{"a", "b", "c", "d"}, body.Options)
	})

	t.Run("missing text", func(t *testing.T) {
		r := newTestRouter(t, nil)
		w := doJSON(t, r, http.MethodPost, "/generate-options", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.ErrValidation, errCodeOf(t, w))
	})
}

func TestCandidateDetailNotFound(t *testing.T) {
	r := newTestRouter(t, nil)
	w := doJSON(t, r, http.MethodGet, "/candidate/c_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrCandidateNotFound, errCodeOf(t, w))
}

func TestUploadResumeRequiresFile(t *testing.T) {
	r := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrFileRequired, errCodeOf(t, w))
}
