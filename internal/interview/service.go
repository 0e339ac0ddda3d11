// Package interview implements the session state machine and scoring
// pipeline: sessions move from in-progress through optional pauses to
// finished, one accepted answer at a time, and finishing produces the
// immutable candidate result record.
package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hireloop/intervu-backend/internal/model"
	"github.com/hireloop/intervu-backend/internal/question"
	"github.com/hireloop/intervu-backend/internal/store"
)

// Sentinel errors surfaced to the HTTP layer.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuestionNotCurrent rejects submissions for a question other than
	// the one at the session's current index. The index never moves
	// backward and never skips ahead on a stale client.
	ErrQuestionNotCurrent = errors.New("question is not current")
	// ErrSessionNotActive rejects submissions while paused or finished.
	ErrSessionNotActive  = errors.New("session is not in progress")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// Service drives interview sessions against an injected store.
type Service struct {
	store      store.Store
	provider   *question.Provider
	evaluator  *Evaluator
	summarizer *Summarizer
	log        zerolog.Logger

	// Per-session mutual exclusion. Requests for distinct sessions never
	// contend, and a slow LLM call for one session cannot block another.
	locks sync.Map // session id -> *sync.Mutex
}

// NewService creates a Service.
func NewService(
	st store.Store,
	provider *question.Provider,
	evaluator *Evaluator,
	summarizer *Summarizer,
	log zerolog.Logger,
) *Service {
	return &Service{
		store:      st,
		provider:   provider,
		evaluator:  evaluator,
		summarizer: summarizer,
		log:        log.With().Str("component", "interview").Logger(),
	}
}

func (s *Service) lock(id string) func() {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// Start creates a new session with a freshly generated question set.
// Returns the session and whether AI generation was used.
func (s *Service) Start(ctx context.Context, name, email, resumeText string) (*model.Session, bool, error) {
	questions, aiUsed, err := s.provider.Generate(ctx, resumeText)
	if err != nil {
		return nil, false, err
	}

	sess := &model.Session{
		ID:        "s_" + uuid.New().String(),
		Candidate: model.CandidateInfo{Name: name, Email: email},
		Questions: questions,
		Answers:   []model.Answer{},
		Status:    model.SessionStatusInProgress,
		StartedAt: time.Now().UTC(),
	}

	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, false, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info().
		Str("session_id", sess.ID).
		Bool("ai_used", aiUsed).
		Msg("session started")

	return sess, aiUsed, nil
}

// Get returns a session by id.
func (s *Service) Get(ctx context.Context, id string) (*model.Session, error) {
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

// SubmitAnswer records an answer for the session's current question and
// advances the index by exactly one. The submission references the question
// by id: an id not in the session fails with ErrQuestionNotFound, and an id
// for a non-current question fails with ErrQuestionNotCurrent — in both
// cases the session is left untouched. Resubmitting the current question
// replaces the stored answer. Answering the last question finishes the
// session and computes the final score.
func (s *Service) SubmitAnswer(ctx context.Context, req *model.SubmitAnswerRequest) error {
	defer s.lock(req.SessionID)()

	sess, err := s.Get(ctx, req.SessionID)
	if err != nil {
		return err
	}

	q := sess.QuestionByID(req.QuestionID)
	if q == nil {
		return ErrQuestionNotFound
	}
	if sess.Status != model.SessionStatusInProgress {
		return ErrSessionNotActive
	}
	if cur := sess.CurrentQuestion(); cur == nil || cur.ID != q.ID {
		return ErrQuestionNotCurrent
	}

	timeUsed := req.TimeUsed
	if timeUsed > q.TimeLimit {
		timeUsed = q.TimeLimit
	}

	ans := model.Answer{
		QuestionID:    q.ID,
		Text:          req.Answer,
		SelectedIndex: req.SelectedIndex,
		IsCorrect:     EvaluateChoice(q, req.SelectedIndex),
		TimeUsed:      timeUsed,
	}

	// Free-text questions are scored at submit time; scoring runs to
	// completion (LLM or fallback) before the response returns.
	if len(q.Options) == 0 {
		ts := s.evaluator.EvaluateText(ctx, q, req.Answer, timeUsed)
		ans.Score = &ts.Score
		ans.Feedback = ts.Feedback
	}

	sess.SetAnswer(ans)
	sess.CurrentQuestionIndex++

	if sess.CurrentQuestionIndex == len(sess.Questions) {
		if err := s.finishLocked(ctx, sess); err != nil {
			return err
		}
		return nil
	}

	if err := s.store.PutSession(ctx, sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Pause moves an in-progress session to paused. No other field changes.
func (s *Service) Pause(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.SessionStatusInProgress, model.SessionStatusPaused)
}

// Resume moves a paused session back to in-progress.
func (s *Service) Resume(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.SessionStatusPaused, model.SessionStatusInProgress)
}

func (s *Service) setStatus(ctx context.Context, id string, from, to model.SessionStatus) error {
	defer s.lock(id)()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if sess.Status != from {
		return ErrSessionNotActive
	}
	sess.Status = to
	if err := s.store.PutSession(ctx, sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Discard removes a session and its answers entirely. This is the only
// deletion path; it is valid in any state.
func (s *Service) Discard(ctx context.Context, id string) error {
	defer s.lock(id)()

	if err := s.store.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	s.log.Info().Str("session_id", id).Msg("session discarded")
	return nil
}

// Finish finalizes a session, producing its candidate record. Calling it on
// an already-finished session is idempotent: the previously appended record
// is returned and nothing is re-scored, so no duplicate candidates appear.
func (s *Service) Finish(ctx context.Context, id string) (*model.Candidate, error) {
	defer s.lock(id)()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Status == model.SessionStatusFinished {
		cand, err := s.store.GetCandidate(ctx, sess.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("load candidate for finished session: %w", err)
		}
		return cand, nil
	}

	if err := s.finishLocked(ctx, sess); err != nil {
		return nil, err
	}
	return s.store.GetCandidate(ctx, sess.CandidateID)
}

// finishLocked runs the summarizer and appends the candidate record. The
// caller must hold the session lock.
func (s *Service) finishLocked(ctx context.Context, sess *model.Session) error {
	res := s.summarizer.Summarize(ctx, sess)

	now := time.Now().UTC()
	name := sess.Candidate.Name
	if name == "" {
		name = "Unknown"
	}
	cand := &model.Candidate{
		ID:        "c_" + uuid.New().String(),
		Name:      name,
		Email:     sess.Candidate.Email,
		Score:     res.OverallScore,
		Summary:   res.Summary,
		SessionID: sess.ID,
		CreatedAt: now,
	}

	sess.Status = model.SessionStatusFinished
	sess.FinalScore = &res.OverallScore
	sess.Summary = res.Summary
	sess.CandidateID = cand.ID
	sess.FinishedAt = &now

	if err := s.store.AppendCandidate(ctx, cand); err != nil {
		return fmt.Errorf("append candidate: %w", err)
	}
	if err := s.store.PutSession(ctx, sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.log.Info().
		Str("session_id", sess.ID).
		Str("candidate_id", cand.ID).
		Int("score", cand.Score).
		Msg("session finished")

	return nil
}

// Candidates lists every finalized candidate record for the dashboard.
func (s *Service) Candidates(ctx context.Context) ([]model.Candidate, error) {
	return s.store.ListCandidates(ctx)
}

// Candidate returns one candidate record together with its source session,
// so the detail view can replay the full question/answer transcript.
func (s *Service) Candidate(ctx context.Context, id string) (*model.Candidate, *model.Session, error) {
	cand, err := s.store.GetCandidate(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrCandidateNotFound
		}
		return nil, nil, err
	}

	sess, err := s.store.GetSession(ctx, cand.SessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, nil, err
	}
	// A discarded session leaves the candidate record intact; the detail
	// view just loses the transcript.
	return cand, sess, nil
}

// UpdateCandidateInfo augments the identity fields of an existing session.
func (s *Service) UpdateCandidateInfo(ctx context.Context, id string, info model.CandidateInfo) error {
	defer s.lock(id)()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if info.Name != "" {
		sess.Candidate.Name = info.Name
	}
	if info.Email != "" {
		sess.Candidate.Email = info.Email
	}
	if info.Phone != "" {
		sess.Candidate.Phone = info.Phone
	}
	if err := s.store.PutSession(ctx, sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
