package model

import "time"

// SessionStatus enumerates interview session states.
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in-progress"
	SessionStatusPaused     SessionStatus = "paused"
	SessionStatusFinished   SessionStatus = "finished"
)

// CandidateInfo holds the identity fields attached to a session. Fields may
// be partially empty and can be augmented after creation.
type CandidateInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Answer is one submitted answer for a question within a session. A session
// holds at most one Answer per question: resubmission replaces the stored
// answer, it does not append.
type Answer struct {
	QuestionID    string `json:"questionId"`
	Text          string `json:"answer"`
	SelectedIndex *int   `json:"selectedIndex,omitempty"`
	// IsCorrect is defined only when both SelectedIndex and the question's
	// CorrectIndex are present. Undefined correctness is never counted as
	// incorrect in aggregate scoring.
	IsCorrect *bool `json:"isCorrect,omitempty"`
	TimeUsed  int   `json:"timeUsed"`
	// Score is the free-text evaluation result (0-100), set at submit time
	// for questions without options.
	Score    *int   `json:"score,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// Session is one candidate's end-to-end interview attempt. It exclusively
// owns its Questions and Answers; the only deletion path is an explicit
// discard.
type Session struct {
	ID        string        `json:"id"`
	Candidate CandidateInfo `json:"candidate"`
	Questions []Question    `json:"questions"`
	Answers   []Answer      `json:"answers"`
	// CurrentQuestionIndex is in [0, len(Questions)] and advances by exactly
	// one per accepted answer submission.
	CurrentQuestionIndex int           `json:"currentQuestionIndex"`
	Status               SessionStatus `json:"status"`
	FinalScore           *int          `json:"finalScore,omitempty"`
	Summary              string        `json:"summary,omitempty"`
	// CandidateID references the result record appended when the session
	// finished. It makes finish idempotent.
	CandidateID string     `json:"candidateId,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

// CurrentQuestion returns the question at the session's current index, or
// nil when all questions have been answered.
func (s *Session) CurrentQuestion() *Question {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentQuestionIndex]
}

// QuestionByID returns the session question with the given id, or nil.
func (s *Session) QuestionByID(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// AnswerFor returns the stored answer for a question id, or nil.
func (s *Session) AnswerFor(questionID string) *Answer {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == questionID {
			return &s.Answers[i]
		}
	}
	return nil
}

// SetAnswer stores an answer, replacing any prior answer for the same
// question.
func (s *Session) SetAnswer(a Answer) {
	for i := range s.Answers {
		if s.Answers[i].QuestionID == a.QuestionID {
			s.Answers[i] = a
			return
		}
	}
	s.Answers = append(s.Answers, a)
}

// Clone returns a deep copy of the session so store implementations can hand
// out values without aliasing internal state.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Questions = make([]Question, len(s.Questions))
	copy(cp.Questions, s.Questions)
	for i := range cp.Questions {
		cp.Questions[i].Options = append([]string(nil), s.Questions[i].Options...)
		cp.Questions[i].Keywords = append([]string(nil), s.Questions[i].Keywords...)
		if s.Questions[i].CorrectIndex != nil {
			v := *s.Questions[i].CorrectIndex
			cp.Questions[i].CorrectIndex = &v
		}
	}
	cp.Answers = make([]Answer, len(s.Answers))
	copy(cp.Answers, s.Answers)
	for i := range cp.Answers {
		if s.Answers[i].SelectedIndex != nil {
			v := *s.Answers[i].SelectedIndex
			cp.Answers[i].SelectedIndex = &v
		}
		if s.Answers[i].IsCorrect != nil {
			v := *s.Answers[i].IsCorrect
			cp.Answers[i].IsCorrect = &v
		}
		if s.Answers[i].Score != nil {
			v := *s.Answers[i].Score
			cp.Answers[i].Score = &v
		}
	}
	if s.FinalScore != nil {
		v := *s.FinalScore
		cp.FinalScore = &v
	}
	if s.FinishedAt != nil {
		v := *s.FinishedAt
		cp.FinishedAt = &v
	}
	return &cp
}
