package model

import "time"

// Candidate is the finalized, immutable result record of one finished
// session, used by the interviewer-facing listing and detail views. Records
// are append-only; a session is never re-scored in place.
type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Score     int       `json:"score"`
	Summary   string    `json:"summary"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ─── Request payloads ───────────────────────────────────────────────────────

// StartInterviewRequest is the payload for POST /start-interview.
type StartInterviewRequest struct {
	Name       string `json:"name" binding:"max=200"`
	Email      string `json:"email" binding:"omitempty,email"`
	ResumeText string `json:"resumeText"`
}

// SubmitAnswerRequest is the payload for POST /submit-answer.
type SubmitAnswerRequest struct {
	SessionID     string `json:"sessionId" binding:"required"`
	QuestionID    string `json:"questionId" binding:"required"`
	Answer        string `json:"answer"`
	TimeUsed      int    `json:"timeUsed" binding:"min=0"`
	SelectedIndex *int   `json:"selectedIndex" binding:"omitempty,min=0,max=3"`
}

// SessionRefRequest is the payload for the session lifecycle endpoints
// (finish, pause, resume, discard).
type SessionRefRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// UpdateCandidateInfoRequest is the payload for POST /update-candidate-info.
type UpdateCandidateInfoRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Name      string `json:"name" binding:"max=200"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=40"`
}

// GenerateOptionsRequest is the payload for POST /generate-options.
type GenerateOptionsRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}
