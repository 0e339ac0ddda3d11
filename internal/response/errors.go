package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound           ErrCode = "NOT_FOUND"
	ErrSessionNotFound    ErrCode = "SESSION_NOT_FOUND"
	ErrQuestionNotFound   ErrCode = "QUESTION_NOT_FOUND"
	ErrCandidateNotFound  ErrCode = "CANDIDATE_NOT_FOUND"
	ErrQuestionNotCurrent ErrCode = "QUESTION_NOT_CURRENT"
	ErrSessionNotActive   ErrCode = "SESSION_NOT_ACTIVE"

	// ─── AI generation ─────────────────────────────────────────────────
	ErrAIKeyMissing     ErrCode = "AI_KEY_MISSING"
	ErrGenerationFailed ErrCode = "AI_GENERATION_FAILED"

	// ─── Uploads ───────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"
	ErrResumeParse     ErrCode = "RESUME_PARSE_FAILED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrSessionNotFound:
		return "Session not found."
	case ErrQuestionNotFound:
		return "Question not found."
	case ErrCandidateNotFound:
		return "Candidate not found."
	case ErrQuestionNotCurrent:
		return "Question is not the current question of this session."
	case ErrSessionNotActive:
		return "Session is not in progress."
	case ErrAIKeyMissing:
		return "AI key missing. Set GOOGLE_API_KEY on server."
	case ErrGenerationFailed:
		return "Failed to generate AI content."
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "File size exceeds the limit."
	case ErrResumeParse:
		return "Failed to process resume."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
