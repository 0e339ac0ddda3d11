package interview

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/hireloop/intervu-backend/internal/genai"
	"github.com/hireloop/intervu-backend/internal/model"
)

// Summarizer aggregates a completed session's answers into a final score
// and natural-language summary. A rule-based path covers every LLM failure,
// so Summarize never errors.
type Summarizer struct {
	ai  genai.Client // nil routes straight to the rule-based path
	log zerolog.Logger
}

// NewSummarizer creates a Summarizer. ai may be nil.
func NewSummarizer(ai genai.Client, log zerolog.Logger) *Summarizer {
	return &Summarizer{ai: ai, log: log.With().Str("component", "summarizer").Logger()}
}

// SummaryResult is the outcome of summarizing one finished session.
type SummaryResult struct {
	OverallScore   int      `json:"overallScore"`
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths,omitempty"`
	Improvements   []string `json:"improvements,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// Summarize computes the final score and summary for a session. The LLM is
// attempted once when available; any failure falls back to the
// deterministic aggregate.
func (s *Summarizer) Summarize(ctx context.Context, sess *model.Session) SummaryResult {
	if s.ai != nil {
		if res, err := s.llmSummary(ctx, sess); err == nil {
			return res
		} else {
			s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("LLM summary failed, using rule-based path")
		}
	}
	return s.ruleBased(sess)
}

type llmSummaryPayload struct {
	OverallScore *float64 `json:"overallScore"`
	Summary      string   `json:"summary"`
}

func (s *Summarizer) llmSummary(ctx context.Context, sess *model.Session) (SummaryResult, error) {
	raw, err := s.ai.GenerateText(ctx, summaryPrompt(sess))
	if err != nil {
		return SummaryResult{}, err
	}
	chunk := genai.ExtractJSONObject(raw)
	if chunk == "" {
		chunk = raw
	}
	var payload llmSummaryPayload
	if err := json.Unmarshal([]byte(chunk), &payload); err != nil {
		return SummaryResult{}, err
	}

	res := s.ruleBased(sess)
	if payload.OverallScore != nil {
		score := int(*payload.OverallScore + 0.5)
		if score >= 0 && score <= 100 {
			res.OverallScore = score
		}
	}
	if payload.Summary != "" {
		res.Summary = payload.Summary
	}
	return res, nil
}

// ruleBased is the deterministic aggregate. Gradable questions are scored
// by correctness ratio; a session without gradable questions averages its
// per-answer text scores.
func (s *Summarizer) ruleBased(sess *model.Session) SummaryResult {
	overall, gradable := mcqScore(sess)
	if !gradable {
		overall = textScoreMean(sess)
	}
	return SummaryResult{
		OverallScore:   overall,
		Summary:        bucketSummary(overall),
		Strengths:      strengths(sess),
		Improvements:   improvements(sess),
		Recommendation: recommendation(overall),
	}
}

// mcqScore returns round(100*correct/gradable). Answers with undefined
// correctness count toward the denominator only through their question
// being gradable, never as incorrect-by-default false positives.
func mcqScore(sess *model.Session) (score int, ok bool) {
	correct, total := 0, 0
	for i := range sess.Questions {
		q := &sess.Questions[i]
		if !q.Gradable() {
			continue
		}
		total++
		if a := sess.AnswerFor(q.ID); a != nil && a.IsCorrect != nil && *a.IsCorrect {
			correct++
		}
	}
	if total == 0 {
		return 0, false
	}
	return int(float64(correct)/float64(total)*100 + 0.5), true
}

// textScoreMean averages per-answer scores in question order, computing the
// fallback on the fly for answers scored neither at submit time nor by the
// LLM.
func textScoreMean(sess *model.Session) int {
	if len(sess.Questions) == 0 {
		return 0
	}
	sum := 0
	for i := range sess.Questions {
		q := &sess.Questions[i]
		a := sess.AnswerFor(q.ID)
		if a == nil {
			continue
		}
		if a.Score != nil {
			sum += *a.Score
			continue
		}
		sum += FallbackScore(q, a.Text, a.TimeUsed).Score
	}
	return int(float64(sum)/float64(len(sess.Questions)) + 0.5)
}

func bucketSummary(score int) string {
	switch {
	case score >= 80:
		return "Excellent performance."
	case score >= 60:
		return "Good performance."
	default:
		return "Needs improvement."
	}
}

func strengths(sess *model.Session) []string {
	var out []string
	high, top := 0, false
	for i := range sess.Answers {
		if sc := sess.Answers[i].Score; sc != nil {
			if *sc >= 80 {
				high++
			}
			if *sc >= 90 {
				top = true
			}
		}
	}
	if high >= 2 {
		out = append(out, "Strong technical knowledge")
	}
	if top {
		out = append(out, "Excellent problem-solving skills")
	}
	return out
}

func improvements(sess *model.Session) []string {
	var out []string
	low := 0
	for i := range sess.Answers {
		if sc := sess.Answers[i].Score; sc != nil && *sc < 50 {
			low++
		}
	}
	if low >= 2 {
		out = append(out, "Technical depth and detail")
	}
	if len(sess.Answers) < len(sess.Questions) {
		out = append(out, "Specific examples and concrete solutions")
	}
	return out
}

func recommendation(score int) string {
	switch {
	case score >= 85:
		return "Strong hire - Excellent candidate with outstanding technical skills"
	case score >= 70:
		return "Hire - Good candidate with solid technical foundation"
	case score >= 50:
		return "Consider - Candidate shows potential but needs development"
	default:
		return "Not recommended - Significant gaps in technical knowledge"
	}
}
