package interview

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hireloop/intervu-backend/internal/genai"
	"github.com/hireloop/intervu-backend/internal/model"
)

// Evaluator scores a single submitted answer. Multiple-choice answers are
// graded by index equality; free-text answers go through the LLM rubric
// with a deterministic fallback that is always available. An LLM failure is
// never surfaced to the caller.
type Evaluator struct {
	ai  genai.Client // nil routes every text answer to the fallback
	log zerolog.Logger
}

// NewEvaluator creates an Evaluator. ai may be nil.
func NewEvaluator(ai genai.Client, log zerolog.Logger) *Evaluator {
	return &Evaluator{ai: ai, log: log.With().Str("component", "evaluator").Logger()}
}

// TextScore is the result of evaluating a free-text answer.
type TextScore struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Keywords     []string `json:"keywords,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// EvaluateChoice returns the correctness of a multiple-choice submission.
// The result is nil (undefined, not false) unless the question is gradable
// and an option was actually selected; undefined correctness must never be
// counted as incorrect downstream.
func EvaluateChoice(q *model.Question, selectedIndex *int) *bool {
	if !q.Gradable() || selectedIndex == nil {
		return nil
	}
	v := *selectedIndex == *q.CorrectIndex
	return &v
}

// EvaluateText scores a free-text answer, attempting the LLM rubric once
// and falling back to the deterministic formula on any failure.
func (e *Evaluator) EvaluateText(ctx context.Context, q *model.Question, answer string, timeUsed int) TextScore {
	if e.ai != nil {
		if ts, err := e.llmScore(ctx, q, answer, timeUsed); err == nil {
			return ts
		} else {
			e.log.Warn().Err(err).Str("question_id", q.ID).Msg("LLM scoring failed, using fallback")
		}
	}
	return FallbackScore(q, answer, timeUsed)
}

func (e *Evaluator) llmScore(ctx context.Context, q *model.Question, answer string, timeUsed int) (TextScore, error) {
	raw, err := e.ai.GenerateText(ctx, answerRubricPrompt(q, answer, timeUsed))
	if err != nil {
		return TextScore{}, err
	}
	chunk := genai.ExtractJSONObject(raw)
	if chunk == "" {
		chunk = raw
	}
	var ts TextScore
	if err := json.Unmarshal([]byte(chunk), &ts); err != nil {
		return TextScore{}, err
	}
	if ts.Score < 0 {
		ts.Score = 0
	}
	if ts.Score > 100 {
		ts.Score = 100
	}
	return ts, nil
}

// Deterministic fallback formula constants.
var difficultyMultiplier = map[model.Difficulty]float64{
	model.DifficultyEasy:   1.0,
	model.DifficultyMedium: 1.2,
	model.DifficultyHard:   1.5,
}

// FallbackScore computes the rule-based score for a free-text answer:
// a length tier (0-40) scaled by difficulty and capped at 70, a time
// bonus/penalty by used/limit ratio, and +5 per matched keyword capped at
// 30, clamped to [0,100].
func FallbackScore(q *model.Question, answer string, timeUsed int) TextScore {
	base := lengthTier(answer)
	mult, ok := difficultyMultiplier[q.Difficulty]
	if !ok {
		mult = 1.0
	}
	base = base * mult
	if base > 70 {
		base = 70
	}

	total := base + float64(timeBonus(timeUsed, q.TimeLimit)) + float64(keywordScore(q.Keywords, answer))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	score := int(total + 0.5)
	return TextScore{
		Score:    score,
		Feedback: feedbackFor(q, score),
	}
}

func lengthTier(answer string) float64 {
	switch n := len(strings.TrimSpace(answer)); {
	case n < 50:
		return 10
	case n < 100:
		return 20
	case n < 200:
		return 30
	default:
		return 40
	}
}

func timeBonus(timeUsed, timeLimit int) int {
	if timeLimit <= 0 {
		return 0
	}
	ratio := float64(timeUsed) / float64(timeLimit)
	switch {
	case ratio <= 0.3:
		return 20
	case ratio <= 0.6:
		return 15
	case ratio <= 0.8:
		return 10
	case ratio <= 1.0:
		return 5
	default:
		return -10
	}
}

func keywordScore(keywords []string, answer string) int {
	lower := strings.ToLower(answer)
	score := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			score += 5
		}
	}
	if score > 30 {
		score = 30
	}
	return score
}

func feedbackFor(q *model.Question, score int) string {
	var fb string
	switch {
	case score >= 85:
		fb = "Excellent answer! You demonstrated strong understanding and provided comprehensive details."
	case score >= 70:
		fb = "Good answer! You covered the main points well with room for more detail."
	case score >= 50:
		fb = "Fair answer. Consider providing more specific examples and technical details."
	default:
		fb = "The answer needs improvement. Try to be more specific and provide concrete examples."
	}
	if q.Difficulty == model.DifficultyHard && score < 70 {
		fb += " For complex questions like this, consider breaking down your approach step-by-step and discussing trade-offs."
	}
	return fb
}
