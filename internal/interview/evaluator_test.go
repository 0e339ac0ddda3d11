package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/intervu-backend/internal/genai"
	"github.com/hireloop/intervu-backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestEvaluateChoice(t *testing.T) {
	mcq := &model.Question{
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: intPtr(2),
	}
	freeText := &model.Question{Text: "Explain closures."}

	tests := []struct {
		name     string
		q        *model.Question
		selected *int
		want     *bool
	}{
		{"correct selection", mcq, intPtr(2), boolPtr(true)},
		{"incorrect selection", mcq, intPtr(0), boolPtr(false)},
		{"no selection on gradable question", mcq, nil, nil},
		{"selection on free-text question", freeText, intPtr(1), nil},
		{"no selection on free-text question", freeText, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateChoice(tt.q, tt.selected)
			if tt.want == nil {
				assert.Nil(t, got, "correctness must stay undefined, not false")
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func boolPtr(v bool) *bool { return &v }

func TestFallbackScore(t *testing.T) {
	q := &model.Question{
		Difficulty: model.DifficultyHard,
		TimeLimit:  120,
		Keywords:   []string{"react", "redux"},
	}

	// 252 chars is tier 40, times the Hard multiplier 1.5 gives 60 (under
	// the 70 cap); 20% of the limit gives +20; both keywords give +10.
	answer := strings.Repeat("x", 240) + " react redux"
	got := FallbackScore(q, answer, 24)
	assert.Equal(t, 90, got.Score)
	assert.NotEmpty(t, got.Feedback)
}

func TestFallbackScoreLengthTiers(t *testing.T) {
	q := &model.Question{Difficulty: model.DifficultyEasy, TimeLimit: 20}

	tests := []struct {
		name    string
		answer  string
		timeUse int
		want    int
	}{
		// Easy multiplier is 1.0, time ratio 0.5 gives +15.
		{"short answer", strings.Repeat("a", 10), 10, 25},
		{"medium answer", strings.Repeat("a", 60), 10, 35},
		{"long answer", strings.Repeat("a", 150), 10, 45},
		{"very long answer", strings.Repeat("a", 300), 10, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackScore(q, tt.answer, tt.timeUse).Score)
		})
	}
}

func TestFallbackScoreTimeBonus(t *testing.T) {
	q := &model.Question{Difficulty: model.DifficultyEasy, TimeLimit: 100}
	answer := strings.Repeat("a", 10) // tier 10

	tests := []struct {
		timeUsed int
		want     int
	}{
		{30, 30},  // ratio 0.30 -> +20
		{60, 25},  // ratio 0.60 -> +15
		{80, 20},  // ratio 0.80 -> +10
		{100, 15}, // ratio 1.00 -> +5
		{150, 0},  // over limit -> -10, clamped at 0
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FallbackScore(q, answer, tt.timeUsed).Score)
	}
}

func TestFallbackScoreKeywordCap(t *testing.T) {
	q := &model.Question{
		Difficulty: model.DifficultyEasy,
		TimeLimit:  100,
		Keywords:   []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8"},
	}
	// All 8 keywords matched would be +40; the cap holds it at +30.
	got := FallbackScore(q, "k1 k2 k3 k4 k5 k6 k7 k8", 150)
	// tier 10 - 10 time penalty + 30 keywords = 30
	assert.Equal(t, 30, got.Score)
}

func TestFallbackScoreKeywordMatchingIsCaseInsensitive(t *testing.T) {
	q := &model.Question{Difficulty: model.DifficultyEasy, TimeLimit: 100, Keywords: []string{"React"}}
	with := FallbackScore(q, "I have used REACT a lot", 30).Score
	without := FallbackScore(q, "I have used angular a lot", 30).Score
	assert.Equal(t, 5, with-without)
}

func TestEvaluateTextUsesLLM(t *testing.T) {
	mock := &genai.Mock{Responses: []string{`{"score": 88, "feedback": "solid"}`}}
	e := NewEvaluator(mock, zerolog.Nop())
	q := &model.Question{Difficulty: model.DifficultyMedium, TimeLimit: 60}

	ts := e.EvaluateText(context.Background(), q, "an answer", 30)
	assert.Equal(t, 88, ts.Score)
	assert.Equal(t, "solid", ts.Feedback)
}

func TestEvaluateTextFallsBackOnLLMError(t *testing.T) {
	mock := &genai.Mock{Err: errors.New("quota exceeded")}
	e := NewEvaluator(mock, zerolog.Nop())
	q := &model.Question{Difficulty: model.DifficultyEasy, TimeLimit: 20}

	ts := e.EvaluateText(context.Background(), q, strings.Repeat("a", 60), 10)
	assert.Equal(t, 35, ts.Score, "deterministic fallback must take over")
}

func TestEvaluateTextClampsLLMScore(t *testing.T) {
	mock := &genai.Mock{Responses: []string{`{"score": 300, "feedback": "??"}`}}
	e := NewEvaluator(mock, zerolog.Nop())
	q := &model.Question{Difficulty: model.DifficultyEasy, TimeLimit: 20}

	ts := e.EvaluateText(context.Background(), q, "answer", 5)
	assert.Equal(t, 100, ts.Score)
}

func TestEvaluateTextNilClientUsesFallback(t *testing.T) {
	e := NewEvaluator(nil, zerolog.Nop())
	q := &model.Question{Difficulty: model.DifficultyEasy, TimeLimit: 20}

	ts := e.EvaluateText(context.Background(), q, "short", 5)
	assert.Equal(t, 30, ts.Score) // tier 10 + time bonus 20
}
