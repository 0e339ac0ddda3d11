// Package question produces the fixed-shape question set every interview
// session starts with: exactly 6 questions, two per difficulty tier, in
// Easy,Easy,Medium,Medium,Hard,Hard order.
package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hireloop/intervu-backend/internal/genai"
	"github.com/hireloop/intervu-backend/internal/model"
)

// Sentinel errors surfaced to the HTTP layer.
var (
	// ErrNoAPIKey means resume grounding was requested but the service has
	// no generation key configured.
	ErrNoAPIKey = errors.New("ai key missing")
	// ErrGenerationFailed means the external service returned an unusable
	// question set. Resume-grounded generation never degrades to the static
	// bank: issuing non-resume-specific questions silently would defeat the
	// point of grounding.
	ErrGenerationFailed = errors.New("ai question generation failed")
)

const (
	setSize        = 6
	resumeCtxLimit = 4000
	optionsPerItem = 4
)

var tierOrder = []model.Difficulty{
	model.DifficultyEasy, model.DifficultyEasy,
	model.DifficultyMedium, model.DifficultyMedium,
	model.DifficultyHard, model.DifficultyHard,
}

// Provider generates interview question sets.
type Provider struct {
	ai  genai.Client // nil when no key is configured
	log zerolog.Logger
}

// NewProvider creates a Provider. ai may be nil, which disables
// resume-grounded generation.
func NewProvider(ai genai.Client, log zerolog.Logger) *Provider {
	return &Provider{ai: ai, log: log.With().Str("component", "question_provider").Logger()}
}

// Generate returns an ordered set of 6 questions. With resume text it asks
// the generation service for resume-specific multiple-choice questions and
// reports aiUsed=true; without resume text it draws free-text questions
// from the static bank.
func (p *Provider) Generate(ctx context.Context, resumeText string) (qs []model.Question, aiUsed bool, err error) {
	if resumeText == "" {
		return p.staticSet(), false, nil
	}
	if p.ai == nil {
		return nil, false, ErrNoAPIKey
	}
	qs, err = p.resumeGroundedSet(ctx, resumeText)
	if err != nil {
		return nil, false, err
	}
	return qs, true, nil
}

// staticSet draws 2 questions per tier from the fixed bank.
func (p *Provider) staticSet() []model.Question {
	out := make([]model.Question, 0, setSize)
	taken := map[model.Difficulty]int{}
	for _, d := range tierOrder {
		entry := bankFor(d)[taken[d]]
		taken[d]++
		out = append(out, model.Question{
			ID:         uuid.New().String(),
			Text:       entry.text,
			Difficulty: d,
			TimeLimit:  model.TimeLimitFor(d),
			Keywords:   entry.keywords,
		})
	}
	return out
}

// rawQuestion is the loosely-typed shape returned by the model. Options may
// arrive under several field names or embedded in the text, so everything
// that can be malformed is RawMessage.
type rawQuestion struct {
	Text         string          `json:"text"`
	Difficulty   string          `json:"difficulty"`
	Keywords     []string        `json:"keywords"`
	Options      json.RawMessage `json:"options"`
	Choices      json.RawMessage `json:"choices"`
	Answers      json.RawMessage `json:"answers"`
	CorrectIndex *int            `json:"correctIndex"`
}

func (p *Provider) resumeGroundedSet(ctx context.Context, resumeText string) ([]model.Question, error) {
	if len(resumeText) > resumeCtxLimit {
		resumeText = resumeText[:resumeCtxLimit]
	}

	raw, err := p.ai.GenerateText(ctx, questionSetPrompt(resumeText))
	if err != nil {
		p.log.Warn().Err(err).Msg("question generation call failed")
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}

	chunk := genai.ExtractJSONArray(raw)
	if chunk == "" {
		chunk = raw
	}
	var items []rawQuestion
	if err := json.Unmarshal([]byte(chunk), &items); err != nil {
		p.log.Warn().Err(err).Msg("question set is not valid JSON")
		return nil, fmt.Errorf("%w: unparsable question set", ErrGenerationFailed)
	}
	if len(items) < setSize {
		return nil, fmt.Errorf("%w: got %d questions, need %d", ErrGenerationFailed, len(items), setSize)
	}

	mapped := make([]model.Question, 0, setSize)
	for i := 0; i < setSize; i++ {
		item := items[i]
		opts := NormalizeOptions(item.Options, item.Choices, item.Answers, item.Text)
		if len(opts) > optionsPerItem {
			opts = opts[:optionsPerItem]
		}
		if len(opts) < optionsPerItem {
			// One-shot regeneration per question; a second failure fails
			// the whole set.
			opts = p.regenerateOptions(ctx, item.Text)
		}
		if len(opts) != optionsPerItem {
			return nil, fmt.Errorf("%w: question %d has no usable options", ErrGenerationFailed, i+1)
		}

		d := model.Difficulty(item.Difficulty)
		var correct *int
		if item.CorrectIndex != nil && *item.CorrectIndex >= 0 && *item.CorrectIndex < optionsPerItem {
			v := *item.CorrectIndex
			correct = &v
		}
		mapped = append(mapped, model.Question{
			ID:           strconv.Itoa(i + 1),
			Text:         item.Text,
			Difficulty:   d,
			TimeLimit:    model.TimeLimitFor(d),
			Options:      opts,
			CorrectIndex: correct,
			Keywords:     item.Keywords,
		})
	}

	return orderByTier(mapped)
}

// orderByTier enforces the 2/2/2 distribution and canonical order.
func orderByTier(qs []model.Question) ([]model.Question, error) {
	byTier := map[model.Difficulty][]model.Question{}
	for _, q := range qs {
		byTier[q.Difficulty] = append(byTier[q.Difficulty], q)
	}
	out := make([]model.Question, 0, setSize)
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		if len(byTier[d]) < 2 {
			return nil, fmt.Errorf("%w: difficulty distribution not satisfied", ErrGenerationFailed)
		}
		out = append(out, byTier[d][:2]...)
	}
	return out, nil
}

// regenerateOptions asks the model for exactly 4 options for one question.
// Any failure returns nil; the caller decides whether that is terminal.
func (p *Provider) regenerateOptions(ctx context.Context, text string) []string {
	opts, err := p.GenerateOptions(ctx, text)
	if err != nil {
		p.log.Warn().Err(err).Msg("option regeneration failed")
		return nil
	}
	return opts
}

// GenerateOptions produces 4 multiple-choice options for an arbitrary
// question text. Unlike scoring there is no deterministic fallback, so the
// error propagates.
func (p *Provider) GenerateOptions(ctx context.Context, text string) ([]string, error) {
	if p.ai == nil {
		return nil, ErrNoAPIKey
	}
	raw, err := p.ai.GenerateText(ctx, optionsPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}
	chunk := genai.ExtractJSONArray(raw)
	if chunk == "" {
		return nil, fmt.Errorf("%w: no options array in output", ErrGenerationFailed)
	}
	var opts []string
	if err := json.Unmarshal([]byte(chunk), &opts); err != nil {
		return nil, fmt.Errorf("%w: invalid options JSON", ErrGenerationFailed)
	}
	opts = trimNonEmpty(opts)
	if len(opts) < optionsPerItem {
		return nil, fmt.Errorf("%w: got %d options, need %d", ErrGenerationFailed, len(opts), optionsPerItem)
	}
	return opts[:optionsPerItem], nil
}
