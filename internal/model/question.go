package model

// Difficulty enumerates question difficulty tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Default time limits in seconds per difficulty tier.
const (
	TimeLimitEasy   = 20
	TimeLimitMedium = 60
	TimeLimitHard   = 120
)

// TimeLimitFor returns the default time limit for a difficulty tier.
func TimeLimitFor(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return TimeLimitMedium
	case DifficultyHard:
		return TimeLimitHard
	default:
		return TimeLimitEasy
	}
}

// Question is a single interview question. A question with no options is
// free-text; a multiple-choice question carries exactly 4 options and a
// CorrectIndex into them. Questions are created once at session start and
// are immutable thereafter.
type Question struct {
	ID           string     `json:"id"`
	Text         string     `json:"text"`
	Difficulty   Difficulty `json:"difficulty"`
	TimeLimit    int        `json:"timeLimit"`
	Options      []string   `json:"options,omitempty"`
	CorrectIndex *int       `json:"correctIndex,omitempty"`
	Keywords     []string   `json:"keywords,omitempty"`
}

// Gradable reports whether the question is eligible for binary correctness
// scoring (multiple-choice with a defined correct option).
func (q *Question) Gradable() bool {
	return len(q.Options) > 0 && q.CorrectIndex != nil
}
