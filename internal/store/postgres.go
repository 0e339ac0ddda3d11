package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloop/intervu-backend/internal/model"
)

// PostgresStore persists sessions and candidates in PostgreSQL. Questions
// and answers live in JSONB columns: the session is always read and written
// as a unit, matching the single-writer model. Schema is managed by
// cmd/migrate.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore on top of an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	s := &model.Session{}
	var candidate, questions, answers []byte
	err := p.pool.QueryRow(ctx,
		`SELECT id, candidate, questions, answers, current_index, status,
		        final_score, summary, candidate_id, started_at, finished_at
		 FROM sessions WHERE id = $1`, id,
	).Scan(&s.ID, &candidate, &questions, &answers, &s.CurrentQuestionIndex,
		&s.Status, &s.FinalScore, &s.Summary, &s.CandidateID, &s.StartedAt, &s.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if err := json.Unmarshal(candidate, &s.Candidate); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}
	if err := json.Unmarshal(questions, &s.Questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if err := json.Unmarshal(answers, &s.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return s, nil
}

func (p *PostgresStore) PutSession(ctx context.Context, s *model.Session) error {
	candidate, err := json.Marshal(s.Candidate)
	if err != nil {
		return fmt.Errorf("encode candidate: %w", err)
	}
	questions, err := json.Marshal(s.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	if answers == nil {
		answers = []byte("[]")
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO sessions (id, candidate, questions, answers, current_index,
		                       status, final_score, summary, candidate_id,
		                       started_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
		   candidate = EXCLUDED.candidate,
		   answers = EXCLUDED.answers,
		   current_index = EXCLUDED.current_index,
		   status = EXCLUDED.status,
		   final_score = EXCLUDED.final_score,
		   summary = EXCLUDED.summary,
		   candidate_id = EXCLUDED.candidate_id,
		   finished_at = EXCLUDED.finished_at`,
		s.ID, candidate, questions, answers, s.CurrentQuestionIndex,
		s.Status, s.FinalScore, s.Summary, s.CandidateID, s.StartedAt, s.FinishedAt)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (p *PostgresStore) DeleteSession(ctx context.Context, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) AppendCandidate(ctx context.Context, c *model.Candidate) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, email, score, summary, session_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Email, c.Score, c.Summary, c.SessionID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("append candidate: %w", err)
	}
	return nil
}

func (p *PostgresStore) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, email, score, summary, session_id, created_at
		 FROM candidates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var out []model.Candidate
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Score, &c.Summary,
			&c.SessionID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *PostgresStore) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	c := &model.Candidate{}
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, score, summary, session_id, created_at
		 FROM candidates WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Score, &c.Summary, &c.SessionID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}
