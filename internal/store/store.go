// Package store provides the persistence layer for interview sessions and
// candidate result records. The core services depend only on the Store
// interface; backends range from an in-process map to PostgreSQL.
package store

import (
	"context"
	"errors"

	"github.com/hireloop/intervu-backend/internal/model"
)

// ErrNotFound is returned when a session or candidate does not exist.
var ErrNotFound = errors.New("not found")

// Store persists sessions and candidate result records.
//
// Sessions are written wholesale per operation (read-modify-write); the
// single-writer-per-session model means no finer-grained transactional
// discipline is needed. Candidates are append-only.
type Store interface {
	GetSession(ctx context.Context, id string) (*model.Session, error)
	PutSession(ctx context.Context, s *model.Session) error
	DeleteSession(ctx context.Context, id string) error

	AppendCandidate(ctx context.Context, c *model.Candidate) error
	ListCandidates(ctx context.Context) ([]model.Candidate, error)
	GetCandidate(ctx context.Context, id string) (*model.Candidate, error)
}
