// Package eventstore persists published work item events to PostgreSQL as an
// append-only log.
package eventstore

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/workitem-service/internal/domain/event"
)

const table = "work_item_events"

// execer is the part of *pgxpool.Pool the store needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is an event bus subscriber that inserts every envelope into the
// work_item_events table. Inserts are idempotent on the envelope id.
type Store struct {
	db   execer
	psql sq.StatementBuilderType
}

// New creates a Store writing through db, normally a *pgxpool.Pool.
func New(db execer) *Store {
	return &Store{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Name implements eventbus.Subscriber.
func (*Store) Name() string { return "event-store" }

// Handle implements eventbus.Subscriber.
func (s *Store) Handle(ctx context.Context, env event.Envelope) error {
	query, args, err := s.insert(env)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event %s: %w", env.ID, err)
	}
	return nil
}

func (s *Store) insert(env event.Envelope) (string, []any, error) {
	payload, err := json.Marshal(env.Event)
	if err != nil {
		return "", nil, fmt.Errorf("marshal payload of event %s: %w", env.ID, err)
	}

	query, args, err := s.psql.
		Insert(table).
		Columns("id", "name", "subject_id", "occurred_at", "payload").
		Values(env.ID, env.Name, env.SubjectID, env.OccurredAt, payload).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build query: %w", err)
	}
	return query, args, nil
}
