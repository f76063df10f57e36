package advisor

import (
	"context"
	"database/sql"
)

const exchangesSchema = `
	CREATE TABLE IF NOT EXISTS exchanges (
		id          UUID PRIMARY KEY,
		prompt      TEXT NOT NULL,
		reply       TEXT NOT NULL,
		outcome     TEXT NOT NULL,
		provider    TEXT NOT NULL,
		model       TEXT NOT NULL,
		duration_ms BIGINT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

// EnsureSchema creates the exchanges table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, exchangesSchema)
	return err
}

func (r *repo) SaveExchange(ctx context.Context, ex *Exchange) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exchanges (id, prompt, reply, outcome, provider, model, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		ex.ID,
		ex.Prompt,
		ex.Reply,
		string(ex.Outcome),
		ex.Provider,
		ex.Model,
		ex.Duration.Milliseconds(),
		ex.CreatedAt,
	)
	return err
}

// NopRepo drops every exchange.
type NopRepo struct{}

func (NopRepo) SaveExchange(context.Context, *Exchange) error { return nil }
