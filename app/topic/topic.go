// Package topic resolves the origin hint attached to AI-completion leads.
package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lysyi3m/lead-comb/app/lead"
)

// Lookup returns the topic of the next discovery run. A lookup that cannot
// answer reports ok=false instead of an error.
type Lookup interface {
	Next(ctx context.Context) (string, bool)
}

// Static is a fixed topic supplied by configuration.
type Static string

func (s Static) Next(context.Context) (string, bool) {
	topic := strings.TrimSpace(string(s))
	return topic, topic != ""
}

const nextTopicQuery = `
	SELECT topic FROM discovery_topics
	WHERE status = 'active'
	ORDER BY last_searched_at ASC NULLS FIRST
	LIMIT 1
`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres reads the next active discovery topic. It never writes.
type Postgres struct {
	db   rowQuerier
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open topic database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to topic database: %w", err)
	}

	return &Postgres{db: pool, pool: pool}, nil
}

func (p *Postgres) Next(ctx context.Context) (string, bool) {
	var topic *string
	err := p.db.QueryRow(ctx, nextTopicQuery).Scan(&topic)
	if errors.Is(err, pgx.ErrNoRows) {
		slog.Debug("No active discovery topic")
		return "", false
	}
	if err != nil {
		slog.Warn("Topic lookup failed", "error", err)
		return "", false
	}
	if topic == nil || strings.TrimSpace(*topic) == "" {
		return "", false
	}

	return strings.TrimSpace(*topic), true
}

func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Resolve returns the looked-up topic or lead.UnknownTopic.
func Resolve(ctx context.Context, l Lookup) string {
	if l == nil {
		return lead.UnknownTopic
	}
	if topic, ok := l.Next(ctx); ok {
		return topic
	}
	return lead.UnknownTopic
}
