package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hli605/showdown-bot/internal/model"
)

// MatchRepo handles match and battle database operations.
type MatchRepo struct {
	db *sql.DB
}

// NewMatchRepo creates a MatchRepo.
func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// Create inserts a new match.
func (r *MatchRepo) Create(ctx context.Context, name, format, agentOne, agentTwo string, seed int64) (*model.Match, error) {
	var m model.Match
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO matches (name, format, agent_one, agent_two, seed)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, format, agent_one, agent_two, seed, created_at`,
		name, format, agentOne, agentTwo, seed,
	).Scan(&m.ID, &m.Name, &m.Format, &m.AgentOne, &m.AgentTwo, &m.Seed, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return &m, nil
}

// FindByID returns a match by ID.
func (r *MatchRepo) FindByID(ctx context.Context, id string) (*model.Match, error) {
	var m model.Match
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, format, agent_one, agent_two, seed, battles, wins_one, wins_two, draws, created_at, finished_at
		 FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Format, &m.AgentOne, &m.AgentTwo, &m.Seed,
		&m.Battles, &m.WinsOne, &m.WinsTwo, &m.Draws, &m.CreatedAt, &m.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	return &m, nil
}

// ListRecent returns the most recently created matches.
func (r *MatchRepo) ListRecent(ctx context.Context, limit int) ([]model.Match, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, format, agent_one, agent_two, seed, battles, wins_one, wins_two, draws, created_at, finished_at
		 FROM matches ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.Name, &m.Format, &m.AgentOne, &m.AgentTwo, &m.Seed,
			&m.Battles, &m.WinsOne, &m.WinsTwo, &m.Draws, &m.CreatedAt, &m.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// RecordBattle inserts one completed battle and bumps the match counter.
func (r *MatchRepo) RecordBattle(ctx context.Context, matchID, tag, winner string, turns int, log json.RawMessage) (*model.Battle, error) {
	var b model.Battle
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO battles (match_id, tag, winner, turns, log)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		 RETURNING id, match_id, tag, COALESCE(winner, ''), turns, created_at`,
		matchID, tag, winner, turns, log,
	).Scan(&b.ID, &b.MatchID, &b.Tag, &b.Winner, &b.Turns, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record battle: %w", err)
	}
	b.Log = log

	if _, err := r.db.ExecContext(ctx,
		`UPDATE matches SET battles = battles + 1 WHERE id = $1`, matchID); err != nil {
		return nil, fmt.Errorf("bump battle count: %w", err)
	}
	return &b, nil
}

// BattlesByMatch returns all battles of a match, oldest first.
func (r *MatchRepo) BattlesByMatch(ctx context.Context, matchID string) ([]model.Battle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, match_id, tag, COALESCE(winner, ''), turns, log, created_at
		 FROM battles WHERE match_id = $1 ORDER BY created_at ASC`, matchID)
	if err != nil {
		return nil, fmt.Errorf("list battles: %w", err)
	}
	defer rows.Close()

	var battles []model.Battle
	for rows.Next() {
		var b model.Battle
		var blog []byte
		if err := rows.Scan(&b.ID, &b.MatchID, &b.Tag, &b.Winner, &b.Turns, &blog, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan battle: %w", err)
		}
		b.Log = blog
		battles = append(battles, b)
	}
	return battles, rows.Err()
}

// SetFinished stores the final tallies and stamps the finish time.
func (r *MatchRepo) SetFinished(ctx context.Context, matchID string, winsOne, winsTwo, draws int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE matches SET wins_one = $2, wins_two = $3, draws = $4, finished_at = now()
		 WHERE id = $1`, matchID, winsOne, winsTwo, draws)
	if err != nil {
		return fmt.Errorf("finish match: %w", err)
	}
	return nil
}
