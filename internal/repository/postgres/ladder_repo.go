package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hli605/showdown-bot/internal/model"
)

// LadderRepo records battles played against real opponents on a server.
type LadderRepo struct {
	db *sql.DB
}

// NewLadderRepo creates a LadderRepo.
func NewLadderRepo(db *sql.DB) *LadderRepo {
	return &LadderRepo{db: db}
}

// RecordBattle inserts one finished ladder battle.
func (r *LadderRepo) RecordBattle(ctx context.Context, b *model.LadderBattle) (*model.LadderBattle, error) {
	var out model.LadderBattle
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO ladder_battles (tag, format, agent, opponent, winner, turns, rating)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		 RETURNING id, tag, format, agent, opponent, COALESCE(winner, ''), turns, rating, created_at`,
		b.Tag, b.Format, b.Agent, b.Opponent, b.Winner, b.Turns, b.Rating,
	).Scan(&out.ID, &out.Tag, &out.Format, &out.Agent, &out.Opponent, &out.Winner, &out.Turns, &out.Rating, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record ladder battle: %w", err)
	}
	return &out, nil
}

// ListByAgent returns the most recent battles for an agent.
func (r *LadderRepo) ListByAgent(ctx context.Context, agent string, limit int) ([]model.LadderBattle, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tag, format, agent, opponent, COALESCE(winner, ''), turns, rating, created_at
		 FROM ladder_battles WHERE agent = $1 ORDER BY created_at DESC LIMIT $2`, agent, limit)
	if err != nil {
		return nil, fmt.Errorf("list ladder battles: %w", err)
	}
	defer rows.Close()

	var battles []model.LadderBattle
	for rows.Next() {
		var b model.LadderBattle
		if err := rows.Scan(&b.ID, &b.Tag, &b.Format, &b.Agent, &b.Opponent, &b.Winner, &b.Turns, &b.Rating, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ladder battle: %w", err)
		}
		battles = append(battles, b)
	}
	return battles, rows.Err()
}

// WinRate returns the agent's fraction of recorded battles it won.
func (r *LadderRepo) WinRate(ctx context.Context, agent string) (float64, error) {
	var rate sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT AVG(CASE WHEN winner = agent THEN 1.0 ELSE 0.0 END)
		 FROM ladder_battles WHERE agent = $1`, agent,
	).Scan(&rate)
	if err != nil {
		return 0, fmt.Errorf("win rate: %w", err)
	}
	return rate.Float64, nil
}
