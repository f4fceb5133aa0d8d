package repository

import (
	"context"
	"encoding/json"

	"github.com/hli605/showdown-bot/internal/model"
)

// MatchRepository defines arena match and battle persistence.
type MatchRepository interface {
	Create(ctx context.Context, name, format, agentOne, agentTwo string, seed int64) (*model.Match, error)
	FindByID(ctx context.Context, id string) (*model.Match, error)
	ListRecent(ctx context.Context, limit int) ([]model.Match, error)
	RecordBattle(ctx context.Context, matchID, tag, winner string, turns int, log json.RawMessage) (*model.Battle, error)
	BattlesByMatch(ctx context.Context, matchID string) ([]model.Battle, error)
	SetFinished(ctx context.Context, matchID string, winsOne, winsTwo, draws int) error
}

// LadderRepository defines persistence for battles played on a live server.
type LadderRepository interface {
	RecordBattle(ctx context.Context, b *model.LadderBattle) (*model.LadderBattle, error)
	ListByAgent(ctx context.Context, agent string, limit int) ([]model.LadderBattle, error)
	WinRate(ctx context.Context, agent string) (float64, error)
}
