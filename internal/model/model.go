package model

import (
	"encoding/json"
	"time"
)

// Match represents one arena run: a block of battles between two agents.
type Match struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Format     string     `json:"format"`
	AgentOne   string     `json:"agent_one"`
	AgentTwo   string     `json:"agent_two"`
	Seed       int64      `json:"seed"`
	Battles    int        `json:"battles"`
	WinsOne    int        `json:"wins_one"`
	WinsTwo    int        `json:"wins_two"`
	Draws      int        `json:"draws"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Battle represents a single completed battle inside a match.
type Battle struct {
	ID        string          `json:"id"`
	MatchID   string          `json:"match_id"`
	Tag       string          `json:"tag"`
	Winner    string          `json:"winner,omitempty"` // agent name, "" for draw
	Turns     int             `json:"turns"`
	Log       json.RawMessage `json:"log,omitempty"` // turn-by-turn action trace
	CreatedAt time.Time       `json:"created_at"`
}

// LadderBattle represents a battle played on a live server, recorded for
// later review.
type LadderBattle struct {
	ID        string    `json:"id"`
	Tag       string    `json:"tag"`
	Format    string    `json:"format"`
	Agent     string    `json:"agent"`
	Opponent  string    `json:"opponent"`
	Winner    string    `json:"winner,omitempty"`
	Turns     int       `json:"turns"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
