//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"testing"

	"github.com/hli605/showdown-bot/internal/model"
)

var testDB *sql.DB

func setup(t *testing.T) {
	t.Helper()
	if testDB == nil {
		url := os.Getenv("TEST_DATABASE_URL")
		if url == "" {
			t.Skip("TEST_DATABASE_URL not set")
		}
		db, err := Connect(url)
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		testDB = db
	}
	for _, table := range []string{"battles", "matches", "ladder_battles"} {
		if _, err := testDB.Exec("TRUNCATE " + table + " CASCADE"); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}

func TestMatchLifecycle(t *testing.T) {
	setup(t)
	repo := NewMatchRepo(testDB)
	ctx := context.Background()

	m, err := repo.Create(ctx, "v6-vs-random-1", "gen9ubers", "v6", "random", 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected non-empty ID")
	}

	trace, _ := json.Marshal([]map[string]any{{"turn": 1, "action": "move stealthrock"}})
	b, err := repo.RecordBattle(ctx, m.ID, "arena-1", "v6", 34, trace)
	if err != nil {
		t.Fatalf("record battle: %v", err)
	}
	if b.Winner != "v6" || b.Turns != 34 {
		t.Errorf("battle = %+v", b)
	}

	if err := repo.SetFinished(ctx, m.ID, 8, 2, 0); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got, err := repo.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Battles != 1 || got.WinsOne != 8 || got.FinishedAt == nil {
		t.Errorf("match = %+v", got)
	}

	battles, err := repo.BattlesByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list battles: %v", err)
	}
	if len(battles) != 1 || battles[0].Tag != "arena-1" {
		t.Errorf("battles = %+v", battles)
	}
}

func TestMatchFindMissing(t *testing.T) {
	setup(t)
	repo := NewMatchRepo(testDB)
	m, err := repo.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil for missing match, got %+v", m)
	}
}

func TestLadderRepoWinRate(t *testing.T) {
	setup(t)
	repo := NewLadderRepo(testDB)
	ctx := context.Background()

	records := []model.LadderBattle{
		{Tag: "battle-1", Format: "gen9ubers", Agent: "v6", Opponent: "alice", Winner: "v6", Turns: 20},
		{Tag: "battle-2", Format: "gen9ubers", Agent: "v6", Opponent: "bob", Winner: "bob", Turns: 31},
		{Tag: "battle-3", Format: "gen9ubers", Agent: "v6", Opponent: "carol", Winner: "v6", Turns: 18},
	}
	for i := range records {
		if _, err := repo.RecordBattle(ctx, &records[i]); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	rate, err := repo.WinRate(ctx, "v6")
	if err != nil {
		t.Fatalf("win rate: %v", err)
	}
	if rate < 0.66 || rate > 0.67 {
		t.Errorf("win rate = %v, want 2/3", rate)
	}

	list, err := repo.ListByAgent(ctx, "v6", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("listed %d battles, want 3", len(list))
	}
}
