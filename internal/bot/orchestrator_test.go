package bot

import (
	"context"
	"testing"
)

func TestOrchestratorBattleLifecycle(t *testing.T) {
	client := NewClient("tester", "", "")
	o := NewOrchestrator(client, &RandomAgent{}, "gen9ubers", nil, 1)

	ctx := context.Background()
	room := "battle-gen9ubers-123"

	if err := o.handle(ctx, ServerMessage{Room: room, Line: "|init|battle"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if o.battles[room] == nil {
		t.Fatal("battle not registered on init")
	}

	// Protocol lines keep the room's battle view current.
	if err := o.handle(ctx, ServerMessage{Room: room, Line: "|turn|3"}); err != nil {
		t.Fatalf("turn: %v", err)
	}
	if got := o.battles[room].battle.Turn; got != 3 {
		t.Errorf("turn = %d, want 3", got)
	}

	if err := o.handle(ctx, ServerMessage{Room: room, Line: "|win|tester"}); err != nil {
		t.Fatalf("win: %v", err)
	}
	if o.battles[room] != nil {
		t.Error("battle not cleaned up after win")
	}
	if !o.finishedAll() {
		t.Error("quota of 1 battle should be reached")
	}
}

func TestOrchestratorIgnoresUnknownRooms(t *testing.T) {
	client := NewClient("tester", "", "")
	o := NewOrchestrator(client, &RandomAgent{}, "", nil, 0)

	// Lines for rooms we never joined are dropped without effect.
	if err := o.handle(context.Background(), ServerMessage{Room: "battle-x", Line: "|turn|5"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := o.handle(context.Background(), ServerMessage{Room: "battle-x", Line: "|win|whoever"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrchestratorAcceptsMatchingChallenges(t *testing.T) {
	client := NewClient("tester", "", "")
	o := NewOrchestrator(client, &RandomAgent{}, "gen9ubers", nil, 0)
	ctx := context.Background()

	// Challenges in other formats are left pending.
	line := `|updatechallenges|{"challengesFrom":{"rival":"gen9ou"},"challengeTo":null}`
	if err := o.handle(ctx, ServerMessage{Line: line}); err != nil {
		t.Fatalf("mismatched format should be ignored: %v", err)
	}

	// A challenge in our format triggers an accept. The client is offline,
	// so the attempted send surfaces as an error.
	line = `|updatechallenges|{"challengesFrom":{"rival":"gen9ubers"},"challengeTo":null}`
	if err := o.handle(ctx, ServerMessage{Line: line}); err == nil {
		t.Error("expected an accept attempt on the offline client")
	}

	// Garbage payloads are dropped, not fatal.
	if err := o.handle(ctx, ServerMessage{Line: "|updatechallenges|not-json"}); err != nil {
		t.Fatalf("bad payload should not kill the loop: %v", err)
	}
}

func TestUserID(t *testing.T) {
	cases := map[string]string{
		"hli605":      "hli605",
		"HLi 605!":    "hli605",
		"Test-User_9": "testuser9",
	}
	for in, want := range cases {
		if got := userID(in); got != want {
			t.Errorf("userID(%q) = %q, want %q", in, got, want)
		}
	}
}
