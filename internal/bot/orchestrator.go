package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hli605/showdown-bot/internal/model"
	"github.com/hli605/showdown-bot/internal/repository"
	"github.com/hli605/showdown-bot/pkg/showdown"
)

// Orchestrator runs one bot account through ladder battles on a server:
// login, team registration, searching, and per-room battle upkeep.
type Orchestrator struct {
	client *Client
	agent  Agent
	format string

	ladderRepo repository.LadderRepository // nil = no persistence
	maxBattles int                         // stop after this many, 0 = run forever

	mu      sync.Mutex
	battles map[string]*roomBattle // room id -> battle state
	played  int
}

// roomBattle is the per-room tracking for one live battle.
type roomBattle struct {
	battle *showdown.Battle
	rating int
}

// NewOrchestrator creates an orchestrator for one account and agent.
func NewOrchestrator(client *Client, agent Agent, format string, ladderRepo repository.LadderRepository, maxBattles int) *Orchestrator {
	if format == "" {
		format = "gen9ubers"
	}
	return &Orchestrator{
		client:     client,
		agent:      agent,
		format:     format,
		ladderRepo: ladderRepo,
		maxBattles: maxBattles,
		battles:    make(map[string]*roomBattle),
	}
}

// Run connects, logs in when challenged for credentials, and plays battles
// until the context ends or maxBattles is reached.
func (o *Orchestrator) Run(ctx context.Context) error {
	if err := o.client.Connect(); err != nil {
		return err
	}
	defer o.client.Close()

	log.Info().Str("agent", o.agent.Name()).Str("format", o.format).Msg("Starting ladder run")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Context cancelled, stopping bot")
			return ctx.Err()
		case msg, ok := <-o.client.Messages():
			if !ok {
				return fmt.Errorf("connection closed")
			}
			if err := o.handle(ctx, msg); err != nil {
				return err
			}
			if o.maxBattles > 0 && o.finishedAll() {
				log.Info().Int("battles", o.played).Msg("Battle quota reached")
				return nil
			}
		}
	}
}

func (o *Orchestrator) finishedAll() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.played >= o.maxBattles && len(o.battles) == 0
}

// handle dispatches one protocol line.
func (o *Orchestrator) handle(ctx context.Context, msg ServerMessage) error {
	parts := strings.Split(msg.Line, "|")
	if len(parts) < 2 {
		return nil
	}

	switch parts[1] {
	case "challstr":
		// |challstr|4|abcdef...
		challstr := strings.Join(parts[2:], "|")
		if err := o.client.Login(challstr); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if err := o.client.UseTeam(showdown.PackTeam(mustDefaultTeam())); err != nil {
			return err
		}
		return o.client.Search(o.format)

	case "updatechallenges":
		return o.acceptChallenges(strings.Join(parts[2:], "|"))

	case "init":
		if len(parts) >= 3 && parts[2] == "battle" {
			o.startBattle(msg.Room)
		}
		return nil

	case "request":
		payload := strings.SplitN(msg.Line, "|request|", 2)
		if len(payload) == 2 && payload[1] != "" {
			return o.onRequest(msg.Room, []byte(payload[1]))
		}
		return nil

	case "error":
		log.Warn().Str("room", msg.Room).Str("line", msg.Line).Msg("Server error")
		return nil

	case "win", "tie":
		return o.onBattleEnd(ctx, msg.Room, parts)

	default:
		o.mu.Lock()
		rb := o.battles[msg.Room]
		o.mu.Unlock()
		if rb != nil {
			showdown.ProcessLine(rb.battle, msg.Line)
		}
		return nil
	}
}

// acceptChallenges accepts every pending challenge issued in our format and
// leaves the rest for the owner to handle.
func (o *Orchestrator) acceptChallenges(payload string) error {
	var update struct {
		ChallengesFrom map[string]string `json:"challengesFrom"`
	}
	if err := json.Unmarshal([]byte(payload), &update); err != nil {
		log.Warn().Err(err).Msg("Bad challenge update")
		return nil
	}
	for user, format := range update.ChallengesFrom {
		if format != o.format {
			log.Debug().Str("from", user).Str("format", format).Msg("Ignoring challenge")
			continue
		}
		log.Info().Str("from", user).Str("format", format).Msg("Accepting challenge")
		if err := o.client.AcceptChallenge(user); err != nil {
			return err
		}
	}
	return nil
}

// startBattle registers a fresh battle view for a room.
func (o *Orchestrator) startBattle(room string) {
	self := showdown.NewSide(o.client.Name(), mustDefaultTeam())
	opp := showdown.NewSide("", nil)
	b := showdown.NewBattle(room, self, opp)
	b.Format = o.format

	o.mu.Lock()
	o.battles[room] = &roomBattle{battle: b}
	o.mu.Unlock()
	log.Info().Str("room", room).Msg("Battle started")
}

// onRequest answers a decision request with the agent's choice.
func (o *Orchestrator) onRequest(room string, payload []byte) error {
	o.mu.Lock()
	rb := o.battles[room]
	o.mu.Unlock()
	if rb == nil {
		return nil
	}

	b := rb.battle
	needsReply, err := showdown.ApplyRequest(b, payload)
	if err != nil {
		log.Warn().Err(err).Str("room", room).Msg("Bad request payload")
		return nil
	}
	if !needsReply {
		return nil
	}

	// Infer opponent side id once ours is known.
	if b.Opponent.ID == "" && b.Self.ID != "" {
		if b.Self.ID == "p1" {
			b.Opponent.ID = "p2"
		} else {
			b.Opponent.ID = "p1"
		}
	}

	act := ChooseWithFallback(o.agent, b)
	if act.IsZero() {
		log.Warn().Str("room", room).Msg("No legal action found")
		return nil
	}
	log.Debug().Str("room", room).Int("turn", b.Turn).Str("action", act.String()).Msg("Choosing")
	return o.client.Choose(room, act.Command(), b.RequestID)
}

// onBattleEnd records the result, forgets the room, and re-queues.
func (o *Orchestrator) onBattleEnd(ctx context.Context, room string, parts []string) error {
	o.mu.Lock()
	rb := o.battles[room]
	if rb != nil {
		delete(o.battles, room)
		o.played++
	}
	played := o.played
	o.mu.Unlock()
	if rb == nil {
		return nil
	}

	b := rb.battle
	showdown.ProcessLine(b, strings.Join(parts, "|"))
	if h, ok := o.agent.(*HeuristicAgent); ok {
		h.Forget(room)
	}

	won := b.Winner == o.client.Name()
	log.Info().Str("room", room).Str("winner", b.Winner).Bool("won", won).Int("turn", b.Turn).Msg("Battle finished")

	if o.ladderRepo != nil {
		rec := &model.LadderBattle{
			Tag:      room,
			Format:   o.format,
			Agent:    o.agent.Name(),
			Opponent: b.Opponent.Name,
			Turns:    b.Turn,
			Rating:   rb.rating,
		}
		if won {
			rec.Winner = o.agent.Name()
		} else if b.Winner != "" {
			rec.Winner = b.Opponent.Name
		}
		if _, err := o.ladderRepo.RecordBattle(ctx, rec); err != nil {
			log.Warn().Err(err).Str("room", room).Msg("Failed to record battle")
		}
	}

	if err := o.client.LeaveRoom(room); err != nil {
		log.Debug().Err(err).Str("room", room).Msg("Leave failed")
	}

	if o.maxBattles == 0 || played < o.maxBattles {
		return o.client.Search(o.format)
	}
	return nil
}

// mustDefaultTeam panics only on a malformed bundled team, which is a
// build-time mistake rather than a runtime condition.
func mustDefaultTeam() []*showdown.Pokemon {
	team, err := DefaultTeam()
	if err != nil {
		panic(fmt.Sprintf("bundled team does not parse: %v", err))
	}
	return team
}
