package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitHonorsLogLevelEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	Init()
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Errorf("global level = %v, want warn", got)
	}

	t.Setenv("LOG_LEVEL", "nonsense")
	Init()
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("bad level should fall back to info, got %v", got)
	}
}

func TestForBattleTagsRoom(t *testing.T) {
	prev := log.Logger
	defer func() { log.Logger = prev }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	battleLog := ForBattle("battle-gen9ubers-42")
	battleLog.Info().Msg("turn")
	if !strings.Contains(buf.String(), `"battle":"battle-gen9ubers-42"`) {
		t.Errorf("room tag missing: %s", buf.String())
	}

	buf.Reset()
	lobbyLog := ForBattle("")
	lobbyLog.Info().Msg("lobby")
	if strings.Contains(buf.String(), `"battle"`) {
		t.Errorf("empty room should not be tagged: %s", buf.String())
	}
}
