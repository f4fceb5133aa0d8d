package bot

// Weights holds every scoring constant the heuristic agent uses. Each
// revision in RevisionWeights is one tuning iteration; DefaultWeights is
// the current one.
type Weights struct {
	// Fixed scores for status moves.
	HazardScore   float64 // Stealth Rock / Toxic Spikes when not already up
	BurnScore     float64 // Will-O-Wisp against a statusable non-Fire target
	SetupScore    float64 // Swords Dance / Calm Mind
	RecoveryScore float64 // Recover / Morning Sun

	// Damaging-move multipliers.
	STABBonus           float64
	PriorityBonus       float64 // priority moves against low-HP targets
	PriorityHPThreshold float64
	KnockOffItemBonus   float64

	// Decision thresholds from the choose-move priority chain.
	RecoverHPThreshold float64 // heal below this HP fraction...
	RecoverDangerMax   float64 // ...when danger is below this

	TeraDangerThreshold float64 // defensive tera at or above this danger
	TeraScoreThreshold  float64 // offensive tera above this move score
	TeraTargetHPMax     float64 // ...against targets below this HP fraction

	SetupDangerMax float64 // set up only when danger is below this

	SwitchDangerThreshold float64 // consider switching at or above this danger
	SwitchScoreThreshold  float64 // ...when the best move scores below this
	SwitchResistMin       float64 // required defensive score of the switch-in
	DesperateScoreMax     float64 // switch on weak best moves...
	DesperateSwitchMin    float64 // ...when a switch scores above this

	// Switch scoring.
	SwitchDefenseWeight float64

	// Damping applied when repeating last turn's move without progress.
	RepeatPenalty float64
}

// DefaultWeights returns the current tuning (v6).
func DefaultWeights() Weights { return RevisionWeights["v6"] }

// RevisionWeights preserves the successive tuning iterations of the
// heuristic agent. Later revisions only changed constants, never the shape
// of the decision chain.
var RevisionWeights = map[string]Weights{
	// v1: raw damage focus; no hazard or setup valuation to speak of.
	"v1": {
		HazardScore: 40, BurnScore: 30, SetupScore: 20, RecoveryScore: 60,
		STABBonus: 1.5, PriorityBonus: 1.0, PriorityHPThreshold: 0.3, KnockOffItemBonus: 1.0,
		RecoverHPThreshold: 0.4, RecoverDangerMax: 1,
		TeraDangerThreshold: 4, TeraScoreThreshold: 400, TeraTargetHPMax: 0.5,
		SetupDangerMax: 0.5,
		SwitchDangerThreshold: 4, SwitchScoreThreshold: 80, SwitchResistMin: 2,
		DesperateScoreMax: 20, DesperateSwitchMin: 3,
		SwitchDefenseWeight: 1.0, RepeatPenalty: 1.0,
	},
	// v2: hazards and recovery worth playing for.
	"v2": {
		HazardScore: 70, BurnScore: 60, SetupScore: 50, RecoveryScore: 80,
		STABBonus: 1.5, PriorityBonus: 1.2, PriorityHPThreshold: 0.3, KnockOffItemBonus: 1.1,
		RecoverHPThreshold: 0.5, RecoverDangerMax: 2,
		TeraDangerThreshold: 4, TeraScoreThreshold: 350, TeraTargetHPMax: 0.5,
		SetupDangerMax: 1,
		SwitchDangerThreshold: 3, SwitchScoreThreshold: 100, SwitchResistMin: 2,
		DesperateScoreMax: 30, DesperateSwitchMin: 3,
		SwitchDefenseWeight: 1.0, RepeatPenalty: 1.0,
	},
	// v3: earlier healing, looser switch trigger.
	"v3": {
		HazardScore: 85, BurnScore: 75, SetupScore: 70, RecoveryScore: 90,
		STABBonus: 1.5, PriorityBonus: 1.25, PriorityHPThreshold: 0.3, KnockOffItemBonus: 1.15,
		RecoverHPThreshold: 0.55, RecoverDangerMax: 2,
		TeraDangerThreshold: 4, TeraScoreThreshold: 325, TeraTargetHPMax: 0.55,
		SetupDangerMax: 1,
		SwitchDangerThreshold: 2.5, SwitchScoreThreshold: 120, SwitchResistMin: 2,
		DesperateScoreMax: 40, DesperateSwitchMin: 2.75,
		SwitchDefenseWeight: 1.25, RepeatPenalty: 1.0,
	},
	// v4: hazard/burn values close to final; switch-in defense weighted up.
	"v4": {
		HazardScore: 95, BurnScore: 85, SetupScore: 80, RecoveryScore: 95,
		STABBonus: 1.5, PriorityBonus: 1.3, PriorityHPThreshold: 0.3, KnockOffItemBonus: 1.2,
		RecoverHPThreshold: 0.6, RecoverDangerMax: 2,
		TeraDangerThreshold: 4, TeraScoreThreshold: 300, TeraTargetHPMax: 0.6,
		SetupDangerMax: 1,
		SwitchDangerThreshold: 2, SwitchScoreThreshold: 130, SwitchResistMin: 2,
		DesperateScoreMax: 45, DesperateSwitchMin: 2.5,
		SwitchDefenseWeight: 1.5, RepeatPenalty: 1.0,
	},
	// v5: v4 with the higher recovery threshold and switch score bar.
	"v5": {
		HazardScore: 95, BurnScore: 90, SetupScore: 85, RecoveryScore: 100,
		STABBonus: 1.5, PriorityBonus: 1.3, PriorityHPThreshold: 0.3, KnockOffItemBonus: 1.2,
		RecoverHPThreshold: 0.65, RecoverDangerMax: 2,
		TeraDangerThreshold: 4, TeraScoreThreshold: 300, TeraTargetHPMax: 0.6,
		SetupDangerMax: 1,
		SwitchDangerThreshold: 2, SwitchScoreThreshold: 150, SwitchResistMin: 2,
		DesperateScoreMax: 50, DesperateSwitchMin: 2.5,
		SwitchDefenseWeight: 1.5, RepeatPenalty: 1.0,
	},
	// v6: v5 plus repeat damping from the per-battle scratch memo.
	"v6": {
		HazardScore: 95, BurnScore: 90, SetupScore: 85, RecoveryScore: 100,
		STABBonus: 1.5, PriorityBonus: 1.3, PriorityHPThreshold: 0.3, KnockOffItemBonus: 1.2,
		RecoverHPThreshold: 0.65, RecoverDangerMax: 2,
		TeraDangerThreshold: 4, TeraScoreThreshold: 300, TeraTargetHPMax: 0.6,
		SetupDangerMax: 1,
		SwitchDangerThreshold: 2, SwitchScoreThreshold: 150, SwitchResistMin: 2,
		DesperateScoreMax: 50, DesperateSwitchMin: 2.5,
		SwitchDefenseWeight: 1.5, RepeatPenalty: 0.85,
	},
}
