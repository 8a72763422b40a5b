package tuning

import "github.com/efreeman/mons-engine/internal/config"

// Session bundles the pool, budget modes, and promotion gate a
// harness run needs, all derived from one loaded Config so every CLI
// or test that runs a promotion reads the same SMART_* knobs rather
// than hardcoding FastMode/NormalMode/DefaultPromotionGate directly.
type Session struct {
	Pool       []AutomoveModel
	FastMode   BudgetMode
	NormalMode BudgetMode
	Gate       PromotionGateConfig
	PoolGames  int
	PoolSeed   int64
}

// NewSessionFromConfig builds a Session from cfg: the pool is every
// Pool() entry whose name is listed in cfg.PoolOpponents, or the full
// ten-variant pool when PoolOpponents is empty (the default).
func NewSessionFromConfig(cfg *config.Config) Session {
	fullPool := Pool()
	pool := fullPool
	if len(cfg.PoolOpponents) > 0 {
		pool = make([]AutomoveModel, 0, len(cfg.PoolOpponents))
		for _, name := range cfg.PoolOpponents {
			if m, ok := ModelByName(name); ok {
				pool = append(pool, m)
			}
		}
	}

	return Session{
		Pool:       pool,
		FastMode:   BudgetMode{Name: "fast", Depth: cfg.FastDepth, MaxNodes: cfg.FastMaxNodes},
		NormalMode: BudgetMode{Name: "normal", Depth: cfg.NormalDepth, MaxNodes: cfg.NormalMaxNodes},
		Gate: PromotionGateConfig{
			MinBeaten:     cfg.GateMinBeaten,
			MinWinRate:    cfg.GateMinWinRate,
			MinConfidence: cfg.GateMinConfidence,
		},
		PoolGames: cfg.PoolGames,
		PoolSeed:  cfg.PoolSeed,
	}
}

// EvaluateCandidate runs candidate through this session's pool under
// both budget modes using the session's configured gate and game count.
func (s Session) EvaluateCandidate(candidate CandidateBuilder) CandidateEvaluation {
	return EvaluateCandidateAgainstPool(candidate, s.Pool, []BudgetMode{s.FastMode, s.NormalMode}, s.PoolGames, s.PoolSeed, s.Gate)
}
