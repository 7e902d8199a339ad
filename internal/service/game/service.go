package game

import (
	"context"
	"sync"
	"time"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/iamasit07/anti-4-in-a-row/internal/service/bot"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ParamStore keeps the carried search depth of a match between turns, for
// transports whose clients do not echo the data blob back.
type ParamStore interface {
	GetDepth(ctx context.Context, matchID string) (int, bool, error)
	SetDepth(ctx context.Context, matchID string, depth int) error
}

type DecisionRecorder interface {
	SaveDecision(ctx context.Context, rec domain.DecisionRecord) error
}

// Service turns a match history into the engine's next move.
type Service struct {
	engine       *bot.Engine
	params       ParamStore       // Optional, can be nil
	recorder     DecisionRecorder // Optional, can be nil
	defaultDepth int
	now          func() time.Time

	// one decision at a time, so the time budget is not shared between searches
	mu sync.Mutex
}

func NewService(engine *bot.Engine, defaultDepth int, params ParamStore, recorder DecisionRecorder) *Service {
	if defaultDepth < 0 {
		defaultDepth = bot.DefaultDepth
	}
	return &Service{
		engine:       engine,
		params:       params,
		recorder:     recorder,
		defaultDepth: defaultDepth,
		now:          time.Now,
	}
}

// Decide replays the history and searches the reply for Player1. matchID
// may be empty, in which case nothing is cached or recorded.
func (s *Service) Decide(ctx context.Context, matchID string, in domain.TurnInput) (domain.TurnOutput, error) {
	board, turnID, err := domain.Replay(in)
	if err != nil {
		return domain.TurnOutput{}, errors.WithMessage(err, "replay history")
	}

	params := bot.Params{
		Depth:     s.resolveDepth(ctx, matchID, in.Data),
		BeamWidth: bot.BeamWidthForTurn(turnID),
	}

	log.Debug().Str("match", matchID).Int("turn", turnID).Str("board", board.String()).Msg("decision-started")

	s.mu.Lock()
	decision := s.engine.ChooseBestMove(board, domain.Player1, params)
	s.mu.Unlock()

	log.Info().
		Str("match", matchID).
		Int("turn", turnID).
		Int("x", decision.Move.X).
		Int("y", decision.Move.Y).
		Bool("forfeit", decision.Forfeit).
		Int("depth", decision.Depth).
		Int("beam", params.BeamWidth).
		Dur("elapsed", decision.Elapsed).
		Int("visited", decision.Visited).
		Msg("decision-made")

	s.remember(ctx, matchID, turnID, board, params, decision)
	return toOutput(decision), nil
}

func (s *Service) resolveDepth(ctx context.Context, matchID string, data *domain.CarriedData) int {
	depth := data.DepthOr(-1)
	if depth >= 0 {
		return depth
	}
	if s.params != nil && matchID != "" {
		cached, ok, err := s.params.GetDepth(ctx, matchID)
		if err != nil {
			log.Warn().Err(err).Str("match", matchID).Msg("param-cache-read-failed")
		} else if ok {
			return cached
		}
	}
	return s.defaultDepth
}

// remember writes the carried depth back and logs the decision. Neither
// failure is allowed to cost us the turn.
func (s *Service) remember(ctx context.Context, matchID string, turnID int, board *domain.Board, params bot.Params, d bot.Decision) {
	if matchID == "" {
		return
	}
	if s.params != nil {
		if err := s.params.SetDepth(ctx, matchID, d.Depth); err != nil {
			log.Warn().Err(err).Str("match", matchID).Msg("param-cache-write-failed")
		}
	}
	if s.recorder != nil {
		rec := domain.DecisionRecord{
			MatchID:   matchID,
			TurnID:    turnID,
			Move:      d.Move,
			Forfeit:   d.Forfeit,
			Score:     d.Score,
			Depth:     d.Depth,
			BeamWidth: params.BeamWidth,
			ElapsedMs: d.Elapsed.Milliseconds(),
			Visited:   d.Visited,
			CreatedAt: s.now(),
			Board:     board.Rows(),
		}
		if err := s.recorder.SaveDecision(ctx, rec); err != nil {
			log.Warn().Err(err).Str("match", matchID).Int("turn", turnID).Msg("decision-record-failed")
		}
	}
}

func toOutput(d bot.Decision) domain.TurnOutput {
	if d.Forfeit {
		return domain.TurnOutput{Response: domain.NoMove}
	}
	return domain.TurnOutput{
		Response: d.Move,
		Data:     domain.NewCarriedData(d.Depth),
		Debug: &domain.DebugInfo{
			Depth: d.Depth,
			Time:  d.Elapsed.Seconds(),
			Visit: d.Visited,
		},
	}
}
