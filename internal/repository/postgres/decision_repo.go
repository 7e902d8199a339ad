package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/pkg/errors"
)

type DecisionRepo struct {
	DB *sql.DB
}

func NewDecisionRepo(db *sql.DB) *DecisionRepo {
	return &DecisionRepo{DB: db}
}

// SaveDecision upserts on (match_id, turn_id) so a replayed turn overwrites
// the earlier answer.
func (r *DecisionRepo) SaveDecision(ctx context.Context, rec domain.DecisionRecord) error {
	boardJSON, err := json.Marshal(rec.Board)
	if err != nil {
		return errors.Wrap(err, "marshal board state")
	}

	query := `
	INSERT INTO decision (match_id, turn_id, x, y, forfeit, score, depth, beam_width, elapsed_ms, visited, created_at, board_state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (match_id, turn_id) DO UPDATE SET
		x = EXCLUDED.x,
		y = EXCLUDED.y,
		forfeit = EXCLUDED.forfeit,
		score = EXCLUDED.score,
		depth = EXCLUDED.depth,
		beam_width = EXCLUDED.beam_width,
		elapsed_ms = EXCLUDED.elapsed_ms,
		visited = EXCLUDED.visited,
		created_at = EXCLUDED.created_at,
		board_state = EXCLUDED.board_state;
	`

	_, err = r.DB.ExecContext(ctx, query,
		rec.MatchID, rec.TurnID, rec.Move.X, rec.Move.Y, rec.Forfeit, rec.Score,
		rec.Depth, rec.BeamWidth, rec.ElapsedMs, rec.Visited, rec.CreatedAt, boardJSON)
	if err != nil {
		return errors.Wrapf(err, "upsert decision %s/%d", rec.MatchID, rec.TurnID)
	}
	return nil
}

// ListDecisions returns a match's decisions in turn order.
func (r *DecisionRepo) ListDecisions(ctx context.Context, matchID string) ([]domain.DecisionRecord, error) {
	query := `
	SELECT match_id, turn_id, x, y, forfeit, score, depth, beam_width, elapsed_ms, visited, created_at, board_state
	FROM decision
	WHERE match_id = $1
	ORDER BY turn_id ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, errors.Wrapf(err, "query decisions for %s", matchID)
	}
	defer rows.Close()

	records := []domain.DecisionRecord{}
	for rows.Next() {
		var rec domain.DecisionRecord
		var boardJSON []byte
		if err := rows.Scan(
			&rec.MatchID, &rec.TurnID, &rec.Move.X, &rec.Move.Y, &rec.Forfeit, &rec.Score,
			&rec.Depth, &rec.BeamWidth, &rec.ElapsedMs, &rec.Visited, &rec.CreatedAt, &boardJSON,
		); err != nil {
			return nil, errors.Wrap(err, "scan decision")
		}
		if len(boardJSON) > 0 {
			if err := json.Unmarshal(boardJSON, &rec.Board); err != nil {
				return nil, errors.Wrapf(err, "decode board state of %s/%d", rec.MatchID, rec.TurnID)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate decisions")
	}
	return records, nil
}

// CleanupOldDecisions deletes rows older than the retention window and
// returns how many went.
func (r *DecisionRepo) CleanupOldDecisions(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res, err := r.DB.ExecContext(ctx, `DELETE FROM decision WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "delete old decisions")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "count deleted decisions")
	}
	return n, nil
}
