// Package judge speaks the process-per-turn protocol: the judge starts the
// bot, writes the match history to stdin and reads one answer from stdout.
package judge

import (
	"context"
	"encoding/json"
	"io"

	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Decider interface {
	Decide(ctx context.Context, matchID string, in domain.TurnInput) (domain.TurnOutput, error)
}

// Run answers a single turn. An input the engine cannot replay is answered
// with a forfeit so the judge always gets a well-formed line.
func Run(ctx context.Context, r io.Reader, w io.Writer, d Decider) error {
	var in domain.TurnInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		log.Error().Err(err).Str("component", "judge").Msg("turn-decode-failed")
		return writeOutput(w, domain.TurnOutput{Response: domain.NoMove})
	}

	out, err := d.Decide(ctx, "", in)
	if err != nil {
		log.Error().Err(err).Str("component", "judge").Int("turn", in.TurnID()).Msg("turn-rejected")
		out = domain.TurnOutput{Response: domain.NoMove}
	}
	return writeOutput(w, out)
}

func writeOutput(w io.Writer, out domain.TurnOutput) error {
	if err := json.NewEncoder(w).Encode(out); err != nil {
		return errors.Wrap(err, "write turn output")
	}
	return nil
}
