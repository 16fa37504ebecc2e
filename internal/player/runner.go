package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/giretra/giretra-server-go/internal/game"
)

// ErrDealLimit is returned when a match exceeds the runner's deal cap. With
// agents that never announce, every deal cancels and the match would run
// forever; the cap turns that into an error.
var ErrDealLimit = errors.New("deal limit reached before the match completed")

// DefaultMaxDeals bounds a runner-driven match. A real match rarely needs
// more than a few dozen deals.
const DefaultMaxDeals = 1000

// Runner drives a match to completion by polling the engine for the pending
// actor and delegating the decision to that seat's agent.
type Runner struct {
	match    *game.Match
	agents   [4]Agent
	maxDeals int
}

// NewRunner wires four agents to a match. Each slot of agents corresponds to
// the seat of the same index.
func NewRunner(match *game.Match, agents [4]Agent) *Runner {
	return &Runner{match: match, agents: agents, maxDeals: DefaultMaxDeals}
}

// SetMaxDeals overrides the deal cap.
func (r *Runner) SetMaxDeals(n int) {
	r.maxDeals = n
}

// Run plays the match until a team wins, the context is cancelled, or the
// deal cap is hit. Agent choices come from engine-computed candidate sets, so
// any engine rejection is a bug and is returned as an error.
func (r *Runner) Run(ctx context.Context) (game.MatchSnapshot, error) {
	for !r.match.Complete() {
		if err := ctx.Err(); err != nil {
			return r.match.Snapshot(), err
		}
		if r.match.DealNumber() >= r.maxDeals {
			return r.match.Snapshot(), fmt.Errorf("%w: %d deals", ErrDealLimit, r.maxDeals)
		}
		if err := r.playDeal(ctx); err != nil {
			return r.match.Snapshot(), err
		}
	}
	return r.match.Snapshot(), nil
}

func (r *Runner) playDeal(ctx context.Context) error {
	if err := r.match.StartDeal(); err != nil {
		return err
	}
	deal := r.match.CurrentDeal()

	cutter := deal.Cutter()
	position, fromTop := r.agents[cutter].ChooseCut()
	if err := r.match.ApplyCut(position, fromTop); err != nil {
		return fmt.Errorf("seat %s cut: %w", cutter, err)
	}

	for deal.Phase() == game.PhaseNegotiating {
		actor := deal.Negotiation.CurrentActor()
		valid := deal.Negotiation.ValidActions()
		action := r.agents[actor].ChooseNegotiationAction(deal.HandOf(actor), valid)
		if _, err := r.match.ApplyNegotiationAction(actor, action); err != nil {
			return fmt.Errorf("seat %s negotiation: %w", actor, err)
		}
	}

	// A no-bid negotiation already settled the deal.
	for r.match.CurrentDeal() != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		actor, ok := deal.CurrentActor()
		if !ok {
			return fmt.Errorf("deal %d stalled with no pending actor", r.match.DealNumber())
		}
		card := r.agents[actor].ChooseCard(deal.HandOf(actor), deal.ValidPlays())
		if _, err := r.match.ApplyPlay(actor, card); err != nil {
			return fmt.Errorf("seat %s play: %w", actor, err)
		}
	}
	return nil
}
