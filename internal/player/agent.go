// Package player defines the seat-filling Agent interface and the stock
// agents used for self-play and benchmarking.
package player

import (
	"math/rand"

	"github.com/giretra/giretra-server-go/internal/game"
)

// Agent makes the decisions for one seat. The engine validates every choice,
// so a buggy agent surfaces as an error from the runner rather than corrupt
// match state. Choices are made from the candidate sets the engine computed;
// both slices are always non-empty when the method is called.
type Agent interface {
	// ChooseCut picks the cut position and direction before distribution.
	ChooseCut() (position int, fromTop bool)

	// ChooseNegotiationAction picks one of the legal bidding actions.
	ChooseNegotiationAction(hand game.Hand, valid []game.NegotiationAction) game.NegotiationAction

	// ChooseCard picks one of the legal cards to play.
	ChooseCard(hand game.Hand, valid []game.Card) game.Card
}

// RandomAgent picks uniformly among legal options. It is the benchmarking
// baseline and, because it explores the full action space, the agent used to
// soak-test the engine.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates a random agent over the given source.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) ChooseCut() (int, bool) {
	span := game.MaxCutPosition - game.MinCutPosition + 1
	return game.MinCutPosition + a.rng.Intn(span), a.rng.Intn(2) == 0
}

func (a *RandomAgent) ChooseNegotiationAction(_ game.Hand, valid []game.NegotiationAction) game.NegotiationAction {
	return valid[a.rng.Intn(len(valid))]
}

func (a *RandomAgent) ChooseCard(_ game.Hand, valid []game.Card) game.Card {
	return valid[a.rng.Intn(len(valid))]
}

// PassingAgent always passes in negotiation and otherwise plays the first
// legal card. Useful for exercising no-bid deals deterministically.
type PassingAgent struct{}

func (PassingAgent) ChooseCut() (int, bool) {
	return game.MinCutPosition, true
}

func (PassingAgent) ChooseNegotiationAction(_ game.Hand, valid []game.NegotiationAction) game.NegotiationAction {
	for _, action := range valid {
		if action.Type == game.ActionAccept {
			return action
		}
	}
	return valid[0]
}

func (PassingAgent) ChooseCard(_ game.Hand, valid []game.Card) game.Card {
	return valid[0]
}
