package game

import (
	"fmt"
	"math/rand"
)

// DefaultTargetScore is the cumulative match point total that ends a match.
const DefaultTargetScore = 150

// MatchConfig configures a new match. Zero values fall back to sensible
// defaults; Rand is required unless a DeckFunc is supplied.
type MatchConfig struct {
	FirstDealer Seat
	TargetScore int

	// Rand seeds the per-deal shuffle. The shuffle is the engine's only
	// nondeterminism, so injecting the source makes matches reproducible.
	Rand *rand.Rand

	// DeckFunc overrides the deck for each deal. Used by tests and agents
	// that need scripted hands.
	DeckFunc func() Deck
}

// Match is the authoritative state machine for one match: it owns the single
// live deal, the cumulative scores, and the dealer rotation. It is not safe
// for concurrent use; callers serialize access per match.
type Match struct {
	targetScore int
	scores      [2]int
	dealer      Seat
	dealNumber  int

	deal    *Deal
	results []DealResult

	complete  bool
	hasWinner bool
	winner    Team

	deckFunc func() Deck
}

// NewMatch creates a match at zero points with the configured first dealer.
func NewMatch(cfg MatchConfig) *Match {
	target := cfg.TargetScore
	if target <= 0 {
		target = DefaultTargetScore
	}

	deckFunc := cfg.DeckFunc
	if deckFunc == nil {
		rng := cfg.Rand
		if rng == nil {
			panic("game: MatchConfig needs Rand or DeckFunc")
		}
		deckFunc = func() Deck { return NewShuffledDeck(rng) }
	}

	return &Match{
		targetScore: target,
		dealer:      cfg.FirstDealer,
		deckFunc:    deckFunc,
	}
}

// TargetScore returns the score a team must reach to end the match.
func (m *Match) TargetScore() int {
	return m.targetScore
}

// Score returns the cumulative match points of the given team.
func (m *Match) Score(team Team) int {
	return m.scores[team]
}

// Dealer returns the dealer of the live deal, or of the next deal to start.
func (m *Match) Dealer() Seat {
	return m.dealer
}

// Complete reports whether the match has ended.
func (m *Match) Complete() bool {
	return m.complete
}

// Winner returns the winning team once the match is complete.
func (m *Match) Winner() (Team, bool) {
	return m.winner, m.hasWinner
}

// CurrentDeal returns the live deal, or nil between deals.
func (m *Match) CurrentDeal() *Deal {
	return m.deal
}

// DealNumber returns the 1-based number of the live or most recent deal.
func (m *Match) DealNumber() int {
	return m.dealNumber
}

// Results returns the completed deal results in order.
func (m *Match) Results() []DealResult {
	out := make([]DealResult, len(m.results))
	copy(out, m.results)
	return out
}

// StartDeal shuffles a fresh deck and opens a new deal for the current
// dealer, awaiting the cut.
func (m *Match) StartDeal() error {
	if m.complete {
		return ErrMatchAlreadyComplete
	}
	if m.deal != nil {
		return ErrDealInProgress
	}

	m.dealNumber++
	m.deal = NewDeal(m.dealer, m.deckFunc())
	return nil
}

// ApplyCut forwards the cut decision to the live deal.
func (m *Match) ApplyCut(position int, fromTop bool) error {
	if err := m.requireDeal(); err != nil {
		return err
	}
	return m.deal.ApplyCut(position, fromTop)
}

// ApplyNegotiationAction forwards one bidding action to the live deal and
// returns the valid actions for the next actor. A negotiation that ends with
// no bid completes the deal immediately.
func (m *Match) ApplyNegotiationAction(actor Seat, action NegotiationAction) ([]NegotiationAction, error) {
	if err := m.requireDeal(); err != nil {
		return nil, err
	}

	next, err := m.deal.ApplyNegotiationAction(actor, action)
	if err != nil {
		return nil, err
	}
	m.settleIfComplete()
	return next, nil
}

// ApplyPlay forwards one card play to the live deal. Completing the 8th
// trick scores the deal, applies match points, rotates the dealer, and may
// end the match.
func (m *Match) ApplyPlay(actor Seat, card Card) (TrickOutcome, error) {
	if err := m.requireDeal(); err != nil {
		return TrickOutcome{}, err
	}

	outcome, err := m.deal.ApplyPlay(actor, card)
	if err != nil {
		return TrickOutcome{}, err
	}
	m.settleIfComplete()
	return outcome, nil
}

func (m *Match) requireDeal() error {
	if m.complete {
		return ErrMatchAlreadyComplete
	}
	if m.deal == nil {
		return fmt.Errorf("%w: no deal in progress", ErrWrongPhase)
	}
	return nil
}

// settleIfComplete folds a finished deal into the match: the result is
// appended, match points are added, the dealer rotates clockwise (cancelled
// deals included), and completion is checked.
func (m *Match) settleIfComplete() {
	if m.deal == nil || m.deal.Phase() != PhaseComplete {
		return
	}

	result, _ := m.deal.Result()
	dealDealer := m.deal.Dealer

	m.results = append(m.results, result)
	m.scores[Team1] += result.MatchPoints[Team1]
	m.scores[Team2] += result.MatchPoints[Team2]
	m.dealer = m.dealer.Next()
	m.deal = nil

	if result.InstantWin {
		m.complete = true
		m.hasWinner = true
		m.winner = result.Sweeper
		return
	}

	team1Reached := m.scores[Team1] >= m.targetScore
	team2Reached := m.scores[Team2] >= m.targetScore
	if !team1Reached && !team2Reached {
		return
	}

	m.complete = true
	m.hasWinner = true
	switch {
	case m.scores[Team1] > m.scores[Team2]:
		m.winner = Team1
	case m.scores[Team2] > m.scores[Team1]:
		m.winner = Team2
	default:
		// Simultaneous crossing with equal totals goes to the team that
		// was not dealing that deal.
		m.winner = dealDealer.Team().Opponent()
	}
}
