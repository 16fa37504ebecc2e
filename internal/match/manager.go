// Package match hosts concurrently running matches behind a registry. Each
// match is an independent game.Match serialized behind its own mutex, so
// distinct matches run fully in parallel while actions within one match are
// processed strictly one at a time.
package match

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/giretra/giretra-server-go/internal/game"
)

var (
	// ErrMatchNotFound is returned for an unknown match ID.
	ErrMatchNotFound = errors.New("match not found")

	// ErrSessionNotFound is returned for an unknown or detached session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSeatTaken is returned when attaching to an occupied seat.
	ErrSeatTaken = errors.New("seat already has a session")

	// ErrWrongSeat is returned when a session submits an action reserved
	// for another seat.
	ErrWrongSeat = errors.New("action belongs to another seat")
)

// Observer receives read-only notifications after accepted state
// transitions. Callbacks run synchronously under the match lock, so their
// order reflects the exact sequence of accepted actions.
type Observer interface {
	DealStarted(matchID string, snap game.MatchSnapshot)
	CardPlayed(matchID string, seat game.Seat, card game.Card, snap game.MatchSnapshot)
	TrickCompleted(matchID string, trick game.TrickSnapshot, winner game.Seat, snap game.MatchSnapshot)
	DealEnded(matchID string, result game.DealResult, snap game.MatchSnapshot)
	MatchEnded(matchID string, snap game.MatchSnapshot)
}

type liveMatch struct {
	id string

	mu        sync.Mutex
	match     *game.Match
	observers []Observer

	// sessions is guarded by Manager.mu, not lm.mu, so the registry can
	// tear down a match's sessions without taking per-match locks.
	sessions map[game.Seat]string
}

type sessionRef struct {
	matchID string
	seat    game.Seat
}

// Manager is the registry of live matches and seat sessions. Manager.mu
// guards the registry maps (matches, sessions, and every liveMatch.sessions);
// each liveMatch.mu guards that match's state and observers. Manager.mu is
// never acquired while holding a liveMatch.mu, so the two levels cannot
// deadlock.
type Manager struct {
	mu       sync.RWMutex
	matches  map[string]*liveMatch
	sessions map[string]sessionRef
	logger   *zap.Logger
}

// NewManager creates an empty match registry.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		matches:  make(map[string]*liveMatch),
		sessions: make(map[string]sessionRef),
		logger:   logger,
	}
}

// CreateMatch registers a new match and returns its ID.
func (m *Manager) CreateMatch(cfg game.MatchConfig) string {
	id := uuid.New().String()
	lm := &liveMatch{
		id:       id,
		match:    game.NewMatch(cfg),
		sessions: make(map[game.Seat]string),
	}

	m.mu.Lock()
	m.matches[id] = lm
	m.mu.Unlock()

	m.logger.Info("match created",
		zap.String("match_id", id),
		zap.Stringer("first_dealer", cfg.FirstDealer),
	)
	return id
}

// Abandon removes a match and its sessions. The match state is left frozen;
// abandoning mid-deal is not an error.
func (m *Manager) Abandon(matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lm, ok := m.matches[matchID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	for _, sessionID := range lm.sessions {
		delete(m.sessions, sessionID)
	}
	delete(m.matches, matchID)

	m.logger.Info("match abandoned", zap.String("match_id", matchID))
	return nil
}

func (m *Manager) get(matchID string) (*liveMatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lm, ok := m.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	return lm, nil
}

// AttachSession binds a new session to a seat and returns the session ID.
func (m *Manager) AttachSession(matchID string, seat game.Seat) (string, error) {
	m.mu.Lock()
	lm, ok := m.matches[matchID]
	if !ok {
		m.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	if _, taken := lm.sessions[seat]; taken {
		m.mu.Unlock()
		return "", fmt.Errorf("%w: %s in match %s", ErrSeatTaken, seat, matchID)
	}

	sessionID := uuid.New().String()
	lm.sessions[seat] = sessionID
	m.sessions[sessionID] = sessionRef{matchID: matchID, seat: seat}
	m.mu.Unlock()

	m.logger.Info("session attached",
		zap.String("match_id", matchID),
		zap.String("session_id", sessionID),
		zap.Stringer("seat", seat),
	)
	return sessionID, nil
}

// DetachSession releases a seat session.
func (m *Manager) DetachSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ref, ok := m.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	delete(m.sessions, sessionID)
	if lm := m.matches[ref.matchID]; lm != nil {
		delete(lm.sessions, ref.seat)
	}
	return nil
}

// resolveSession maps a session ID to its match and seat.
func (m *Manager) resolveSession(sessionID string) (*liveMatch, game.Seat, error) {
	m.mu.RLock()
	ref, ok := m.sessions[sessionID]
	if !ok {
		m.mu.RUnlock()
		return nil, 0, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	lm := m.matches[ref.matchID]
	m.mu.RUnlock()

	if lm == nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrMatchNotFound, ref.matchID)
	}
	return lm, ref.seat, nil
}

// Subscribe registers an observer for one match's notifications.
func (m *Manager) Subscribe(matchID string, obs Observer) error {
	lm, err := m.get(matchID)
	if err != nil {
		return err
	}

	lm.mu.Lock()
	lm.observers = append(lm.observers, obs)
	lm.mu.Unlock()
	return nil
}

// StartDeal starts the next deal of the match.
func (m *Manager) StartDeal(matchID string) error {
	lm, err := m.get(matchID)
	if err != nil {
		return err
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()

	if err := lm.match.StartDeal(); err != nil {
		return err
	}

	m.logger.Info("deal started",
		zap.String("match_id", matchID),
		zap.Int("deal", lm.match.DealNumber()),
		zap.Stringer("dealer", lm.match.Dealer()),
	)

	snap := lm.match.Snapshot()
	for _, obs := range lm.observers {
		obs.DealStarted(lm.id, snap)
	}
	return nil
}

// ApplyCut submits the cut decision. Only the session seated right of the
// dealer may cut.
func (m *Manager) ApplyCut(sessionID string, position int, fromTop bool) error {
	lm, seat, err := m.resolveSession(sessionID)
	if err != nil {
		return err
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()

	deal := lm.match.CurrentDeal()
	if deal != nil && deal.Cutter() != seat {
		return fmt.Errorf("%w: %s is not the cutter", ErrWrongSeat, seat)
	}
	return lm.match.ApplyCut(position, fromTop)
}

// ApplyNegotiationAction submits one bidding action for the session's seat
// and returns the valid actions for the next actor.
func (m *Manager) ApplyNegotiationAction(sessionID string, action game.NegotiationAction) ([]game.NegotiationAction, error) {
	lm, seat, err := m.resolveSession(sessionID)
	if err != nil {
		return nil, err
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()

	next, err := lm.match.ApplyNegotiationAction(seat, action)
	if err != nil {
		return nil, err
	}
	m.notifyAfterAction(lm, nil)
	return next, nil
}

// ApplyPlay submits one card for the session's seat.
func (m *Manager) ApplyPlay(sessionID string, card game.Card) (game.TrickOutcome, error) {
	lm, seat, err := m.resolveSession(sessionID)
	if err != nil {
		return game.TrickOutcome{}, err
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()

	outcome, err := lm.match.ApplyPlay(seat, card)
	if err != nil {
		return game.TrickOutcome{}, err
	}

	snap := lm.match.Snapshot()
	for _, obs := range lm.observers {
		obs.CardPlayed(lm.id, seat, card, snap)
	}
	if outcome.TrickComplete && snap.Deal != nil {
		tricks := snap.Deal.CompletedTricks
		if len(tricks) > 0 {
			trick := tricks[len(tricks)-1]
			for _, obs := range lm.observers {
				obs.TrickCompleted(lm.id, trick, outcome.Winner, snap)
			}
		}
	}
	m.notifyAfterAction(lm, &outcome)
	return outcome, nil
}

// notifyAfterAction fans out deal-ended and match-ended notifications once a
// deal has been folded into the match. Called with the match lock held.
func (m *Manager) notifyAfterAction(lm *liveMatch, outcome *game.TrickOutcome) {
	results := lm.match.Results()
	snap := lm.match.Snapshot()

	dealJustEnded := lm.match.CurrentDeal() == nil && len(results) > 0 &&
		(outcome == nil || outcome.DealComplete)
	if !dealJustEnded {
		return
	}

	result := results[len(results)-1]
	m.logger.Info("deal ended",
		zap.String("match_id", lm.id),
		zap.Bool("no_bid", result.NoBid),
		zap.Int("team1_match_points", result.MatchPoints[game.Team1]),
		zap.Int("team2_match_points", result.MatchPoints[game.Team2]),
	)
	for _, obs := range lm.observers {
		obs.DealEnded(lm.id, result, snap)
	}

	if snap.Complete {
		m.logger.Info("match ended",
			zap.String("match_id", lm.id),
			zap.Stringer("winner", snap.Winner),
			zap.Int("team1_score", snap.Scores[game.Team1]),
			zap.Int("team2_score", snap.Scores[game.Team2]),
		)
		for _, obs := range lm.observers {
			obs.MatchEnded(lm.id, snap)
		}
	}
}

// Snapshot returns the current read-only state of a match.
func (m *Manager) Snapshot(matchID string) (game.MatchSnapshot, error) {
	lm, err := m.get(matchID)
	if err != nil {
		return game.MatchSnapshot{}, err
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()
	return lm.match.Snapshot(), nil
}

// HandOf returns the session's private hand for the live deal.
func (m *Manager) HandOf(sessionID string) (game.Hand, error) {
	lm, seat, err := m.resolveSession(sessionID)
	if err != nil {
		return nil, err
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()

	deal := lm.match.CurrentDeal()
	if deal == nil {
		return nil, fmt.Errorf("%w: no deal in progress", game.ErrWrongPhase)
	}
	return deal.HandOf(seat), nil
}
