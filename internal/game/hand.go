package game

// tricksPerDeal is the number of tricks in one deal.
const tricksPerDeal = 8

// lastTrickBonus is awarded once per deal to the team taking the 8th trick.
const lastTrickBonus = 10

// HandState tracks the trick play phase of a deal: the 8-trick sequence, the
// running card point totals, and the trick counts per team.
type HandState struct {
	Mode Mode

	completedTricks []Trick
	current         *Trick

	cardPoints [2]int
	tricksWon  [2]int
}

// NewHandState starts the play phase with the given first leader.
func NewHandState(mode Mode, firstLeader Seat) *HandState {
	return &HandState{
		Mode:    mode,
		current: NewTrick(firstLeader, 1),
	}
}

// Complete reports whether all 8 tricks have been played.
func (h *HandState) Complete() bool {
	return len(h.completedTricks) == tricksPerDeal
}

// CurrentTrick returns the trick in progress, or nil once the hand is done.
func (h *HandState) CurrentTrick() *Trick {
	return h.current
}

// CompletedTricks returns copies of the resolved tricks in play order.
func (h *HandState) CompletedTricks() []Trick {
	out := make([]Trick, len(h.completedTricks))
	for i, t := range h.completedTricks {
		out[i] = t.Clone()
	}
	return out
}

// CardPoints returns the accumulated card points for the given team.
func (h *HandState) CardPoints(team Team) int {
	return h.cardPoints[team]
}

// TricksWon returns the number of tricks the given team has taken.
func (h *HandState) TricksWon(team Team) int {
	return h.tricksWon[team]
}

// SweepingTeam returns the team that took all 8 tricks, if any. Only
// meaningful once the hand is complete.
func (h *HandState) SweepingTeam() (Team, bool) {
	if !h.Complete() {
		return 0, false
	}
	if h.tricksWon[Team1] == tricksPerDeal {
		return Team1, true
	}
	if h.tricksWon[Team2] == tricksPerDeal {
		return Team2, true
	}
	return 0, false
}

// playCard adds the current player's card to the trick in progress. When the
// trick completes it is resolved: points go to the winner's team, the winner
// leads the next trick, and the 8th trick carries the +10 bonus. Returns the
// winning seat and true when a trick was just completed.
func (h *HandState) playCard(card Card) (Seat, bool) {
	if h.current == nil {
		panic("game: play on a complete hand")
	}

	h.current.play(card)
	if !h.current.Complete() {
		return 0, false
	}

	trick := h.current
	winner := trick.Winner(h.Mode)
	points := trick.Points(h.Mode)
	if trick.Number == tricksPerDeal {
		points += lastTrickBonus
	}

	team := winner.Team()
	h.cardPoints[team] += points
	h.tricksWon[team]++
	h.completedTricks = append(h.completedTricks, *trick)

	if len(h.completedTricks) < tricksPerDeal {
		h.current = NewTrick(winner, len(h.completedTricks)+1)
	} else {
		h.current = nil
	}
	return winner, true
}
