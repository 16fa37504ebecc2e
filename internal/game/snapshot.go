package game

// Read-only snapshot types handed to observers after state transitions.
// Snapshots copy every slice so holders can never mutate live state.

// TrickSnapshot captures one trick, in progress or resolved.
type TrickSnapshot struct {
	Leader Seat
	Number int
	Plays  []PlayedCard
}

// NegotiationSnapshot captures the bidding phase.
type NegotiationSnapshot struct {
	CurrentActor Seat
	HasBid       bool
	Bid          Mode
	Actions      []NegotiationAction
	Complete     bool
	NoBid        bool
}

// DealSnapshot captures the live deal as visible to all seats. Hands are
// private and exposed separately per seat.
type DealSnapshot struct {
	Dealer Seat
	Phase  DealPhase

	Negotiation *NegotiationSnapshot

	HasContract bool
	Mode        Mode
	Multiplier  Multiplier
	Announcer   Team

	CurrentTrick    *TrickSnapshot
	CompletedTricks []TrickSnapshot
	CardPoints      [2]int
	TricksWon       [2]int
}

// MatchSnapshot captures the whole match.
type MatchSnapshot struct {
	TargetScore int
	Scores      [2]int
	Dealer      Seat
	DealNumber  int
	Complete    bool
	HasWinner   bool
	Winner      Team
	Results     []DealResult
	Deal        *DealSnapshot
}

func snapshotTrick(t *Trick) *TrickSnapshot {
	if t == nil {
		return nil
	}
	c := t.Clone()
	return &TrickSnapshot{Leader: c.Leader, Number: c.Number, Plays: c.Plays}
}

// Snapshot returns an immutable copy of the deal's shared state.
func (d *Deal) Snapshot() *DealSnapshot {
	snap := &DealSnapshot{
		Dealer: d.Dealer,
		Phase:  d.phase,
	}

	if d.Negotiation != nil {
		bid, hasBid := d.Negotiation.CurrentBid()
		snap.Negotiation = &NegotiationSnapshot{
			CurrentActor: d.Negotiation.CurrentActor(),
			HasBid:       hasBid,
			Bid:          bid,
			Actions:      d.Negotiation.Actions(),
			Complete:     d.Negotiation.Complete(),
			NoBid:        d.Negotiation.NoBid(),
		}
	}

	if mode, multiplier, announcer, ok := d.Contract(); ok {
		snap.HasContract = true
		snap.Mode = mode
		snap.Multiplier = multiplier
		snap.Announcer = announcer
	}

	if d.Play != nil {
		snap.CurrentTrick = snapshotTrick(d.Play.CurrentTrick())
		for _, t := range d.Play.CompletedTricks() {
			trick := t
			snap.CompletedTricks = append(snap.CompletedTricks, *snapshotTrick(&trick))
		}
		snap.CardPoints = [2]int{d.Play.CardPoints(Team1), d.Play.CardPoints(Team2)}
		snap.TricksWon = [2]int{d.Play.TricksWon(Team1), d.Play.TricksWon(Team2)}
	}

	return snap
}

// Snapshot returns an immutable copy of the match state, including the live
// deal if one is in progress.
func (m *Match) Snapshot() MatchSnapshot {
	snap := MatchSnapshot{
		TargetScore: m.targetScore,
		Scores:      m.scores,
		Dealer:      m.dealer,
		DealNumber:  m.dealNumber,
		Complete:    m.complete,
		HasWinner:   m.hasWinner,
		Winner:      m.winner,
		Results:     m.Results(),
	}
	if m.deal != nil {
		snap.Deal = m.deal.Snapshot()
	}
	return snap
}
