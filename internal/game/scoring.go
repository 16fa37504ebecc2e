package game

// DealResult is the immutable outcome of one deal.
type DealResult struct {
	// NoBid marks a deal cancelled because all four players passed. Such
	// deals score zero for both teams and carry no mode or multiplier.
	NoBid bool

	Mode       Mode
	Multiplier Multiplier
	Announcer  Team

	CardPoints  [2]int
	MatchPoints [2]int

	WasSweep   bool
	Sweeper    Team
	InstantWin bool
}

// AnnouncerSucceeded reports whether the announcing team reached the mode's
// card point threshold.
func (r DealResult) AnnouncerSucceeded() bool {
	if r.NoBid {
		return false
	}
	return r.CardPoints[r.Announcer] >= r.Mode.WinThreshold()
}

// NoBidResult builds the result of a cancelled deal.
func NoBidResult() DealResult {
	return DealResult{NoBid: true, Multiplier: MultiplierNone}
}

// Score computes the result of a completed deal from the decided contract
// and both teams' accumulated card points.
//
// Conventions (kept consistent across the engine, see DESIGN.md):
//   - AllTrumps succeeds at 129 of 258 and splits the 26 match points
//     proportionally: the announcer's share is their card points divided by
//     ten, rounded half up (midpoints round toward the announcer), and the
//     defenders take the remainder.
//   - NoTrumps (52) and Colour (16) are winner-takes-all on the threshold.
//   - A failed contract forfeits the full stake to the defenders.
//   - A sweep in a non-Colour mode replaces normal scoring with the flat
//     sweep bonus; a Colour sweep wins the match outright with no points.
//   - The multiplier scales whatever is awarded for the deal.
func Score(mode Mode, multiplier Multiplier, announcer Team, cardPoints [2]int, sweeper Team, wasSweep bool) DealResult {
	result := DealResult{
		Mode:       mode,
		Multiplier: multiplier,
		Announcer:  announcer,
		CardPoints: cardPoints,
		WasSweep:   wasSweep,
		Sweeper:    sweeper,
	}

	if wasSweep {
		if mode.IsColour() {
			result.InstantWin = true
			return result
		}
		result.MatchPoints[sweeper] = mode.SweepBonus() * multiplier.Factor()
		return result
	}

	defender := announcer.Opponent()
	announcerCard := cardPoints[announcer]

	var announcerMatch, defenderMatch int
	if announcerCard < mode.WinThreshold() {
		defenderMatch = mode.BaseMatchPoints()
	} else if mode.Category() == CategoryAllTrumps {
		announcerMatch = (announcerCard + 5) / 10
		defenderMatch = mode.BaseMatchPoints() - announcerMatch
	} else {
		announcerMatch = mode.BaseMatchPoints()
	}

	result.MatchPoints[announcer] = announcerMatch * multiplier.Factor()
	result.MatchPoints[defender] = defenderMatch * multiplier.Factor()
	return result
}
