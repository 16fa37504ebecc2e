package game

import "fmt"

// Mode represents the six announceable game modes, ordered from lowest to
// highest bid strength:
// ColourClubs < ColourDiamonds < ColourHearts < ColourSpades < NoTrumps < AllTrumps.
type Mode int

const (
	ModeColourClubs Mode = iota
	ModeColourDiamonds
	ModeColourHearts
	ModeColourSpades
	ModeNoTrumps
	ModeAllTrumps
)

// Modes lists all modes in bid hierarchy order.
var Modes = [6]Mode{
	ModeColourClubs, ModeColourDiamonds, ModeColourHearts,
	ModeColourSpades, ModeNoTrumps, ModeAllTrumps,
}

var modeNames = map[Mode]string{
	ModeColourClubs:    "COLOUR_CLUBS",
	ModeColourDiamonds: "COLOUR_DIAMONDS",
	ModeColourHearts:   "COLOUR_HEARTS",
	ModeColourSpades:   "COLOUR_SPADES",
	ModeNoTrumps:       "NO_TRUMPS",
	ModeAllTrumps:      "ALL_TRUMPS",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MODE_%d", int(m))
}

// Category groups the modes into the three rule families.
type Category int

const (
	CategoryColour Category = iota
	CategoryNoTrumps
	CategoryAllTrumps
)

// Category returns the rule family of this mode.
func (m Mode) Category() Category {
	switch m {
	case ModeNoTrumps:
		return CategoryNoTrumps
	case ModeAllTrumps:
		return CategoryAllTrumps
	default:
		return CategoryColour
	}
}

// IsColour reports whether this mode designates a single trump suit.
func (m Mode) IsColour() bool {
	return m.Category() == CategoryColour
}

// OutRanks reports whether this mode is strictly higher than other in the
// bidding hierarchy.
func (m Mode) OutRanks(other Mode) bool {
	return m > other
}

// TrumpSuit returns the trump suit for Colour modes. The second return is
// false for NoTrumps and AllTrumps.
func (m Mode) TrumpSuit() (Suit, bool) {
	switch m {
	case ModeColourClubs:
		return SuitClubs, true
	case ModeColourDiamonds:
		return SuitDiamonds, true
	case ModeColourHearts:
		return SuitHearts, true
	case ModeColourSpades:
		return SuitSpades, true
	default:
		return 0, false
	}
}

// ColourMode returns the Colour mode whose trump is the given suit.
func ColourMode(suit Suit) Mode {
	return Mode(suit)
}

// WinThreshold returns the minimum card points the announcing team needs for
// the contract to succeed.
func (m Mode) WinThreshold() int {
	switch m.Category() {
	case CategoryAllTrumps:
		return 129
	case CategoryNoTrumps:
		return 65
	default:
		return 82
	}
}

// TotalPoints returns the total card points available in a deal under this
// mode, including the last-trick bonus.
func (m Mode) TotalPoints() int {
	switch m.Category() {
	case CategoryAllTrumps:
		return 258 // 62*4 + 10
	case CategoryNoTrumps:
		return 130 // 30*4 + 10
	default:
		return 162 // 62 + 30*3 + 10
	}
}

// BaseMatchPoints returns the match points at stake before multipliers.
// AllTrumps is split proportionally between the teams; the other modes are
// winner-takes-all.
func (m Mode) BaseMatchPoints() int {
	switch m.Category() {
	case CategoryAllTrumps:
		return 26
	case CategoryNoTrumps:
		return 52
	default:
		return 16
	}
}

// SweepBonus returns the flat match point award for taking all 8 tricks.
// A Colour sweep wins the match outright instead of scoring points.
func (m Mode) SweepBonus() int {
	switch m.Category() {
	case CategoryAllTrumps:
		return 35
	case CategoryNoTrumps:
		return 90
	default:
		return 0
	}
}

// Multiplier represents the stake escalation decided during negotiation.
// The numeric value is the scoring factor.
type Multiplier int

const (
	MultiplierNone      Multiplier = 0 // no contract (no-bid deal)
	MultiplierNormal    Multiplier = 1
	MultiplierDoubled   Multiplier = 2
	MultiplierRedoubled Multiplier = 4
)

func (m Multiplier) String() string {
	switch m {
	case MultiplierNone:
		return "NONE"
	case MultiplierNormal:
		return "NORMAL"
	case MultiplierDoubled:
		return "DOUBLED"
	case MultiplierRedoubled:
		return "REDOUBLED"
	default:
		return fmt.Sprintf("MULTIPLIER_%d", int(m))
	}
}

// Factor returns the numeric scoring factor.
func (m Multiplier) Factor() int {
	return int(m)
}
