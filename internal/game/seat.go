package game

import "fmt"

// Seat represents one of the four fixed positions at the table.
// Play proceeds clockwise: Bottom -> Left -> Top -> Right -> Bottom.
type Seat int

const (
	SeatBottom Seat = iota
	SeatLeft
	SeatTop
	SeatRight
)

var seatNames = map[Seat]string{
	SeatBottom: "BOTTOM",
	SeatLeft:   "LEFT",
	SeatTop:    "TOP",
	SeatRight:  "RIGHT",
}

func (s Seat) String() string {
	if name, ok := seatNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SEAT_%d", int(s))
}

// Next returns the seat to the left, i.e. the next player in clockwise order.
func (s Seat) Next() Seat {
	return (s + 1) % 4
}

// Previous returns the seat to the right.
func (s Seat) Previous() Seat {
	return (s + 3) % 4
}

// Teammate returns the seat directly across the table.
func (s Seat) Teammate() Seat {
	return (s + 2) % 4
}

// Team returns the team this seat belongs to. The mapping is fixed for the
// whole match: Bottom and Top form Team1, Left and Right form Team2.
func (s Seat) Team() Team {
	if s == SeatBottom || s == SeatTop {
		return Team1
	}
	return Team2
}

// PlayOrder returns all four seats in clockwise order starting from the seat
// to this dealer's left.
func (s Seat) PlayOrder() [4]Seat {
	var order [4]Seat
	current := s.Next()
	for i := 0; i < 4; i++ {
		order[i] = current
		current = current.Next()
	}
	return order
}

// Seats lists all seats in clockwise order starting from Bottom.
var Seats = [4]Seat{SeatBottom, SeatLeft, SeatTop, SeatRight}

// Team identifies one of the two partnerships.
type Team int

const (
	Team1 Team = iota
	Team2
)

func (t Team) String() string {
	if t == Team1 {
		return "TEAM1"
	}
	return "TEAM2"
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == Team1 {
		return Team2
	}
	return Team1
}

// Seats returns the two seats belonging to this team.
func (t Team) Seats() (Seat, Seat) {
	if t == Team1 {
		return SeatBottom, SeatTop
	}
	return SeatLeft, SeatRight
}
