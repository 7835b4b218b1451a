package fixtures

import (
	"fmt"
	"math/bits"
)

// Entrant is a seeded team entering the knockout, e.g. the winner of group A.
type Entrant struct {
	TeamID int    `json:"team_id"`
	Label  string `json:"label"`
}

// Slot is one side of a knockout match: a known entrant or the winner of an earlier match.
type Slot struct {
	Entrant *Entrant `json:"entrant,omitempty"`
	Winner  string   `json:"winner_of,omitempty"`
}

type KnockoutMatch struct {
	UID   string `json:"uid"`
	Round int    `json:"round"`
	Order int    `json:"order"`
	Home  Slot   `json:"home"`
	Away  *Slot  `json:"away,omitempty"`
	// Bye marks a first-round walkover; Home advances unopposed.
	Bye bool `json:"bye,omitempty"`
}

// Knockout builds a single-elimination bracket from entrants in bracket order:
// entrants[0] meets entrants[1], entrants[2] meets entrants[3], and so on.
// When the count is not a power of two, byes fill every other first-round slot
// starting from the top, so two byes never meet in the second round.
func Knockout(entrants []Entrant) ([]KnockoutMatch, error) {
	n := len(entrants)
	if n < 2 {
		return nil, ErrNotEnoughTeams
	}

	size := 1 << bits.Len(uint(n-1))
	byes := size - n

	half := size / 2
	isBye := make([]bool, half)
	placed := 0
	for i := 0; i < half && placed < byes; i += 2 {
		isBye[i] = true
		placed++
	}
	for i := 1; i < half && placed < byes; i += 2 {
		isBye[i] = true
		placed++
	}

	var matches []KnockoutMatch
	next := make([]Slot, 0, half)

	idx := 0
	for order := 1; order <= half; order++ {
		uid := fmt.Sprintf("R1M%d", order)
		home := entrants[idx]
		idx++
		if isBye[order-1] {
			matches = append(matches, KnockoutMatch{UID: uid, Round: 1, Order: order, Home: Slot{Entrant: &home}, Bye: true})
			next = append(next, Slot{Entrant: &home})
			continue
		}
		away := entrants[idx]
		idx++
		matches = append(matches, KnockoutMatch{
			UID:   uid,
			Round: 1,
			Order: order,
			Home:  Slot{Entrant: &home},
			Away:  &Slot{Entrant: &away},
		})
		next = append(next, Slot{Winner: uid})
	}

	for round := 2; len(next) > 1; round++ {
		current := next
		next = make([]Slot, 0, len(current)/2)
		for i := 0; i < len(current); i += 2 {
			order := i/2 + 1
			uid := fmt.Sprintf("R%dM%d", round, order)
			away := current[i+1]
			matches = append(matches, KnockoutMatch{
				UID:   uid,
				Round: round,
				Order: order,
				Home:  current[i],
				Away:  &away,
			})
			next = append(next, Slot{Winner: uid})
		}
	}

	return matches, nil
}
