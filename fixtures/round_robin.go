package fixtures

// RoundRobin schedules every team against every other team. Legs is 1 for a
// single round-robin and 2 for home-and-away; any other value is treated as 1.
type RoundRobin struct {
	Legs int
}

const bye = -1

// Generate uses the circle method: one slot stays fixed while the others
// rotate, so each team plays at most once per round. An odd number of teams
// gets a bye slot and one team rests each round.
func (g RoundRobin) Generate(teamIDs []int) ([]Fixture, error) {
	if len(teamIDs) < 2 {
		return nil, ErrNotEnoughTeams
	}

	slots := make([]int, len(teamIDs), len(teamIDs)+1)
	copy(slots, teamIDs)
	if len(slots)%2 == 1 {
		slots = append(slots, bye)
	}
	n := len(slots)
	rounds := n - 1

	fixtures := make([]Fixture, 0, len(teamIDs)*(len(teamIDs)-1)/2)
	for r := 0; r < rounds; r++ {
		order := 0
		for i := 0; i < n/2; i++ {
			home, away := slots[i], slots[n-1-i]
			if home == bye || away == bye {
				continue
			}
			// Alternate the fixed slot between home and away.
			if i == 0 && r%2 == 1 {
				home, away = away, home
			}
			order++
			fixtures = append(fixtures, Fixture{Round: r + 1, Order: order, HomeTeamID: home, AwayTeamID: away})
		}

		last := slots[n-1]
		copy(slots[2:], slots[1:n-1])
		slots[1] = last
	}

	if g.Legs == 2 {
		firstLeg := len(fixtures)
		for _, f := range fixtures[:firstLeg] {
			fixtures = append(fixtures, Fixture{
				Round:      f.Round + rounds,
				Order:      f.Order,
				HomeTeamID: f.AwayTeamID,
				AwayTeamID: f.HomeTeamID,
			})
		}
	}

	return fixtures, nil
}
