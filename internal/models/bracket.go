package models

// Region is one of the four tournament brackets.
type Region string

const (
	RegionEast    Region = "East"
	RegionWest    Region = "West"
	RegionSouth   Region = "South"
	RegionMidwest Region = "Midwest"
)

// Regions lists the regions in display order. Every derived sequence is
// emitted in this order.
var Regions = []Region{RegionEast, RegionWest, RegionSouth, RegionMidwest}

// ParseRegion returns the Region named s, or false if s is not a known region.
func ParseRegion(s string) (Region, bool) {
	for _, r := range Regions {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Team is a single tournament entrant
type Team struct {
	Name   string `json:"name" validate:"required"`
	Seed   Seed   `json:"seed" validate:"required"`
	Region Region `json:"region,omitempty"`
}

// Matchup is a first-round game with its predicted winner.
// Probability is the probability that Winner wins.
type Matchup struct {
	Team1       Team    `json:"team1" validate:"required"`
	Team2       Team    `json:"team2" validate:"required"`
	Winner      Team    `json:"winner" validate:"required"`
	Probability float64 `json:"probability" validate:"gte=0,lte=1"`
}

// Name formats the matchup as "{team1} vs {team2}", preserving source order.
func (m Matchup) Name() string {
	return m.Team1.Name + " vs " + m.Team2.Name
}

// Champion is the predicted tournament winner
type Champion struct {
	Name        string  `json:"name" validate:"required"`
	Seed        Seed    `json:"seed" validate:"required"`
	Region      Region  `json:"region"`
	Probability float64 `json:"probability" validate:"gte=0,lte=1"`
}

// Bracket is the full precomputed dataset. It is never mutated after load.
type Bracket struct {
	FirstRound map[Region][]Matchup `json:"first_round" validate:"required,dive,dive"`
	Champion   Champion             `json:"champion" validate:"required"`
}

// RegionMatchups returns the first-round matchups of a region. A region
// missing from the dataset yields an empty list.
func (b *Bracket) RegionMatchups(region Region) []Matchup {
	if b == nil || b.FirstRound == nil {
		return []Matchup{}
	}
	matchups, ok := b.FirstRound[region]
	if !ok {
		return []Matchup{}
	}
	return matchups
}

// TotalMatchups counts matchups across all known regions.
func (b *Bracket) TotalMatchups() int {
	total := 0
	for _, r := range Regions {
		total += len(b.RegionMatchups(r))
	}
	return total
}
