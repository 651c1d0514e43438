// Package tally derives vote counts, rankings, and winners from an
// event's slip ledger. Everything here is a pure function of its
// inputs: no I/O, no errors, identical inputs always produce identical
// results. Votes referencing categories or cars no longer present are
// silently excluded from the counts; the ledger keeps them, the tally
// ignores them.
package tally

import (
	"sort"

	"github.com/worthyderby/derbyslips/internal/models"
)

// TopN is how many ranked entries a display consumer needs per
// category. The full tally map remains the source of truth.
const TopN = 5

// Tallies maps category -> car number -> vote count.
type Tallies map[string]map[int]int

// RankedCar is one row of a category's standings.
type RankedCar struct {
	CarNumber int    `json:"carNumber"`
	CarName   string `json:"carName,omitempty"`
	Votes     int    `json:"votes"`
	Place     int    `json:"place"`
}

// WinnerSet is the co-winner group for a category: every car tied at
// the positive maximum. A category with no votes has an empty set.
type WinnerSet struct {
	Cars  []int `json:"cars"`
	Votes int   `json:"votes"`
}

// Compute counts votes against the current category list and roster.
// Every (category, car) pair present now starts at zero; a vote is
// counted only when both its category and its car are still live, so
// orphaned votes from roster edits drop out without touching history.
func Compute(categories []string, carNames map[int]string, slips []models.Slip) Tallies {
	tallies := make(Tallies, len(categories))
	for _, category := range categories {
		counts := make(map[int]int, len(carNames))
		for num := range carNames {
			counts[num] = 0
		}
		tallies[category] = counts
	}

	for _, slip := range slips {
		for _, vote := range slip.Votes {
			counts, ok := tallies[vote.Category]
			if !ok {
				continue
			}
			if _, ok := counts[vote.CarNumber]; !ok {
				continue
			}
			counts[vote.CarNumber]++
		}
	}

	return tallies
}

// Rank orders a category's counts into standings: descending by votes,
// zero-vote cars excluded, car number ascending as a deterministic
// tiebreak. Ties share a place and the next distinct count skips the
// tied numbers (1, 1, 3 — not 1, 1, 2).
func Rank(counts map[int]int) []RankedCar {
	ranked := make([]RankedCar, 0, len(counts))
	for num, votes := range counts {
		if votes > 0 {
			ranked = append(ranked, RankedCar{CarNumber: num, Votes: votes})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Votes != ranked[j].Votes {
			return ranked[i].Votes > ranked[j].Votes
		}
		return ranked[i].CarNumber < ranked[j].CarNumber
	})

	for i := range ranked {
		if i > 0 && ranked[i].Votes == ranked[i-1].Votes {
			ranked[i].Place = ranked[i-1].Place
		} else {
			ranked[i].Place = i + 1
		}
	}
	return ranked
}

// Winners returns the cars tied at the maximum count, provided the
// maximum is positive. All-zero counts mean no winner, not an error.
func Winners(counts map[int]int) WinnerSet {
	max := 0
	for _, votes := range counts {
		if votes > max {
			max = votes
		}
	}
	if max == 0 {
		return WinnerSet{}
	}

	var cars []int
	for num, votes := range counts {
		if votes == max {
			cars = append(cars, num)
		}
	}
	sort.Ints(cars)
	return WinnerSet{Cars: cars, Votes: max}
}

// Top returns at most n leading entries of a ranking.
func Top(ranked []RankedCar, n int) []RankedCar {
	if len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}

// Flatten collapses a slip ledger into its vote entries, newest slip
// first. This is a read-time view; votes are never stored standalone.
func Flatten(slips []models.Slip) []models.Vote {
	votes := make([]models.Vote, 0, len(slips))
	for _, slip := range slips {
		votes = append(votes, slip.Votes...)
	}
	return votes
}
