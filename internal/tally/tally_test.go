package tally

import (
	"reflect"
	"testing"

	"github.com/worthyderby/derbyslips/internal/models"
)

func slip(ts int64, votes ...models.Vote) models.Slip {
	return models.Slip{Timestamp: ts, Votes: votes}
}

func TestCompute_BasicScenario(t *testing.T) {
	categories := []string{"Speed", "Design"}
	roster := map[int]string{1: "", 2: "", 3: ""}
	slips := []models.Slip{
		slip(1, models.Vote{Category: "Speed", CarNumber: 1}, models.Vote{Category: "Design", CarNumber: 2}),
	}

	tallies := Compute(categories, roster, slips)

	wantSpeed := map[int]int{1: 1, 2: 0, 3: 0}
	if !reflect.DeepEqual(tallies["Speed"], wantSpeed) {
		t.Errorf("Speed tallies = %v, want %v", tallies["Speed"], wantSpeed)
	}
	wantDesign := map[int]int{1: 0, 2: 1, 3: 0}
	if !reflect.DeepEqual(tallies["Design"], wantDesign) {
		t.Errorf("Design tallies = %v, want %v", tallies["Design"], wantDesign)
	}

	winners := Winners(tallies["Speed"])
	if !reflect.DeepEqual(winners.Cars, []int{1}) || winners.Votes != 1 {
		t.Errorf("Speed winners = %+v, want car 1 with 1 vote", winners)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	categories := []string{"Speed", "Design"}
	roster := map[int]string{1: "", 2: "", 5: "Lightning"}
	slips := []models.Slip{
		slip(3, models.Vote{Category: "Speed", CarNumber: 5}),
		slip(2, models.Vote{Category: "Speed", CarNumber: 1}, models.Vote{Category: "Design", CarNumber: 2}),
		slip(1, models.Vote{Category: "Speed", CarNumber: 5}),
	}

	first := Compute(categories, roster, slips)
	second := Compute(categories, roster, slips)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different tallies: %v vs %v", first, second)
	}
}

func TestCompute_OrphanedVotesExcluded(t *testing.T) {
	categories := []string{"Speed"}
	slips := []models.Slip{
		slip(1, models.Vote{Category: "Speed", CarNumber: 2}),
		slip(2, models.Vote{Category: "Speed", CarNumber: 1}),
	}

	// Car 2 was scratched after its vote was cast
	roster := map[int]string{1: ""}
	tallies := Compute(categories, roster, slips)

	if _, ok := tallies["Speed"][2]; ok {
		t.Error("expected scratched car 2 to be absent from tallies")
	}
	if tallies["Speed"][1] != 1 {
		t.Errorf("car 1 count = %d, want 1", tallies["Speed"][1])
	}
}

func TestCompute_OrphanedCategoryExcluded(t *testing.T) {
	slips := []models.Slip{
		slip(1, models.Vote{Category: "Retired", CarNumber: 1}),
	}
	tallies := Compute([]string{"Speed"}, map[int]string{1: ""}, slips)

	if _, ok := tallies["Retired"]; ok {
		t.Error("expected removed category to be absent from tallies")
	}
	if tallies["Speed"][1] != 0 {
		t.Errorf("car 1 count = %d, want 0", tallies["Speed"][1])
	}
}

func TestCompute_EmptyInputs(t *testing.T) {
	tallies := Compute(nil, nil, nil)
	if len(tallies) != 0 {
		t.Errorf("expected empty tallies, got %v", tallies)
	}

	tallies = Compute([]string{"Speed"}, map[int]string{1: ""}, nil)
	if tallies["Speed"][1] != 0 {
		t.Error("expected zero-initialized tallies with no slips")
	}
}

func TestRank_TiesSharePlaceAndSkip(t *testing.T) {
	// {A:5, B:5, C:3} -> places 1, 1, 3
	counts := map[int]int{1: 5, 2: 5, 3: 3}

	ranked := Rank(counts)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked cars, got %d", len(ranked))
	}
	wantPlaces := []int{1, 1, 3}
	for i, want := range wantPlaces {
		if ranked[i].Place != want {
			t.Errorf("ranked[%d].Place = %d, want %d", i, ranked[i].Place, want)
		}
	}
	if ranked[0].CarNumber != 1 || ranked[1].CarNumber != 2 {
		t.Errorf("tied cars not ordered by number: %v", ranked)
	}
}

func TestRank_ZeroVoteCarsExcluded(t *testing.T) {
	counts := map[int]int{1: 2, 2: 0, 3: 0}

	ranked := Rank(counts)

	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked car, got %d", len(ranked))
	}
	if ranked[0].CarNumber != 1 || ranked[0].Place != 1 {
		t.Errorf("unexpected ranking: %+v", ranked[0])
	}
}

func TestRank_EmptyCounts(t *testing.T) {
	if ranked := Rank(nil); len(ranked) != 0 {
		t.Errorf("expected empty ranking, got %v", ranked)
	}
}

func TestWinners_TiedCoWinners(t *testing.T) {
	// {A:5, B:5, C:0} -> winners {A, B}
	counts := map[int]int{1: 5, 2: 5, 3: 0}

	winners := Winners(counts)

	if !reflect.DeepEqual(winners.Cars, []int{1, 2}) {
		t.Errorf("winners = %v, want [1 2]", winners.Cars)
	}
	if winners.Votes != 5 {
		t.Errorf("winner votes = %d, want 5", winners.Votes)
	}
}

func TestWinners_AllZeroMeansNoWinner(t *testing.T) {
	counts := map[int]int{1: 0, 2: 0}

	winners := Winners(counts)

	if len(winners.Cars) != 0 {
		t.Errorf("expected no winners for all-zero tallies, got %v", winners.Cars)
	}
}

func TestTop_LimitsEntries(t *testing.T) {
	counts := map[int]int{1: 7, 2: 6, 3: 5, 4: 4, 5: 3, 6: 2, 7: 1}

	top := Top(Rank(counts), TopN)

	if len(top) != 5 {
		t.Fatalf("expected top 5 entries, got %d", len(top))
	}
	if top[0].CarNumber != 1 || top[4].CarNumber != 5 {
		t.Errorf("unexpected top-5 ordering: %v", top)
	}
}

func TestTop_ShortRankingUnchanged(t *testing.T) {
	ranked := Rank(map[int]int{1: 2, 2: 1})
	if got := Top(ranked, TopN); len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}
}

func TestFlatten_PreservesSlipOrder(t *testing.T) {
	slips := []models.Slip{
		slip(2, models.Vote{Category: "Speed", CarNumber: 2}),
		slip(1, models.Vote{Category: "Speed", CarNumber: 1}, models.Vote{Category: "Design", CarNumber: 1}),
	}

	votes := Flatten(slips)

	if len(votes) != 3 {
		t.Fatalf("expected 3 votes, got %d", len(votes))
	}
	if votes[0].CarNumber != 2 || votes[1].CarNumber != 1 {
		t.Errorf("unexpected flatten order: %v", votes)
	}
}
