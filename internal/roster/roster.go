// Package roster holds the pure transformations over an event's award
// categories and car roster. Every function returns a new event value
// and leaves its input untouched; persisting the result is the
// caller's job.
package roster

import (
	"sort"

	"github.com/worthyderby/derbyslips/internal/errors"
	"github.com/worthyderby/derbyslips/internal/models"
)

// Reorder directions for MoveCategory.
const (
	MoveUp   = -1 // toward the head of the category list
	MoveDown = 1
)

// AddCategory appends a category name. Adding a name that is already
// present is a no-op; category names are unique within an event.
func AddCategory(event *models.Event, name string) *models.Event {
	for _, c := range event.Categories {
		if c == name {
			return event.Clone()
		}
	}
	out := event.Clone()
	out.Categories = append(out.Categories, name)
	return out
}

// RemoveCategory drops a category and cascades into history: every
// vote for the category is stripped from every slip, and slips left
// with no votes are dropped entirely. This is the one structural edit
// that rewrites stored slips; removing a car deliberately does not
// (see RemoveCar).
func RemoveCategory(event *models.Event, name string) *models.Event {
	out := event.Clone()

	kept := out.Categories[:0]
	for _, c := range out.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	out.Categories = kept

	slips := out.Slips[:0]
	for _, slip := range out.Slips {
		votes := slip.Votes[:0]
		for _, v := range slip.Votes {
			if v.Category != name {
				votes = append(votes, v)
			}
		}
		slip.Votes = votes
		if len(slip.Votes) > 0 {
			slips = append(slips, slip)
		}
	}
	out.Slips = slips
	return out
}

// RenameCategory replaces oldName with newName, preserving list
// position, and rewrites every historical vote under the old name so
// past tallies follow the category. Renaming onto a different existing
// category is a conflict: the event is returned unchanged alongside
// the error.
func RenameCategory(event *models.Event, oldName, newName string) (*models.Event, error) {
	if newName != oldName {
		for _, c := range event.Categories {
			if c == newName {
				return event, errors.Conflictf("category %q already exists", newName)
			}
		}
	}

	out := event.Clone()
	for i, c := range out.Categories {
		if c == oldName {
			out.Categories[i] = newName
		}
	}
	for si := range out.Slips {
		for vi := range out.Slips[si].Votes {
			if out.Slips[si].Votes[vi].Category == oldName {
				out.Slips[si].Votes[vi].Category = newName
			}
		}
	}
	return out, nil
}

// MoveCategory swaps the category at index with its neighbor in the
// given direction (MoveUp or MoveDown). Moves that would leave the
// list bounds are a no-op, not an error.
func MoveCategory(event *models.Event, index, direction int) *models.Event {
	out := event.Clone()
	target := index + direction
	if index < 0 || index >= len(out.Categories) {
		return out
	}
	if target < 0 || target >= len(out.Categories) {
		return out
	}
	out.Categories[index], out.Categories[target] = out.Categories[target], out.Categories[index]
	return out
}

// AddCarRange registers car numbers start..end inclusive with an empty
// display name, skipping numbers already on the roster so existing
// names are never overwritten. A range with end < start adds nothing;
// the caller validates ranges before asking.
func AddCarRange(event *models.Event, start, end int) *models.Event {
	out := event.Clone()
	for num := start; num <= end; num++ {
		if num <= 0 {
			continue
		}
		if _, ok := out.CarNames[num]; !ok {
			out.CarNames[num] = ""
		}
	}
	return out
}

// RemoveCar takes one car off the roster. Historical votes for the car
// stay in the slips — the car existed when they were cast and the
// record should stay auditable — but the tally engine no longer counts
// them once the number is gone from the roster.
func RemoveCar(event *models.Event, carNumber int) *models.Event {
	out := event.Clone()
	delete(out.CarNames, carNumber)
	return out
}

// ClearAllCars resets the roster AND the slip ledger. Unlike RemoveCar
// this is a full restart of the event's voting, so history goes too.
func ClearAllCars(event *models.Event) *models.Event {
	out := event.Clone()
	out.CarNames = make(map[int]string)
	out.Slips = nil
	return out
}

// RenameCar sets the display name for a car already on the roster.
// Naming a number that is not registered is a no-op; the roster is
// defined by AddCarRange, not by naming.
func RenameCar(event *models.Event, carNumber int, name string) *models.Event {
	out := event.Clone()
	if _, ok := out.CarNames[carNumber]; ok {
		out.CarNames[carNumber] = name
	}
	return out
}

// Cars returns the roster as sorted car numbers. The roster is the key
// set of CarNames; display names are a separate concern.
func Cars(event *models.Event) []int {
	nums := make([]int, 0, len(event.CarNames))
	for num := range event.CarNames {
		nums = append(nums, num)
	}
	sort.Ints(nums)
	return nums
}
