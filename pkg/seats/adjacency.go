package seats

import (
	"sort"

	"github.com/venuelane/seating-backend/pkg/enums"
)

// GroupPreferences narrows the candidate pool for a group search.
type GroupPreferences struct {
	Section    *string
	MaxPrice   *float64
	RequireADA bool
}

type groupKey struct {
	section string
	row     string
}

type numberedSeat struct {
	seat   Seat
	number int
}

// FindAdjacentGroups returns every run of groupSize available seats with
// consecutive numbers in the same section and row. All qualifying runs are
// returned so the caller can pick; overlapping runs count separately.
func FindAdjacentGroups(seats []Seat, groupSize int, prefs *GroupPreferences) [][]Seat {
	if groupSize <= 0 {
		return nil
	}

	groups := make(map[groupKey][]numberedSeat)
	var keys []groupKey
	for _, seat := range seats {
		if !eligibleForGroup(seat, prefs) {
			continue
		}
		number, ok := ParseSeatNumber(seat.SeatNumber)
		if !ok {
			continue
		}
		key := groupKey{section: seat.Section, row: seat.Row}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], numberedSeat{seat: seat, number: number})
	}

	// Deterministic output across runs.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].section != keys[j].section {
			return keys[i].section < keys[j].section
		}
		return keys[i].row < keys[j].row
	})

	var runs [][]Seat
	for _, key := range keys {
		row := groups[key]
		sort.Slice(row, func(i, j int) bool { return row[i].number < row[j].number })

		for start := 0; start+groupSize <= len(row); start++ {
			if !consecutive(row[start : start+groupSize]) {
				continue
			}
			run := make([]Seat, groupSize)
			for i, entry := range row[start : start+groupSize] {
				run[i] = entry.seat
			}
			runs = append(runs, run)
		}
	}
	return runs
}

func eligibleForGroup(seat Seat, prefs *GroupPreferences) bool {
	if seat.Status != enums.SeatStatusAvailable {
		return false
	}
	if prefs == nil {
		return true
	}
	if prefs.Section != nil && seat.Section != *prefs.Section {
		return false
	}
	if prefs.MaxPrice != nil && seat.EffectivePrice() > *prefs.MaxPrice {
		return false
	}
	if prefs.RequireADA && !seat.Features.IsADA {
		return false
	}
	return true
}

func consecutive(window []numberedSeat) bool {
	for i := 1; i < len(window); i++ {
		if window[i].number != window[i-1].number+1 {
			return false
		}
	}
	return true
}
