package calendar

import (
	"math/rand"
	"testing"

	"github.com/kotonoha/days/internal/catalog"
	"github.com/kotonoha/days/internal/types"
)

func TestCurrentEventSequence(t *testing.T) {
	first, ok := CurrentEvent(0)
	if !ok || first.Month != 4 {
		t.Fatalf("first event = %+v ok=%v, want April", first, ok)
	}
	last, ok := CurrentEvent(len(catalog.Events) - 1)
	if !ok || last.Month != 3 {
		t.Fatalf("last event = %+v ok=%v, want March", last, ok)
	}
	if _, ok := CurrentEvent(len(catalog.Events)); ok {
		t.Error("event reported past the end of the year")
	}
	if !YearOver(len(catalog.Events)) {
		t.Error("year not over after the final event")
	}
}

func TestAvailableLocationsAlwaysIncludeFixed(t *testing.T) {
	for idx := range catalog.Events {
		locs := AvailableLocations(idx)
		found := map[types.LocationID]bool{}
		for _, l := range locs {
			found[l.ID] = true
		}
		for _, id := range catalog.FixedLocations {
			if !found[id] {
				t.Errorf("event %d: fixed location %s missing", idx, id)
			}
		}
		if len(locs) > len(catalog.FixedLocations)+locationWindow {
			t.Errorf("event %d: %d locations offered, want at most %d",
				idx, len(locs), len(catalog.FixedLocations)+locationWindow)
		}
	}
}

func TestAvailableLocationsHonorMonthWindows(t *testing.T) {
	for idx, event := range catalog.Events {
		for _, loc := range AvailableLocations(idx) {
			if !loc.OpenIn(event.Month) {
				t.Errorf("event %d (month %d): closed location %s offered", idx, event.Month, loc.ID)
			}
		}
	}
}

func TestAvailableLocationsRotate(t *testing.T) {
	ids := func(idx int) map[types.LocationID]bool {
		set := map[types.LocationID]bool{}
		for _, l := range AvailableLocations(idx) {
			set[l.ID] = true
		}
		return set
	}
	// Adjacent months in the same season share month windows, so any
	// difference must come from the rotation.
	a, b := ids(9), ids(10)
	var differs bool
	for id := range a {
		if !b[id] {
			differs = true
		}
	}
	if !differs {
		t.Error("location window did not rotate between months")
	}
}

func TestSpawnPrefersLeastMetCharacter(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)))
	affections := map[string]int{"reina": 0, "akane": 0, "shiori": 0}
	meetings := map[string]int{"reina": 5, "akane": 5, "shiori": 0}

	for i := 0; i < 20; i++ {
		if got := s.Spawn(types.LocClassroom, affections, meetings); got != "shiori" {
			t.Fatalf("spawn %d = %s, want shiori with 20-point counter edge", i, got)
		}
	}
}

func TestSpawnMeetingCounterWeight(t *testing.T) {
	// A 0-vs-5 meeting count difference is worth exactly 20 weight,
	// larger than any affinity or realistic affection edge.
	affections := map[string]int{"reina": 500, "akane": 0, "shiori": 0}
	meetings := map[string]int{"reina": 5, "akane": 0, "shiori": 5}

	s := NewSpawner(rand.New(rand.NewSource(2)))
	// reina: 20-20+5 = 5. akane: 20+0 = 20 (+3 if outdoor affinity).
	if got := s.Spawn(types.LocPark, affections, meetings); got != "akane" {
		t.Fatalf("spawn = %s, want akane", got)
	}
}

func TestSpawnAffectionBreaksTies(t *testing.T) {
	affections := map[string]int{"reina": 300, "akane": 0, "shiori": 0}
	meetings := map[string]int{"reina": 0, "akane": 0, "shiori": 0}

	s := NewSpawner(rand.New(rand.NewSource(3)))
	counts := map[string]int{}
	for i := 0; i < 30; i++ {
		counts[s.Spawn(types.LocShrine, affections, meetings)]++
	}
	// Shrine carries no affinity bonus, so reina's +3 affection weight
	// should win every roll.
	if counts["reina"] != 30 {
		t.Errorf("reina spawned %d/30 times with highest affection", counts["reina"])
	}
}

func TestEnding(t *testing.T) {
	got := Ending(map[string]int{"reina": 120, "akane": 75, "shiori": 40})
	if got.CharacterID != "reina" || !got.Success || got.Affection != 120 {
		t.Errorf("ending = %+v, want successful reina ending", got)
	}

	got = Ending(map[string]int{"reina": 10, "akane": 60, "shiori": 2})
	if got.CharacterID != "akane" || got.Success {
		t.Errorf("ending = %+v, want failed akane ending", got)
	}

	// Ties resolve to the first id in sorted order.
	got = Ending(map[string]int{"reina": 90, "akane": 90, "shiori": 0})
	if got.CharacterID != "akane" {
		t.Errorf("tie ending = %+v, want akane", got)
	}
}
