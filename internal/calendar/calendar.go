// Package calendar drives the school year: event sequencing, the
// monthly location rotation on the map, character spawn selection, and
// the ending evaluation after the final event.
package calendar

import (
	"math/rand"
	"sort"

	"github.com/kotonoha/days/internal/catalog"
	"github.com/kotonoha/days/internal/types"
)

// locationWindow is how many rotating locations join the fixed ones
// each month.
const locationWindow = 6

// EndingThreshold is the affection needed for a successful confession.
const EndingThreshold = 80

// CurrentEvent returns the school event for an event index, or false
// once the year is over.
func CurrentEvent(eventIndex int) (types.SchoolEvent, bool) {
	if eventIndex < 0 || eventIndex >= len(catalog.Events) {
		return types.SchoolEvent{}, false
	}
	return catalog.Events[eventIndex], true
}

// YearOver reports whether every school event has been played.
func YearOver(eventIndex int) bool {
	return eventIndex >= len(catalog.Events)
}

// AvailableLocations returns the map choices for an event index: the
// fixed school locations plus a rotating window of six seasonal ones.
// The window start advances three slots per month and wraps around, so
// every location cycles into view over the year.
func AvailableLocations(eventIndex int) []types.Location {
	event, ok := CurrentEvent(eventIndex)
	if !ok {
		event = catalog.Events[len(catalog.Events)-1]
	}

	fixed := map[types.LocationID]bool{}
	for _, id := range catalog.FixedLocations {
		fixed[id] = true
	}

	var always, others []types.Location
	for _, id := range catalog.LocationOrder {
		loc := catalog.Locations[id]
		if !loc.OpenIn(event.Month) {
			continue
		}
		if fixed[id] {
			always = append(always, loc)
		} else {
			others = append(others, loc)
		}
	}
	if len(others) == 0 {
		return always
	}

	start := (eventIndex * 3) % len(others)
	window := make([]types.Location, 0, locationWindow)
	for i := 0; i < locationWindow && i < len(others); i++ {
		window = append(window, others[(start+i)%len(others)])
	}
	return append(always, window...)
}

// Spawner picks which character shows up at a location.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a Spawner using the given random source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn weighs every character for a location and returns the winner's
// id. Location affinity, how rarely the character has appeared this
// month, and accumulated affection all pull the weight up; candidates
// are shuffled first so equal weights do not always favor the same
// character.
func (s *Spawner) Spawn(loc types.LocationID, affections, meetings map[string]int) string {
	ids := append([]string(nil), catalog.CharacterOrder...)
	s.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	best := ids[0]
	maxWeight := -100.0
	for _, id := range ids {
		char := catalog.Characters[id]
		weight := 0.0
		if char.HasPositiveTag("Indoor") && containsLocation(catalog.IndoorLocations, loc) {
			weight += 3
		}
		if char.HasPositiveTag("Outdoor") && containsLocation(catalog.OutdoorLocations, loc) {
			weight += 3
		}
		weight += float64(5-meetings[id]) * 4
		weight += float64(affections[id]) / 100

		if weight > maxWeight {
			maxWeight = weight
			best = id
		}
	}
	return best
}

// EndingResult is the outcome of the year's final confession scene.
type EndingResult struct {
	CharacterID string
	Affection   int
	Success     bool
}

// Ending picks the character with the highest affection and reports
// whether the confession succeeds. Ties resolve to the earliest id in
// sorted order so the outcome is stable.
func Ending(affections map[string]int) EndingResult {
	ids := make([]string, 0, len(affections))
	for id := range affections {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	best := ids[0]
	for _, id := range ids[1:] {
		if affections[id] > affections[best] {
			best = id
		}
	}
	return EndingResult{
		CharacterID: best,
		Affection:   affections[best],
		Success:     affections[best] >= EndingThreshold,
	}
}

func containsLocation(set []types.LocationID, loc types.LocationID) bool {
	for _, id := range set {
		if id == loc {
			return true
		}
	}
	return false
}
