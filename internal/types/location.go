package types

// LocationID identifies a visitable place.
type LocationID string

const (
	LocClassroom        LocationID = "Classroom"
	LocRooftop          LocationID = "Rooftop"
	LocCorridor         LocationID = "Corridor"
	LocStation          LocationID = "Station"
	LocPark             LocationID = "Park"
	LocLibrary          LocationID = "Library"
	LocGym              LocationID = "Gym"
	LocBeach            LocationID = "Beach"
	LocShrine           LocationID = "Shrine"
	LocCafe             LocationID = "Cafe"
	LocMall             LocationID = "Mall"
	LocPool             LocationID = "Pool"
	LocAmusementPark    LocationID = "AmusementPark"
	LocKaraoke          LocationID = "Karaoke"
	LocArcade           LocationID = "Arcade"
	LocConvenienceStore LocationID = "ConvenienceStore"
	LocBookstore        LocationID = "Bookstore"
	LocFastFood         LocationID = "FastFood"
	LocRiverbank        LocationID = "Riverbank"
	LocAquarium         LocationID = "Aquarium"
)

// TimeSlot is a period of the school day.
type TimeSlot string

const (
	SlotMorning     TimeSlot = "Morning"
	SlotLunch       TimeSlot = "Lunch"
	SlotAfterSchool TimeSlot = "AfterSchool"
	SlotNight       TimeSlot = "Night"
)

// Location is a visitable place. AvailableMonths empty means the
// location is open year round.
type Location struct {
	ID              LocationID `json:"id"`
	Name            string     `json:"name"`
	BGMTheme        string     `json:"bgm_theme"`
	AvailableMonths []int      `json:"available_months,omitempty"`

	// Prompt seeds background image generation; FallbackImageURL is
	// served when generation is unavailable.
	Prompt           string `json:"prompt,omitempty"`
	FallbackImageURL string `json:"fallback_image_url,omitempty"`
}

// OpenIn reports whether the location is visitable in the given month.
func (l Location) OpenIn(month int) bool {
	if len(l.AvailableMonths) == 0 {
		return true
	}
	for _, m := range l.AvailableMonths {
		if m == month {
			return true
		}
	}
	return false
}

// SchoolEvent is one entry of the fixed twelve-event school year.
type SchoolEvent struct {
	ID          string `json:"id"`
	Month       int    `json:"month"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
