package types

// Engine limits.
const (
	MaxHandSize = 10
	MaxSlots    = 6
	MaxTurns    = 5
	MovesPerDay = 10

	MaxAffection = 500
	MinAffection = -500
)

// Reaction is a character's visible expression category.
type Reaction string

const (
	ReactionNormal   Reaction = "normal"
	ReactionHappy    Reaction = "happy"
	ReactionSad      Reaction = "sad"
	ReactionAngry    Reaction = "angry"
	ReactionBlush    Reaction = "blush"
	ReactionBored    Reaction = "bored"
	ReactionLookaway Reaction = "lookaway"
	ReactionAnnoyed  Reaction = "annoyed"
)

// Reactions lists every valid expression category.
var Reactions = []Reaction{
	ReactionNormal, ReactionHappy, ReactionSad, ReactionAngry,
	ReactionBlush, ReactionBored, ReactionLookaway, ReactionAnnoyed,
}

// Valid reports whether r is a known expression category.
func (r Reaction) Valid() bool {
	for _, known := range Reactions {
		if r == known {
			return true
		}
	}
	return false
}

// ConversationStatus tells the player whether the character expects a
// direct answer.
type ConversationStatus string

const (
	StatusQuestion ConversationStatus = "QUESTION"
	StatusWaiting  ConversationStatus = "WAITING"
)

// Character is a static character profile; only affection, tracked by
// the session, changes during play.
type Character struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Grade        int      `json:"grade"`
	PositiveTags []string `json:"positive_tags"`
	NegativeTags []string `json:"negative_tags"`
	Description  string   `json:"description"`
	VisualTraits string   `json:"visual_traits"`

	Secrets       []string `json:"secrets"`
	Worries       []string `json:"worries"`
	HobbiesDetail string   `json:"hobbies_detail"`
	Tone          string   `json:"tone"`

	// Combos are tuples of catalog card ids that must all be played
	// together to earn a bonus.
	Combos [][]string `json:"combos"`

	WaitingMessages  []string `json:"waiting_messages"`
	MeetingStory     string   `json:"meeting_story"`
	FallbackImageURL string   `json:"fallback_image_url"`

	Height    string `json:"height"`
	Birthday  string `json:"birthday"`
	BloodType string `json:"blood_type"`
}

// HasPositiveTag reports whether tag is one of the character's likes.
func (c *Character) HasPositiveTag(tag string) bool {
	for _, t := range c.PositiveTags {
		if t == tag {
			return true
		}
	}
	return false
}

// FeelingRange maps an affection interval to the lines a character may
// say about the relationship.
type FeelingRange struct {
	Low      int
	High     int
	Messages []string
}

// DialogueLine is one entry of the conversation log.
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}
