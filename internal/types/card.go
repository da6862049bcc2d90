package types

// CardType is the grammatical role of a card.
type CardType string

const (
	CardNoun      CardType = "Noun"
	CardVerb      CardType = "Verb"
	CardParticle  CardType = "Particle"
	CardAdjective CardType = "Adjective"
	CardAdverb    CardType = "Adverb"
	CardAuxVerb   CardType = "AuxVerb"
)

// Card is a word card. Catalog entries carry ID == Base; cards dealt
// into a hand get a fresh instance ID while Base keeps pointing at the
// catalog entry for duplicate avoidance and combo matching.
type Card struct {
	ID     string   `json:"id"`
	Base   string   `json:"base"`
	Text   string   `json:"text"`
	Type   CardType `json:"type"`
	Tags   []string `json:"tags"`
	Rarity int      `json:"rarity"`
}

// HasTag reports whether the card carries the exact tag.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether any of the card's tags is in the given set.
func (c Card) HasAnyTag(tags []string) bool {
	for _, t := range c.Tags {
		for _, want := range tags {
			if t == want {
				return true
			}
		}
	}
	return false
}
