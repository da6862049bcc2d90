// Package dialogue scores a composed card sentence against a
// character's persona and maps the result to an affection change and a
// visible reaction.
package dialogue

import (
	"math"
	"strings"

	"github.com/kotonoha/days/internal/types"
)

// Score bounds for a single exchange. The raw score is unbounded; only
// the applied affection delta is clamped.
const (
	MinDelta = -25
	MaxDelta = 35
)

// Scoring weights.
const (
	positiveTagBonus   = 5
	negativeTagPenalty = 8
	comboBonus         = 15
	personaBonus       = 20
	grammarBonus       = 10
	adjectivePairBonus = 5
	grammarMultiplier  = 1.2
)

// Result is the outcome of evaluating one played sentence.
type Result struct {
	Sentence string
	RawScore int
	Delta    int
	Reaction types.Reaction
}

// Evaluate concatenates the selected cards into a sentence and scores
// it: tag affinity per card, special combos, persona keyword hits, and
// a grammar bonus that also multiplies the total. The delta is the raw
// score clamped to [MinDelta, MaxDelta].
func Evaluate(selected []types.Card, char types.Character) Result {
	var sb strings.Builder
	for _, c := range selected {
		sb.WriteString(c.Text)
	}
	sentence := strings.TrimSpace(sb.String())

	score := 0
	for _, c := range selected {
		if c.HasAnyTag(char.PositiveTags) {
			score += positiveTagBonus
		}
		if c.HasAnyTag(char.NegativeTags) {
			score -= negativeTagPenalty
		}
	}

	bases := map[string]bool{}
	for _, c := range selected {
		bases[c.Base] = true
	}
	for _, combo := range char.Combos {
		matched := true
		for _, base := range combo {
			if !bases[base] {
				matched = false
				break
			}
		}
		if matched {
			score += comboBonus
		}
	}

	// Multi-rune card texts that appear in the character's secrets or
	// worries count as a deep persona hit.
	deep := strings.Join(append(append([]string{}, char.Secrets...), char.Worries...), " ")
	for _, c := range selected {
		if len([]rune(c.Text)) > 1 && strings.Contains(deep, c.Text) {
			score += personaBonus
		}
	}

	present := map[types.CardType]bool{}
	for _, c := range selected {
		present[c.Type] = true
	}
	grammatical := present[types.CardNoun] && present[types.CardParticle] && present[types.CardVerb]
	if grammatical {
		score += grammarBonus
	}
	if present[types.CardAdjective] && present[types.CardNoun] {
		score += adjectivePairBonus
	}
	if grammatical {
		score = int(math.Round(float64(score) * grammarMultiplier))
	}

	delta := score
	if delta > MaxDelta {
		delta = MaxDelta
	}
	if delta < MinDelta {
		delta = MinDelta
	}

	return Result{
		Sentence: sentence,
		RawScore: score,
		Delta:    delta,
		Reaction: reactionFor(delta),
	}
}

// reactionFor maps a clamped delta to a reaction. Strong thresholds
// win over weak ones on both ends of the scale.
func reactionFor(delta int) types.Reaction {
	switch {
	case delta >= 20:
		return types.ReactionHappy
	case delta >= 10:
		return types.ReactionBlush
	case delta <= -20:
		return types.ReactionBored
	case delta <= -10:
		return types.ReactionAngry
	default:
		return types.ReactionNormal
	}
}
