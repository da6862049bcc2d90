// Package hand builds the player's word-card hands: balanced random
// draws, question-response hands, topical injection, and ephemeral
// keyword cards.
package hand

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/kotonoha/days/internal/catalog"
	"github.com/kotonoha/days/internal/types"
)

// Builder draws cards with an injected random source so every draw is
// reproducible under a fixed seed.
type Builder struct {
	rng          *rand.Rand
	contextNouns []types.Card
}

// NewBuilder returns a Builder using the catalog's context-noun set.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng, contextNouns: catalog.ContextNouns}
}

// instantiate copies a catalog card into a hand instance with a fresh
// unique id; Base keeps pointing at the catalog entry.
func (b *Builder) instantiate(c types.Card, draw string) types.Card {
	c.ID = fmt.Sprintf("%s_%s_%s", c.Base, uuid.NewString()[:8], draw)
	return c
}

// DrawBalanced draws up to count cards from pool, first covering any of
// Noun/Verb/Particle missing from existing so a grammatical sentence
// stays possible, then filling uniformly without base-id repeats. A
// short pool yields a short result, never an error.
func (b *Builder) DrawBalanced(pool []types.Card, count int, existing []types.Card) []types.Card {
	drawn := make([]types.Card, 0, count)

	present := map[types.CardType]bool{}
	for _, c := range existing {
		present[c.Type] = true
	}
	var missing []types.CardType
	for _, t := range []types.CardType{types.CardNoun, types.CardVerb, types.CardParticle} {
		if !present[t] {
			missing = append(missing, t)
		}
	}

	used := baseSet(existing)
	available := excludeBases(pool, used)

	for _, t := range missing {
		if len(drawn) >= count {
			break
		}
		var candidates []types.Card
		for _, c := range available {
			if c.Type == t && !used[c.Base] {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		pick := candidates[b.rng.Intn(len(candidates))]
		drawn = append(drawn, b.instantiate(pick, "bal"))
		used[pick.Base] = true
	}

	rest := excludeBases(available, used)
	b.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for _, c := range rest {
		if len(drawn) >= count {
			break
		}
		drawn = append(drawn, b.instantiate(c, "rnd"))
	}
	return drawn
}

// ResponseHand builds a hand shaped for answering a direct question:
// one affirmative, one negative, up to two context nouns, up to two
// verbs, then uniform backfill from the full pool. Empty guaranteed
// categories are skipped silently.
func (b *Builder) ResponseHand(pool, responsePool []types.Card, count int) []types.Card {
	drawn := make([]types.Card, 0, count)

	affirmative := filterAnyTag(responsePool, "Positive", "Agreement")
	if len(affirmative) > 0 && len(drawn) < count {
		drawn = append(drawn, b.instantiate(affirmative[b.rng.Intn(len(affirmative))], "yes"))
	}
	negative := filterAnyTag(responsePool, "Negative", "Denial")
	if len(negative) > 0 && len(drawn) < count {
		drawn = append(drawn, b.instantiate(negative[b.rng.Intn(len(negative))], "no"))
	}

	nouns := append([]types.Card(nil), b.contextNouns...)
	b.rng.Shuffle(len(nouns), func(i, j int) { nouns[i], nouns[j] = nouns[j], nouns[i] })
	for i := 0; i < 2 && i < len(nouns) && len(drawn) < count; i++ {
		drawn = append(drawn, b.instantiate(nouns[i], "ctx"))
	}

	var verbs []types.Card
	for _, c := range pool {
		if c.Type == types.CardVerb {
			verbs = append(verbs, c)
		}
	}
	b.rng.Shuffle(len(verbs), func(i, j int) { verbs[i], verbs[j] = verbs[j], verbs[i] })
	for i := 0; i < 2 && i < len(verbs) && len(drawn) < count; i++ {
		drawn = append(drawn, b.instantiate(verbs[i], "verb"))
	}

	used := baseSet(drawn)
	rest := excludeBases(pool, used)
	b.rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for _, c := range rest {
		if len(drawn) >= count {
			break
		}
		drawn = append(drawn, b.instantiate(c, "fill"))
	}
	return drawn
}

// InjectTopics replaces up to count hand cards with pool cards whose
// tags loosely match any of the requested topics. Particle and AuxVerb
// positions are never replaced so the sentence scaffolding survives.
// With no relevant cards the hand comes back unchanged.
func (b *Builder) InjectTopics(pool, current []types.Card, topics []string, count int) []types.Card {
	var relevant []types.Card
	for _, c := range pool {
		if tagMatchesTopic(c.Tags, topics) {
			relevant = append(relevant, c)
		}
	}
	if len(relevant) == 0 {
		return current
	}

	used := baseSet(current)
	b.rng.Shuffle(len(relevant), func(i, j int) { relevant[i], relevant[j] = relevant[j], relevant[i] })
	var picked []types.Card
	for _, c := range relevant {
		if len(picked) >= count {
			break
		}
		if used[c.Base] {
			continue
		}
		picked = append(picked, b.instantiate(c, "ctx"))
		used[c.Base] = true
	}

	var replaceable []int
	for i, c := range current {
		if c.Type != types.CardParticle && c.Type != types.CardAuxVerb {
			replaceable = append(replaceable, i)
		}
	}
	b.rng.Shuffle(len(replaceable), func(i, j int) { replaceable[i], replaceable[j] = replaceable[j], replaceable[i] })

	next := append([]types.Card(nil), current...)
	for i, c := range picked {
		if i >= len(replaceable) {
			break
		}
		next[replaceable[i]] = c
	}
	return next
}

// Ephemeral synthesizes a one-off card for an AI-suggested keyword.
// Its base id is unique, so it never collides with catalog dedup.
func Ephemeral(word string, typ types.CardType) types.Card {
	id := fmt.Sprintf("temp_%s_%s", word, uuid.NewString()[:8])
	return types.Card{
		ID:     id,
		Base:   id,
		Text:   word,
		Type:   typ,
		Tags:   []string{"Context", "AiGenerated"},
		Rarity: 2,
	}
}

func baseSet(cards []types.Card) map[string]bool {
	set := make(map[string]bool, len(cards))
	for _, c := range cards {
		set[c.Base] = true
	}
	return set
}

func excludeBases(cards []types.Card, used map[string]bool) []types.Card {
	out := make([]types.Card, 0, len(cards))
	for _, c := range cards {
		if !used[c.Base] {
			out = append(out, c)
		}
	}
	return out
}

func filterAnyTag(cards []types.Card, tags ...string) []types.Card {
	var out []types.Card
	for _, c := range cards {
		if c.HasAnyTag(tags) {
			out = append(out, c)
		}
	}
	return out
}

func tagMatchesTopic(tags, topics []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, topic := range topics {
			if topic == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(topic)) {
				return true
			}
		}
	}
	return false
}
