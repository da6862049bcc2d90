package npc

import (
	"context"
	"math/rand"
	"sync"

	"github.com/kotonoha/days/internal/types"
)

const defaultWaitingLine = "ねえ、私のこと、どう思ってる？"

// Fallback is a Collaborator that answers from canned lines without
// touching the network. It never fails.
type Fallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallback returns a Fallback using the given random source.
func NewFallback(rng *rand.Rand) *Fallback {
	return &Fallback{rng: rng}
}

// Initiative picks one of the character's waiting lines and hands the
// turn back to the player.
func (f *Fallback) Initiative(_ context.Context, req InitiativeRequest) (Initiative, error) {
	text := defaultWaitingLine
	if msgs := req.Character.WaitingMessages; len(msgs) > 0 {
		f.mu.Lock()
		text = msgs[f.rng.Intn(len(msgs))]
		f.mu.Unlock()
	}
	return Initiative{
		Text:     text,
		Keywords: []string{"好き", "かわいい", "普通"},
		Topics:   []string{"Emotion"},
		Status:   types.StatusWaiting,
	}, nil
}

// Interaction echoes the player's sentence and answers noncommittally.
func (f *Fallback) Interaction(_ context.Context, req InteractionRequest) (Interaction, error) {
	return Interaction{
		PlayerLine:    req.PlayerText,
		CharacterLine: "...",
		Reaction:      types.ReactionNormal,
		Status:        types.StatusWaiting,
	}, nil
}
