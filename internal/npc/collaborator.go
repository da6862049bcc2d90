// Package npc produces character dialogue. A language-model backed
// generator does the heavy lifting; a deterministic fallback keeps the
// game playable when no model is configured or a call fails.
package npc

import (
	"context"

	"github.com/kotonoha/days/internal/types"
)

// Initiative is a character-opened conversation beat: the spoken line
// plus the keywords and topics used to reshape the player's hand.
type Initiative struct {
	Text     string
	Keywords []string
	Topics   []string
	Status   types.ConversationStatus
}

// Interaction is the character's reply to a played card sentence.
type Interaction struct {
	PlayerLine    string
	CharacterLine string
	Reaction      types.Reaction
	Status        types.ConversationStatus
}

// InitiativeRequest carries the scene context for an opening line.
type InitiativeRequest struct {
	Character    *types.Character
	LocationName string
	Affection    int

	// Consultation asks the character to open up about a secret or
	// worry instead of making small talk.
	Consultation bool
}

// InteractionRequest carries the scene context for a reply.
type InteractionRequest struct {
	Character    *types.Character
	PlayerText   string
	Score        int
	Affection    int
	LocationName string
	History      []types.DialogueLine
}

// Collaborator generates dialogue for a character.
type Collaborator interface {
	Initiative(ctx context.Context, req InitiativeRequest) (Initiative, error)
	Interaction(ctx context.Context, req InteractionRequest) (Interaction, error)
}
