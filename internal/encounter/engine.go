// Package encounter runs a single meeting with a character: the hand,
// the sentence slots, turn ownership, the conversation status, and the
// idle interruption timer.
package encounter

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/kotonoha/days/internal/catalog"
	"github.com/kotonoha/days/internal/dialogue"
	"github.com/kotonoha/days/internal/hand"
	"github.com/kotonoha/days/internal/npc"
	"github.com/kotonoha/days/internal/session"
	"github.com/kotonoha/days/internal/types"
)

// IdleThresholdSeconds is how long the player may stall before the
// character interrupts.
const IdleThresholdSeconds = 20

// Tunables for consultation and turn-ownership rolls.
const (
	consultationAffection = 200
	consultationChance    = 0.7
	locationTopicCount    = 3
	initiativeTopicCount  = 4
	followUpChance        = 0.6
)

var (
	// ErrNoEncounter is returned when no character is present.
	ErrNoEncounter = errors.New("no active encounter")
	// ErrEmptySentence is returned when Send is called with no slots filled.
	ErrEmptySentence = errors.New("no cards placed")
	// ErrSlotsFull is returned when every sentence slot is occupied.
	ErrSlotsFull = errors.New("all slots occupied")
	// ErrAffectionFloor is returned when shuffling would cost affection
	// the character no longer has to give.
	ErrAffectionFloor = errors.New("affection at minimum")
)

// Cue is a presentation hint emitted alongside state changes.
type Cue string

const (
	CueConfirm  Cue = "confirm"
	CueCancel   Cue = "cancel"
	CueCardDraw Cue = "card_draw"
	CuePositive Cue = "positive"
	CueNegative Cue = "negative"
)

// CueSink receives presentation cues. Implementations must not block.
type CueSink func(Cue)

// Owner says whose move it is.
type Owner string

const (
	OwnerPlayer    Owner = "player"
	OwnerCharacter Owner = "character"
)

// Engine drives one encounter at a time on top of the shared session
// state. All exported methods are safe for concurrent use; collaborator
// calls run outside the lock and stale results are discarded.
type Engine struct {
	rng      *rand.Rand
	builder  *hand.Builder
	collab   npc.Collaborator
	fallback npc.Collaborator
	state    *session.State
	cues     CueSink

	mu sync.Mutex

	generation  string
	characterID string
	location    types.Location

	cards []types.Card
	slots []*types.Card

	owner        Owner
	status       types.ConversationStatus
	reaction     types.Reaction
	aiThinking   bool
	interrupted  bool
	consultation bool
	idleSeconds  int
}

// New returns an Engine. fallback handles collaborator failures and
// must never fail itself; cues may be nil.
func New(rng *rand.Rand, builder *hand.Builder, collab, fallback npc.Collaborator, state *session.State, cues CueSink) *Engine {
	if cues == nil {
		cues = func(Cue) {}
	}
	return &Engine{
		rng:      rng,
		builder:  builder,
		collab:   collab,
		fallback: fallback,
		state:    state,
		cues:     cues,
		slots:    make([]*types.Card, types.MaxSlots),
		status:   types.StatusWaiting,
		reaction: types.ReactionNormal,
	}
}

// Begin opens an encounter with a character at a location: situation
// line, fresh balanced hand flavored with location topics, consultation
// and turn-ownership rolls. When the character leads, their opening
// turn runs before Begin returns.
func (e *Engine) Begin(ctx context.Context, characterID string, loc types.Location) error {
	if _, ok := catalog.Characters[characterID]; !ok {
		return ErrNoEncounter
	}

	e.mu.Lock()
	e.generation = uuid.NewString()
	e.characterID = characterID
	e.location = loc
	e.slots = make([]*types.Card, types.MaxSlots)
	e.owner = OwnerPlayer
	e.status = types.StatusWaiting
	e.reaction = types.ReactionNormal
	e.aiThinking = false
	e.interrupted = false
	e.idleSeconds = 0

	situations := catalog.SituationsFor(characterID, loc.ID)
	if len(situations) > 0 {
		line := situations[e.rng.Intn(len(situations))]
		e.state.AppendDialogue(types.DialogueLine{Speaker: "System", Text: line})
	}

	affection := e.state.Affection(characterID)
	e.consultation = affection > consultationAffection && e.rng.Float64() > consultationChance

	cards := e.builder.DrawBalanced(catalog.Cards, types.MaxHandSize, nil)
	if tags := catalog.LocationTags[loc.ID]; len(tags) > 0 {
		cards = e.builder.InjectTopics(catalog.Cards, cards, tags, locationTopicCount)
	}
	e.cards = cards

	if e.state.TurnCount() >= types.MaxTurns {
		e.mu.Unlock()
		return nil
	}

	characterLed := e.rng.Float64() > 0.4+float64(affection)/600 || e.consultation
	e.mu.Unlock()

	if characterLed {
		return e.CharacterTurn(ctx)
	}
	return nil
}

// CharacterTurn has the character open the next beat. A QUESTION swaps
// the hand for a response hand; otherwise suggested topics and
// keywords reshape the current one.
func (e *Engine) CharacterTurn(ctx context.Context) error {
	e.mu.Lock()
	if e.characterID == "" {
		e.mu.Unlock()
		return ErrNoEncounter
	}
	char := catalog.Characters[e.characterID]
	gen := e.generation
	req := npc.InitiativeRequest{
		Character:    char,
		LocationName: e.location.Name,
		Affection:    e.state.Affection(e.characterID),
		Consultation: e.consultation,
	}
	e.owner = OwnerCharacter
	e.aiThinking = true
	e.slots = make([]*types.Card, types.MaxSlots)
	e.mu.Unlock()

	initiative, err := e.collab.Initiative(ctx, req)
	if err != nil {
		initiative, _ = e.fallback.Initiative(ctx, req)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation != gen {
		// Encounter changed while the model was thinking.
		return nil
	}
	e.aiThinking = false

	e.state.AppendDialogue(types.DialogueLine{Speaker: char.Name, Text: initiative.Text})
	e.status = initiative.Status

	if initiative.Status == types.StatusQuestion {
		e.cards = e.builder.ResponseHand(catalog.Cards, catalog.ResponseCards, types.MaxHandSize)
	} else {
		if len(initiative.Topics) > 0 {
			e.cards = e.builder.InjectTopics(catalog.Cards, e.cards, initiative.Topics, initiativeTopicCount)
		}
		for i, keyword := range initiative.Keywords {
			if i >= len(e.cards) {
				break
			}
			e.cards[i] = hand.Ephemeral(keyword, types.CardNoun)
		}
	}

	e.cues(CueCardDraw)
	e.owner = OwnerPlayer
	return nil
}

// SendResult reports what happened to a played sentence.
type SendResult struct {
	Evaluation  dialogue.Result
	PlayerLine  string
	ReplyLine   string
	Affection   int
	SessionOver bool

	// FollowUp asks the caller to run another character turn after a
	// short beat, keeping the current hand.
	FollowUp bool
}

// Send evaluates the slotted sentence, applies the affection change,
// and plays the character's reply. Slots are cleared and one monthly
// turn is spent.
func (e *Engine) Send(ctx context.Context) (SendResult, error) {
	e.mu.Lock()
	if e.characterID == "" {
		e.mu.Unlock()
		return SendResult{}, ErrNoEncounter
	}
	var played []types.Card
	for _, c := range e.slots {
		if c != nil {
			played = append(played, *c)
		}
	}
	if len(played) == 0 {
		e.mu.Unlock()
		return SendResult{}, ErrEmptySentence
	}

	e.cues(CueConfirm)
	e.idleSeconds = 0
	e.interrupted = false

	char := catalog.Characters[e.characterID]
	result := dialogue.Evaluate(played, *char)
	affection := e.state.AdjustAffection(e.characterID, result.Delta)

	if result.Delta > 0 {
		e.cues(CuePositive)
	} else if result.Delta < 0 {
		e.cues(CueNegative)
	}

	gen := e.generation
	req := npc.InteractionRequest{
		Character:    char,
		PlayerText:   result.Sentence,
		Score:        result.RawScore,
		Affection:    affection,
		LocationName: e.location.Name,
		History:      e.state.Dialogue(),
	}
	e.aiThinking = true
	e.mu.Unlock()

	interaction, err := e.collab.Interaction(ctx, req)
	if err != nil {
		interaction, _ = e.fallback.Interaction(ctx, req)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation != gen {
		return SendResult{}, ErrNoEncounter
	}
	e.aiThinking = false

	sign := ""
	if result.Delta > 0 {
		sign = "+"
	}
	e.state.AppendDialogue(
		types.DialogueLine{Speaker: "あなた", Text: "「" + interaction.PlayerLine + "」"},
		types.DialogueLine{Speaker: "System", Text: fmt.Sprintf("(好感度 %s%d)", sign, result.Delta)},
		types.DialogueLine{Speaker: char.Name, Text: interaction.CharacterLine},
	)

	e.status = interaction.Status
	if interaction.Reaction.Valid() {
		e.reaction = interaction.Reaction
	}
	e.slots = make([]*types.Card, types.MaxSlots)

	out := SendResult{
		Evaluation: result,
		PlayerLine: interaction.PlayerLine,
		ReplyLine:  interaction.CharacterLine,
		Affection:  affection,
	}

	turns := e.state.SpendTurn()
	if turns >= types.MaxTurns {
		e.state.AppendDialogue(types.DialogueLine{Speaker: "System", Text: "今月の会話はここまでです。"})
		out.SessionOver = true
	} else if interaction.Status == types.StatusQuestion {
		e.cards = e.builder.ResponseHand(catalog.Cards, catalog.ResponseCards, types.MaxHandSize)
	} else if e.rng.Float64() > followUpChance {
		out.FollowUp = true
	}
	return out, nil
}

// PlayCard moves a hand card into the first empty slot and replenishes
// the hand with one balanced draw.
func (e *Engine) PlayCard(cardID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.characterID == "" {
		return ErrNoEncounter
	}

	slot := -1
	for i, c := range e.slots {
		if c == nil {
			slot = i
			break
		}
	}
	if slot == -1 {
		return ErrSlotsFull
	}

	for i, c := range e.cards {
		if c.ID != cardID {
			continue
		}
		e.cues(CueConfirm)
		e.idleSeconds = 0

		card := c
		e.slots[slot] = &card
		e.cards = append(e.cards[:i], e.cards[i+1:]...)
		e.cards = append(e.cards, e.builder.DrawBalanced(catalog.Cards, 1, e.cards)...)
		return nil
	}
	return errors.New("card not in hand")
}

// ClearSlot discards the card in a slot. It does not return to the hand.
func (e *Engine) ClearSlot(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index < 0 || index >= len(e.slots) || e.slots[index] == nil {
		return errors.New("empty slot")
	}
	e.cues(CueCancel)
	e.idleSeconds = 0
	e.slots[index] = nil
	return nil
}

// Shuffle trades one point of affection for a fresh hand. The slots
// and the monthly turn budget are untouched.
func (e *Engine) Shuffle() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.characterID == "" {
		return ErrNoEncounter
	}
	if e.state.Affection(e.characterID) <= types.MinAffection {
		return ErrAffectionFloor
	}

	e.cues(CueCancel)
	e.cues(CueNegative)
	e.idleSeconds = 0
	e.state.AdjustAffection(e.characterID, -1)
	e.cards = e.builder.DrawBalanced(catalog.Cards, types.MaxHandSize, nil)
	e.state.AppendDialogue(types.DialogueLine{Speaker: "System", Text: "カードを交換しました (好感度 -1)"})
	return nil
}

// Tick advances the idle clock by one second. Once the player has
// stalled past the threshold the character interrupts: slots clear, a
// waiting question lands, and a response hand is dealt. At most one
// interruption fires per encounter. Returns true when it fires.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.characterID == "" || e.aiThinking || e.state.TurnCount() >= types.MaxTurns {
		return false
	}

	e.idleSeconds++
	if e.idleSeconds <= IdleThresholdSeconds || e.interrupted {
		return false
	}

	e.interrupted = true
	e.slots = make([]*types.Card, types.MaxSlots)

	char := catalog.Characters[e.characterID]
	line := "ねえ、聞いてる？"
	if len(char.WaitingMessages) > 0 {
		line = char.WaitingMessages[e.rng.Intn(len(char.WaitingMessages))]
	}
	e.state.AppendDialogue(types.DialogueLine{Speaker: char.Name, Text: line})

	e.status = types.StatusQuestion
	e.cues(CueCardDraw)
	e.cards = e.builder.ResponseHand(catalog.Cards, catalog.ResponseCards, types.MaxHandSize)
	if e.reaction == types.ReactionNormal {
		e.reaction = types.ReactionBored
	}
	return true
}

// End closes the encounter. In-flight collaborator results for it are
// dropped when they land.
func (e *Engine) End() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation = uuid.NewString()
	e.characterID = ""
	e.cards = nil
	e.slots = make([]*types.Card, types.MaxSlots)
	e.status = types.StatusWaiting
	e.reaction = types.ReactionNormal
	e.aiThinking = false
	e.interrupted = false
	e.idleSeconds = 0
}

// Hand returns a copy of the current hand.
func (e *Engine) Hand() []types.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]types.Card(nil), e.cards...)
}

// Slots returns a copy of the sentence slots; empty slots are nil.
func (e *Engine) Slots() []*types.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*types.Card, len(e.slots))
	for i, c := range e.slots {
		if c != nil {
			card := *c
			out[i] = &card
		}
	}
	return out
}

// CharacterID returns the active character, or "".
func (e *Engine) CharacterID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.characterID
}

// Status returns the conversation status shown to the player.
func (e *Engine) Status() types.ConversationStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Reaction returns the character's current visible reaction.
func (e *Engine) Reaction() types.Reaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reaction
}

// Owner returns whose move it is.
func (e *Engine) Owner() Owner {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.owner
}

// Consultation reports whether this encounter opened as a consultation.
func (e *Engine) Consultation() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.consultation
}

// Interrupted reports whether the idle interruption already fired.
func (e *Engine) Interrupted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interrupted
}
