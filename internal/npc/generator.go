package npc

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/kotonoha/days/internal/types"
	"github.com/kotonoha/days/internal/utils"
)

// Generator is a Collaborator backed by a language model. Responses
// are requested as strict JSON and validated before use; any failure
// surfaces as an error so the caller can fall back.
type Generator struct {
	model model.LLM
}

// NewGenerator returns a Generator.
func NewGenerator(m model.LLM) *Generator {
	return &Generator{model: m}
}

var initiativeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text":     {Type: genai.TypeString},
		"keywords": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"topics":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"status":   {Type: genai.TypeString, Enum: []string{"QUESTION", "WAITING"}},
	},
	Required: []string{"text", "keywords", "topics", "status"},
}

var interactionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"playerLine":    {Type: genai.TypeString},
		"characterLine": {Type: genai.TypeString},
		"reaction": {Type: genai.TypeString, Enum: []string{
			"normal", "happy", "sad", "angry", "blush", "bored", "lookaway", "annoyed",
		}},
		"status": {Type: genai.TypeString, Enum: []string{"QUESTION", "WAITING"}},
	},
	Required: []string{"playerLine", "characterLine", "reaction", "status"},
}

// Initiative asks the model for a character-opened line.
func (g *Generator) Initiative(ctx context.Context, req InitiativeRequest) (Initiative, error) {
	if g == nil || g.model == nil {
		return Initiative{}, fmt.Errorf("dialogue generator not configured")
	}

	raw, err := g.generate(ctx, initiativePrompt(req), initiativeSchema)
	if err != nil {
		return Initiative{}, err
	}
	parsed, err := utils.ParseInitiativeOutput(raw)
	if err != nil {
		return Initiative{}, err
	}
	return Initiative{
		Text:     parsed.Text,
		Keywords: parsed.Keywords,
		Topics:   parsed.Topics,
		Status:   types.ConversationStatus(parsed.Status),
	}, nil
}

// Interaction asks the model to interpret the played sentence and
// answer in character.
func (g *Generator) Interaction(ctx context.Context, req InteractionRequest) (Interaction, error) {
	if g == nil || g.model == nil {
		return Interaction{}, fmt.Errorf("dialogue generator not configured")
	}

	raw, err := g.generate(ctx, interactionPrompt(req), interactionSchema)
	if err != nil {
		return Interaction{}, err
	}
	parsed, err := utils.ParseInteractionOutput(raw)
	if err != nil {
		return Interaction{}, err
	}
	return Interaction{
		PlayerLine:    parsed.PlayerLine,
		CharacterLine: parsed.CharacterLine,
		Reaction:      types.Reaction(parsed.Reaction),
		Status:        types.ConversationStatus(parsed.Status),
	}, nil
}

func (g *Generator) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	req := &model.LLMRequest{
		Contents: []*genai.Content{
			genai.NewContentFromText(prompt, "user"),
		},
		Config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	seq := g.model.GenerateContent(ctx, req, false)
	var resp *model.LLMResponse
	var err error
	seq(func(r *model.LLMResponse, e error) bool {
		resp = r
		err = e
		return false
	})
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("empty model response")
	}
	return utils.ContentText(resp.Content), nil
}

func initiativePrompt(req InitiativeRequest) string {
	char := req.Character
	var sb strings.Builder
	fmt.Fprintf(&sb, `You are simulating a Japanese high school dating sim character.
Character: %s
Profile: %s
Persona Tone: %s
Secrets: %s
Worries: %s
Location: %s
Affection: %d
`, char.Name, char.Description, char.Tone,
		strings.Join(char.Secrets, ", "), strings.Join(char.Worries, ", "),
		req.LocationName, req.Affection)

	if req.Consultation {
		sb.WriteString(`
CRITICAL TASK: The character trusts the protagonist enough to share a deep secret or worry.
Choose one worry or secret and talk about it seriously or hesitantly.
Ask for their advice or listening ear.
`)
	} else {
		sb.WriteString(`
Task: Generate a line where the character speaks to the protagonist FIRST.
If Status is 'QUESTION': Ask about hobbies, school, food, or current situation.
If Status is 'WAITING': Ask a question about the protagonist's relationship with you or impression of you.
`)
	}

	sb.WriteString(`
Output Requirements:
1. "text": The character's spoken line (Japanese).
2. "keywords": 2-3 specific Japanese keywords relevant to the answer.
3. "topics": 1-2 General Topic Tags for card retrieval (e.g., "School", "Food", "Love", "Slang", "Action").
4. "status": 'QUESTION' or 'WAITING'.
Return strictly JSON.
`)
	return sb.String()
}

func interactionPrompt(req InteractionRequest) string {
	char := req.Character
	var history strings.Builder
	for _, line := range req.History {
		fmt.Fprintf(&history, "%s: %s\n", line.Speaker, line.Text)
	}

	return fmt.Sprintf(`You are a dialogue engine for a Japanese dating sim game.

Context:
- Character: %s
- Profile: %s
- Tone: %s
- Hobbies: %s
- Location: %s
- Current Affection: %d
- Player Cards Used: "%s" (Interpreted as broken Japanese, your job is to guess the intent)
- Match Score: %d

History:
%s
Task:
1. "playerLine": Rewrite the card text into natural Japanese speech contextually suitable for the protagonist.
2. "characterLine": Character's response.
   - React appropriately to the player's interpreted intent.
   - Be conversational. It's okay if the conversation is a bit awkward or funny ("mismatch").
3. "reaction": Choose visual expression: 'normal', 'happy', 'sad', 'angry', 'blush', 'bored', 'lookaway', 'annoyed'.
4. "status": 'QUESTION' (follow-up) or 'WAITING' (end topic).

Return strictly JSON.
`, char.Name, char.Description, char.Tone, char.HobbiesDetail,
		req.LocationName, req.Affection, req.PlayerText, req.Score,
		history.String())
}
