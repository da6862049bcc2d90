package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"google.golang.org/genai"

	"github.com/kotonoha/days/internal/types"
)

// ContentText flattens the text parts of a model reply into the raw
// string the parsers below consume.
func ContentText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	texts := make([]string, 0, len(content.Parts))
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "")
}

// InitiativeOutput is the structured payload a character produces when
// opening a conversation turn.
type InitiativeOutput struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
	Topics   []string `json:"topics"`
	Status   string   `json:"status"`
}

// InteractionOutput is the structured payload produced in response to
// a played card sentence.
type InteractionOutput struct {
	PlayerLine    string `json:"playerLine"`
	CharacterLine string `json:"characterLine"`
	Reaction      string `json:"reaction"`
	Status        string `json:"status"`
}

var statusEnum = []any{string(types.StatusQuestion), string(types.StatusWaiting)}

var initiativeSchema = mustResolve(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"text":     {Type: "string"},
		"keywords": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		"topics":   {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		"status":   {Type: "string", Enum: statusEnum},
	},
	Required: []string{"text", "keywords", "topics", "status"},
})

var interactionSchema = mustResolve(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"playerLine":    {Type: "string"},
		"characterLine": {Type: "string"},
		"reaction":      {Type: "string", Enum: reactionEnum()},
		"status":        {Type: "string", Enum: statusEnum},
	},
	Required: []string{"playerLine", "characterLine", "reaction", "status"},
})

func reactionEnum() []any {
	enum := make([]any, len(types.Reactions))
	for i, r := range types.Reactions {
		enum[i] = string(r)
	}
	return enum
}

func mustResolve(s *jsonschema.Schema) *jsonschema.Resolved {
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic(err)
	}
	return resolved
}

// extractJSON cuts a raw model reply down to its outermost JSON object
// so stray prose or code fences around it do not break decoding.
func extractJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}
	return clean
}

func validate(resolved *jsonschema.Resolved, payload []byte) error {
	var generic map[string]any
	if err := json.Unmarshal(payload, &generic); err != nil {
		return err
	}
	return resolved.Validate(generic)
}

// ParseInitiativeOutput extracts and validates a conversation opener.
func ParseInitiativeOutput(raw string) (InitiativeOutput, error) {
	payload := []byte(extractJSON(raw))
	if err := validate(initiativeSchema, payload); err != nil {
		return InitiativeOutput{}, fmt.Errorf("invalid initiative output: %w", err)
	}

	var output InitiativeOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		return InitiativeOutput{}, fmt.Errorf("failed to parse initiative output: %w", err)
	}
	output.Text = strings.TrimSpace(output.Text)
	if output.Text == "" {
		return InitiativeOutput{}, fmt.Errorf("missing text")
	}
	return output, nil
}

// ParseInteractionOutput extracts and validates a dialogue exchange.
func ParseInteractionOutput(raw string) (InteractionOutput, error) {
	payload := []byte(extractJSON(raw))
	if err := validate(interactionSchema, payload); err != nil {
		return InteractionOutput{}, fmt.Errorf("invalid interaction output: %w", err)
	}

	var output InteractionOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		return InteractionOutput{}, fmt.Errorf("failed to parse interaction output: %w", err)
	}
	output.PlayerLine = strings.TrimSpace(output.PlayerLine)
	output.CharacterLine = strings.TrimSpace(output.CharacterLine)
	if output.CharacterLine == "" {
		return InteractionOutput{}, fmt.Errorf("missing character line")
	}
	return output, nil
}
