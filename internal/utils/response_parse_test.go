package utils

import (
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestParseInitiativeOutput(t *testing.T) {
	raw := `{"text": "ねえ、週末ひま？", "keywords": ["映画", "週末"], "topics": ["Date"], "status": "QUESTION"}`
	got, err := ParseInitiativeOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "ねえ、週末ひま？" {
		t.Errorf("text = %q", got.Text)
	}
	if len(got.Keywords) != 2 || got.Keywords[0] != "映画" {
		t.Errorf("keywords = %v", got.Keywords)
	}
	if got.Status != "QUESTION" {
		t.Errorf("status = %q", got.Status)
	}
}

func TestParseInitiativeOutputWithSurroundingProse(t *testing.T) {
	raw := "Sure! Here is the JSON:\n```json\n" +
		`{"text": "……なに？", "keywords": [], "topics": ["Emotion"], "status": "WAITING"}` +
		"\n```"
	got, err := ParseInitiativeOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != "WAITING" {
		t.Errorf("status = %q", got.Status)
	}
}

func TestParseInitiativeOutputRejectsBadStatus(t *testing.T) {
	raw := `{"text": "やあ", "keywords": [], "topics": [], "status": "THINKING"}`
	if _, err := ParseInitiativeOutput(raw); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestParseInitiativeOutputRejectsMissingFields(t *testing.T) {
	raw := `{"text": "やあ", "status": "WAITING"}`
	if _, err := ParseInitiativeOutput(raw); err == nil {
		t.Fatal("expected error for missing required fields")
	}
}

func TestParseInitiativeOutputRejectsBlankText(t *testing.T) {
	raw := `{"text": "   ", "keywords": [], "topics": [], "status": "WAITING"}`
	if _, err := ParseInitiativeOutput(raw); err == nil {
		t.Fatal("expected error for blank text")
	}
}

func TestParseInteractionOutput(t *testing.T) {
	raw := `{"playerLine": "「ゲーム、一緒にやらない？」", "characterLine": "えっ、ほんと？やる！", "reaction": "happy", "status": "WAITING"}`
	got, err := ParseInteractionOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got.PlayerLine, "ゲーム") {
		t.Errorf("player line = %q", got.PlayerLine)
	}
	if got.Reaction != "happy" {
		t.Errorf("reaction = %q", got.Reaction)
	}
}

func TestParseInteractionOutputRejectsUnknownReaction(t *testing.T) {
	raw := `{"playerLine": "a", "characterLine": "b", "reaction": "ecstatic", "status": "WAITING"}`
	if _, err := ParseInteractionOutput(raw); err == nil {
		t.Fatal("expected error for unknown reaction")
	}
}

func TestParseInteractionOutputRejectsGarbage(t *testing.T) {
	if _, err := ParseInteractionOutput("not json at all"); err == nil {
		t.Fatal("expected error for unparseable payload")
	}
}

func TestContentText(t *testing.T) {
	if got := ContentText(nil); got != "" {
		t.Errorf("nil content = %q, want empty", got)
	}

	content := genai.NewContentFromText("{\"text\":", "model")
	content.Parts = append(content.Parts, nil, &genai.Part{Text: " \"やあ\"}"})
	if got := ContentText(content); got != `{"text": "やあ"}` {
		t.Errorf("joined text = %q", got)
	}
}
