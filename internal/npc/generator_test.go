package npc

import (
	"context"
	"fmt"
	"iter"
	"math/rand"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/kotonoha/days/internal/catalog"
	"github.com/kotonoha/days/internal/types"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		if f.err != nil {
			yield(nil, f.err)
			return
		}
		yield(&model.LLMResponse{
			Content: &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: f.reply}},
			},
		}, nil)
	}
}

func TestGeneratorInitiative(t *testing.T) {
	llm := &fakeLLM{reply: `{"text": "ねえ、ゲーム好き？", "keywords": ["ゲーム"], "topics": ["Game"], "status": "QUESTION"}`}
	g := NewGenerator(llm)

	got, err := g.Initiative(context.Background(), InitiativeRequest{
		Character:    catalog.Characters["reina"],
		LocationName: "教室",
		Affection:    30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "ねえ、ゲーム好き？" {
		t.Errorf("text = %q", got.Text)
	}
	if got.Status != types.StatusQuestion {
		t.Errorf("status = %q", got.Status)
	}
	if len(got.Topics) != 1 || got.Topics[0] != "Game" {
		t.Errorf("topics = %v", got.Topics)
	}
}

func TestGeneratorInteraction(t *testing.T) {
	llm := &fakeLLM{reply: `{"playerLine": "「一緒にゲームしよう」", "characterLine": "や、やった……！", "reaction": "blush", "status": "WAITING"}`}
	g := NewGenerator(llm)

	got, err := g.Interaction(context.Background(), InteractionRequest{
		Character:    catalog.Characters["reina"],
		PlayerText:   "ゲーム一緒に遊ぶ",
		Score:        25,
		Affection:    40,
		LocationName: "教室",
		History: []types.DialogueLine{
			{Speaker: "玲奈", Text: "ひま？"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Reaction != types.ReactionBlush {
		t.Errorf("reaction = %q", got.Reaction)
	}
	if got.CharacterLine != "や、やった……！" {
		t.Errorf("character line = %q", got.CharacterLine)
	}
}

func TestGeneratorPropagatesModelError(t *testing.T) {
	g := NewGenerator(&fakeLLM{err: fmt.Errorf("offline")})
	if _, err := g.Initiative(context.Background(), InitiativeRequest{Character: catalog.Characters["akane"]}); err == nil {
		t.Fatal("expected error from failing model")
	}
}

func TestGeneratorRejectsMalformedReply(t *testing.T) {
	g := NewGenerator(&fakeLLM{reply: "I refuse to answer in JSON."})
	if _, err := g.Interaction(context.Background(), InteractionRequest{Character: catalog.Characters["akane"]}); err == nil {
		t.Fatal("expected error for malformed reply")
	}
}

func TestGeneratorUnconfigured(t *testing.T) {
	var g *Generator
	if _, err := g.Initiative(context.Background(), InitiativeRequest{}); err == nil {
		t.Fatal("expected error from nil generator")
	}
}

func TestFallbackInitiativeUsesWaitingLines(t *testing.T) {
	f := NewFallback(rand.New(rand.NewSource(1)))
	char := catalog.Characters["shiori"]

	got, err := f.Initiative(context.Background(), InitiativeRequest{Character: char})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != types.StatusWaiting {
		t.Errorf("status = %q, want WAITING", got.Status)
	}
	var known bool
	for _, msg := range char.WaitingMessages {
		if msg == got.Text {
			known = true
		}
	}
	if !known {
		t.Errorf("text %q is not one of shiori's waiting lines", got.Text)
	}
}

func TestFallbackInteractionEchoesPlayer(t *testing.T) {
	f := NewFallback(rand.New(rand.NewSource(2)))
	got, err := f.Interaction(context.Background(), InteractionRequest{
		Character:  catalog.Characters["reina"],
		PlayerText: "好きです",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PlayerLine != "好きです" || got.CharacterLine != "..." {
		t.Errorf("unexpected fallback interaction %+v", got)
	}
	if got.Reaction != types.ReactionNormal || got.Status != types.StatusWaiting {
		t.Errorf("unexpected fallback disposition %+v", got)
	}
}
