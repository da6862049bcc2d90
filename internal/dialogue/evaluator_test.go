package dialogue

import (
	"testing"

	"github.com/kotonoha/days/internal/types"
)

func testCard(base, text string, typ types.CardType, tags ...string) types.Card {
	return types.Card{ID: base + "_x1_bal", Base: base, Text: text, Type: typ, Tags: tags, Rarity: 1}
}

func testChar() types.Character {
	return types.Character{
		ID:           "reina",
		PositiveTags: []string{"Romance", "Game", "Honest"},
		NegativeTags: []string{"Study", "Boring"},
		Secrets:      []string{"実は乙女ゲームが大好き"},
		Worries:      []string{"成績が下がり気味"},
		Combos:       [][]string{{"ctx_game", "act4"}},
	}
}

func TestEvaluateGrammaticalRomanceSentence(t *testing.T) {
	cards := []types.Card{
		testCard("rom1", "好き", types.CardNoun, "Romance", "Feeling"),
		testCard("prt5", "です", types.CardParticle, "Polite"),
		testCard("act5", "信じる", types.CardVerb, "Trust"),
	}
	got := Evaluate(cards, testChar())

	if got.Sentence != "好きです信じる" {
		t.Errorf("sentence = %q", got.Sentence)
	}
	// +5 romance tag, +10 grammar, then *1.2 = 18.
	if got.RawScore != 18 {
		t.Errorf("raw score = %d, want 18", got.RawScore)
	}
	if got.Delta != 18 {
		t.Errorf("delta = %d, want 18", got.Delta)
	}
	if got.Reaction != types.ReactionBlush {
		t.Errorf("reaction = %s, want blush", got.Reaction)
	}
}

func TestEvaluateComboAndPersonaStack(t *testing.T) {
	cards := []types.Card{
		testCard("ctx_game", "ゲーム", types.CardNoun, "Game"),
		testCard("prt1", "が", types.CardParticle, "Basic"),
		testCard("act4", "遊ぶ", types.CardVerb, "Play"),
	}
	got := Evaluate(cards, testChar())

	// +5 game tag, +15 combo, +20 secret substring, +10 grammar = 50,
	// *1.2 = 60, clamped to 35.
	if got.RawScore != 60 {
		t.Errorf("raw score = %d, want 60", got.RawScore)
	}
	if got.Delta != MaxDelta {
		t.Errorf("delta = %d, want %d", got.Delta, MaxDelta)
	}
	if got.Reaction != types.ReactionHappy {
		t.Errorf("reaction = %s, want happy", got.Reaction)
	}
}

func TestEvaluateNegativeTagsClampLow(t *testing.T) {
	cards := []types.Card{
		testCard("sch1", "勉強", types.CardNoun, "Study"),
		testCard("sch2", "テスト", types.CardNoun, "Study"),
		testCard("sch4", "宿題", types.CardNoun, "Study", "Boring"),
		testCard("sch5", "授業", types.CardNoun, "Study"),
	}
	got := Evaluate(cards, testChar())

	if got.RawScore != -32 {
		t.Errorf("raw score = %d, want -32", got.RawScore)
	}
	if got.Delta != MinDelta {
		t.Errorf("delta = %d, want %d", got.Delta, MinDelta)
	}
	if got.Reaction != types.ReactionBored {
		t.Errorf("reaction = %s, want bored", got.Reaction)
	}
}

func TestEvaluateMultiplierAppliesToNegativeScores(t *testing.T) {
	cards := []types.Card{
		testCard("sch1", "勉強", types.CardNoun, "Study"),
		testCard("prt1", "が", types.CardParticle, "Basic"),
		testCard("v_like", "きらい", types.CardVerb, "Feeling"),
	}
	got := Evaluate(cards, testChar())

	// -8 study, +10 grammar = 2, *1.2 rounds to 2.
	if got.RawScore != 2 {
		t.Errorf("raw score = %d, want 2", got.RawScore)
	}
	if got.Reaction != types.ReactionNormal {
		t.Errorf("reaction = %s, want normal", got.Reaction)
	}
}

func TestEvaluateAdjectiveNounPair(t *testing.T) {
	cards := []types.Card{
		testCard("adj1", "かわいい", types.CardAdjective, "Compliment"),
		testCard("ctx_cat", "猫", types.CardNoun, "Animal"),
	}
	got := Evaluate(cards, testChar())

	if got.RawScore != 5 {
		t.Errorf("raw score = %d, want 5", got.RawScore)
	}
	if got.Reaction != types.ReactionNormal {
		t.Errorf("reaction = %s, want normal", got.Reaction)
	}
}

func TestEvaluateSingleRuneTextSkipsPersonaBonus(t *testing.T) {
	cards := []types.Card{
		testCard("one", "好", types.CardNoun),
	}
	char := testChar()
	char.Secrets = []string{"好きな人がいる"}
	got := Evaluate(cards, char)
	if got.RawScore != 0 {
		t.Errorf("raw score = %d, want 0 for single-rune text", got.RawScore)
	}
}

func TestEvaluateModerateNegativeIsAngry(t *testing.T) {
	cards := []types.Card{
		testCard("sch1", "勉強", types.CardNoun, "Study"),
		testCard("sch4", "宿題", types.CardNoun, "Boring"),
	}
	got := Evaluate(cards, testChar())
	if got.Delta != -16 {
		t.Errorf("delta = %d, want -16", got.Delta)
	}
	if got.Reaction != types.ReactionAngry {
		t.Errorf("reaction = %s, want angry", got.Reaction)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	cards := []types.Card{
		testCard("ctx_game", "ゲーム", types.CardNoun, "Game"),
		testCard("act4", "遊ぶ", types.CardVerb, "Play"),
	}
	first := Evaluate(cards, testChar())
	for i := 0; i < 5; i++ {
		if got := Evaluate(cards, testChar()); got != first {
			t.Fatalf("evaluation drifted on run %d: %+v vs %+v", i, got, first)
		}
	}
}
