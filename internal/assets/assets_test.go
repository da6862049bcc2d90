package assets

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/kotonoha/days/internal/catalog"
	"github.com/kotonoha/days/internal/types"
)

type fakeSource struct {
	calls int
	fail  bool
}

func (f *fakeSource) Generate(ctx context.Context, prompt, aspectRatio string) (string, error) {
	f.calls++
	if f.fail {
		return "", fmt.Errorf("quota exceeded")
	}
	return fmt.Sprintf("data:image/png;base64,img%d", f.calls), nil
}

func TestSpritePromptSeasonalUniform(t *testing.T) {
	char := catalog.Characters["reina"]

	summer := SpritePrompt(char, types.ReactionHappy, 7)
	if !strings.Contains(summer, "summer uniform") {
		t.Error("July sprite not in summer uniform")
	}
	if !strings.Contains(summer, "big smile") {
		t.Error("happy expression missing from prompt")
	}
	if !strings.Contains(summer, "#00FF00") {
		t.Error("green screen backdrop missing from prompt")
	}

	winter := SpritePrompt(char, types.ReactionNormal, 12)
	if !strings.Contains(winter, "winter uniform") {
		t.Error("December sprite not in winter uniform")
	}
}

func TestSpritePromptUnknownExpression(t *testing.T) {
	got := SpritePrompt(catalog.Characters["akane"], types.Reaction("confused"), 5)
	if !strings.Contains(got, "neutral expression") {
		t.Error("unknown expression did not fall back to neutral")
	}
}

func TestStoreSpriteCachesPerSeason(t *testing.T) {
	src := &fakeSource{}
	store := NewStore(src)
	char := catalog.Characters["shiori"]

	first := store.Sprite(context.Background(), char, types.ReactionHappy, 6)
	second := store.Sprite(context.Background(), char, types.ReactionHappy, 8)
	if first != second {
		t.Error("same expression and season regenerated")
	}
	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}

	store.Sprite(context.Background(), char, types.ReactionHappy, 12)
	if src.calls != 2 {
		t.Errorf("winter sprite did not trigger a new generation, calls = %d", src.calls)
	}
}

func TestStoreSpriteFallsBack(t *testing.T) {
	char := catalog.Characters["reina"]

	if got := NewStore(nil).Sprite(context.Background(), char, types.ReactionNormal, 4); got != char.FallbackImageURL {
		t.Errorf("nil source sprite = %q, want fallback", got)
	}
	if got := NewStore(&fakeSource{fail: true}).Sprite(context.Background(), char, types.ReactionNormal, 4); got != char.FallbackImageURL {
		t.Errorf("failing source sprite = %q, want fallback", got)
	}
}

func TestStoreBackgroundPrefersBundledArt(t *testing.T) {
	src := &fakeSource{}
	store := NewStore(src)

	loc := catalog.Locations[types.LocClassroom]
	if got := store.Background(context.Background(), loc); got != loc.FallbackImageURL {
		t.Errorf("background = %q, want bundled %q", got, loc.FallbackImageURL)
	}
	if src.calls != 0 {
		t.Errorf("bundled background still hit the generator %d times", src.calls)
	}
}

func TestStoreBackgroundGeneratesAndCaches(t *testing.T) {
	src := &fakeSource{}
	store := NewStore(src)

	loc := types.Location{
		ID:               types.LocCafe,
		Name:             "カフェ",
		Prompt:           "cozy cafe interior",
		FallbackImageURL: "https://example.com/cafe.jpg",
	}
	first := store.Background(context.Background(), loc)
	second := store.Background(context.Background(), loc)
	if first != second || src.calls != 1 {
		t.Errorf("background not cached: %q vs %q, calls = %d", first, second, src.calls)
	}
	if first == loc.FallbackImageURL {
		t.Error("generation result discarded for fallback")
	}
}
