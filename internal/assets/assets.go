// Package assets builds image prompts for sprites and backgrounds and
// caches generated results so each scene is rendered at most once.
package assets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kotonoha/days/internal/types"
)

// ImageSource renders a prompt at an aspect ratio into an image URL.
type ImageSource interface {
	Generate(ctx context.Context, prompt, aspectRatio string) (string, error)
}

var expressionPrompts = map[types.Reaction]string{
	types.ReactionNormal:   "neutral expression, calm look",
	types.ReactionHappy:    "laughing, big smile, joyful expression, closed eyes smile",
	types.ReactionSad:      "sad expression, eyebrows furrowed, looking down, slight tears",
	types.ReactionAngry:    "angry expression, shouting, furrowed brows, pouting",
	types.ReactionBlush:    "heavily blushing face, shy, embarrassed, looking away",
	types.ReactionBored:    "bored expression, sighing, dull eyes",
	types.ReactionLookaway: "looking away, avoiding eye contact, shy",
	types.ReactionAnnoyed:  "annoyed expression, pouting, disgusted look",
}

const (
	summerUniform = "wearing the Kotonoha High School summer uniform: a short-sleeved white dress shirt (crisp texture), a red tartan plaid pleated skirt (knee-length), and a lightweight cream-colored knit vest (optional), no blazer."
	winterUniform = "wearing the Kotonoha High School winter uniform: a fitted navy blue blazer with a gold school emblem on the chest pocket, a crisp white button-up shirt underneath, a red tartan plaid pleated skirt (knee-length), and black loafers."
)

// SummerMonth reports whether the summer uniform is in effect.
func SummerMonth(month int) bool {
	return month >= 4 && month <= 10
}

// SpritePrompt composes the generation prompt for a character sprite.
// The solid green backdrop lets the presentation layer key it out.
func SpritePrompt(char *types.Character, expression types.Reaction, month int) string {
	uniform := winterUniform
	if SummerMonth(month) {
		uniform = summerUniform
	}
	exprPrompt, ok := expressionPrompts[expression]
	if !ok {
		exprPrompt = "neutral expression"
	}

	return fmt.Sprintf(`(Masterpiece, Best Quality), visual novel character sprite, solo,
%s, %s.
%s.
%s
Standing pose, facing viewer (or slight angle if shy).
Anime cel shading, clean lines, high quality art.
Background is solid green color #00FF00.
NO TEXT, NO LOGOS, NO LAYOUT ELEMENTS.`,
		char.Name, char.VisualTraits, exprPrompt, uniform)
}

// BackgroundPrompt composes the generation prompt for a location.
func BackgroundPrompt(loc types.Location) string {
	return loc.Prompt + "\nNO TEXT, NO WATERMARK."
}

// localAsset reports whether a URL points at bundled art that should
// never be regenerated.
func localAsset(url string) bool {
	return strings.HasPrefix(url, "/") ||
		strings.HasPrefix(url, "./") ||
		strings.HasPrefix(url, "assets/") ||
		strings.Contains(url, "/assets/") ||
		strings.Contains(url, "drive.google.com")
}

// Store caches generated images. Sprites are keyed per character,
// expression, and uniform season; backgrounds per location. A nil
// source serves fallback art only.
type Store struct {
	source ImageSource

	mu      sync.Mutex
	sprites map[string]string
	bgs     map[types.LocationID]string
}

// NewStore returns a Store backed by source; source may be nil.
func NewStore(source ImageSource) *Store {
	return &Store{
		source:  source,
		sprites: make(map[string]string),
		bgs:     make(map[types.LocationID]string),
	}
}

func spriteKey(charID string, expression types.Reaction, month int) string {
	season := "winter"
	if SummerMonth(month) {
		season = "summer"
	}
	return fmt.Sprintf("%s/%s/%s", charID, expression, season)
}

// Sprite returns a sprite URL for the character. Generation failures
// fall back to the character's bundled portrait.
func (s *Store) Sprite(ctx context.Context, char *types.Character, expression types.Reaction, month int) string {
	key := spriteKey(char.ID, expression, month)

	s.mu.Lock()
	if url, ok := s.sprites[key]; ok {
		s.mu.Unlock()
		return url
	}
	s.mu.Unlock()

	if s.source == nil {
		return char.FallbackImageURL
	}
	url, err := s.source.Generate(ctx, SpritePrompt(char, expression, month), "3:4")
	if err != nil || url == "" {
		return char.FallbackImageURL
	}

	s.mu.Lock()
	s.sprites[key] = url
	s.mu.Unlock()
	return url
}

// Background returns a background URL for the location. Bundled art
// wins over generation; failures fall back to the bundled URL.
func (s *Store) Background(ctx context.Context, loc types.Location) string {
	if localAsset(loc.FallbackImageURL) {
		return loc.FallbackImageURL
	}

	s.mu.Lock()
	if url, ok := s.bgs[loc.ID]; ok {
		s.mu.Unlock()
		return url
	}
	s.mu.Unlock()

	if s.source == nil || loc.Prompt == "" {
		return loc.FallbackImageURL
	}
	url, err := s.source.Generate(ctx, BackgroundPrompt(loc), "16:9")
	if err != nil || url == "" {
		return loc.FallbackImageURL
	}

	s.mu.Lock()
	s.bgs[loc.ID] = url
	s.mu.Unlock()
	return url
}
