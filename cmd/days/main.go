package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"github.com/kotonoha/days/internal/assets"
	"github.com/kotonoha/days/internal/calendar"
	"github.com/kotonoha/days/internal/catalog"
	"github.com/kotonoha/days/internal/config"
	"github.com/kotonoha/days/internal/encounter"
	"github.com/kotonoha/days/internal/hand"
	"github.com/kotonoha/days/internal/models"
	"github.com/kotonoha/days/internal/npc"
	"github.com/kotonoha/days/internal/session"
	"github.com/kotonoha/days/internal/types"
)

func main() {
	// Logs go to stderr so they never interleave with game text.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nまた明日。")
		cancel()
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	collab := buildCollaborator(ctx, cfg)
	fallback := npc.NewFallback(rand.New(rand.NewSource(seed + 1)))
	if collab == nil {
		fmt.Println("(オフラインモード: 定型の会話で進みます)")
		collab = fallback
	}

	var imageStore *assets.Store
	if cfg.GoogleAPIKey != "" {
		gen, err := models.NewGeminiImageGenerator(ctx, cfg.GoogleAPIKey, cfg.ImageModel)
		if err != nil {
			slog.Warn("image generation unavailable", "error", err)
			imageStore = assets.NewStore(nil)
		} else {
			imageStore = assets.NewStore(gen)
		}
	} else {
		imageStore = assets.NewStore(nil)
	}

	game := &game{
		ctx:     ctx,
		rng:     rng,
		state:   session.NewState(catalog.CharacterOrder),
		spawner: calendar.NewSpawner(rng),
		images:  imageStore,
		reader:  bufio.NewScanner(os.Stdin),
	}
	// The terminal build has no audio, cues are dropped.
	game.engine = encounter.New(rng, hand.NewBuilder(rng), collab, fallback, game.state, func(encounter.Cue) {})

	game.run()
}

func buildCollaborator(ctx context.Context, cfg config.Config) npc.Collaborator {
	var (
		llm model.LLM
		err error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		llm, err = gemini.NewModel(ctx, cfg.LLMModel, &genai.ClientConfig{
			APIKey:  cfg.GoogleAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
	case config.ProviderGrok:
		llm, err = models.NewGrokModel(ctx, cfg.LLMModel, &genai.ClientConfig{APIKey: cfg.XAIAPIKey})
	case config.ProviderOpenAI:
		llm, err = models.NewOpenAIModel(ctx, cfg.LLMModel, &genai.ClientConfig{APIKey: cfg.OpenAIAPIKey})
	default:
		return nil
	}
	if err != nil {
		slog.Warn("dialogue model unavailable", "provider", cfg.Provider, "error", err)
		return nil
	}
	return npc.NewGenerator(llm)
}

type game struct {
	ctx     context.Context
	rng     *rand.Rand
	state   *session.State
	engine  *encounter.Engine
	spawner *calendar.Spawner
	images  *assets.Store
	reader  *bufio.Scanner
	lastLoc types.LocationID

	mu      sync.Mutex
	printed int
}

func (g *game) run() {
	fmt.Println("=== ことのはデイズ ===")
	fmt.Println("言葉のカードで会話を紡ぐ一年間。")

	for !calendar.YearOver(g.state.EventIndex()) {
		event, _ := calendar.CurrentEvent(g.state.EventIndex())
		fmt.Printf("\n◆ %d月 「%s」 %s\n", event.Month, event.Title, event.Description)

		if !g.runMonth() {
			return
		}
		g.state.CompleteMonth()
		g.lastLoc = ""
		g.mu.Lock()
		g.printed = 0
		g.mu.Unlock()
	}

	g.showEnding()
}

// runMonth drives the map screen until the month ends. Returns false
// when the player quits.
func (g *game) runMonth() bool {
	for {
		locs := calendar.AvailableLocations(g.state.EventIndex())
		fmt.Printf("\n残り移動回数: %d  会話ターン: %d/%d\n", g.state.MovesLeft(), g.state.TurnCount(), types.MaxTurns)
		for i, loc := range locs {
			fmt.Printf("  %2d) %s\n", i+1, loc.Name)
		}
		fmt.Println("  next) 月を終える   status) 好感度   quit) やめる")

		input := g.prompt("どこへ行く? ")
		switch input {
		case "quit", "q":
			return false
		case "next", "n":
			return true
		case "status", "s":
			g.showStatus()
		default:
			idx, err := strconv.Atoi(input)
			if err != nil || idx < 1 || idx > len(locs) {
				fmt.Println("……?")
				continue
			}
			loc := locs[idx-1]
			// Staying put costs nothing, moving elsewhere costs a move.
			if loc.ID != g.lastLoc {
				if g.state.MovesLeft() <= 0 {
					fmt.Println("今日はもう動けない。")
					continue
				}
				g.state.UseMove()
				g.lastLoc = loc.ID
			}
			g.visit(loc)
		}
	}
}

func (g *game) visit(loc types.Location) {
	charID := g.spawner.Spawn(loc.ID, g.state.Affections(), meetingCounts(g.state))
	g.state.RecordMeeting(charID)
	char := catalog.Characters[charID]

	event, _ := calendar.CurrentEvent(g.state.EventIndex())
	g.images.Background(g.ctx, loc)
	g.images.Sprite(g.ctx, char, types.ReactionNormal, event.Month)

	fmt.Printf("\n―― %s ――\n", loc.Name)
	if err := g.engine.Begin(g.ctx, charID, loc); err != nil {
		slog.Error("failed to start encounter", "error", err)
		return
	}
	g.flushDialogue()
	g.interact(char, event.Month)
	g.engine.End()
}

func (g *game) interact(char *types.Character, month int) {
	// Advance the idle clock while waiting for input so the character
	// can break the silence herself.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if g.engine.Tick() {
					g.flushDialogue()
				}
			}
		}
	}()

	for {
		g.showBoard(char)
		input := g.prompt("> ")

		switch {
		case input == "leave" || input == "l":
			fmt.Printf("%sと別れた。\n", char.Name)
			return
		case input == "send":
			out, err := g.engine.Send(g.ctx)
			if err != nil {
				fmt.Println("カードを置いてから送ろう。")
				continue
			}
			g.images.Sprite(g.ctx, char, g.engine.Reaction(), month)
			g.flushDialogue()
			if out.SessionOver {
				fmt.Println("(今月の会話はここまで)")
				return
			}
			if out.FollowUp {
				time.Sleep(2 * time.Second)
				if err := g.engine.CharacterTurn(g.ctx); err == nil {
					g.flushDialogue()
				}
			}
		case input == "shuffle":
			if err := g.engine.Shuffle(); err != nil {
				fmt.Println("もう交換できない。")
			}
			g.flushDialogue()
		case strings.HasPrefix(input, "clear "):
			idx, err := strconv.Atoi(strings.TrimPrefix(input, "clear "))
			if err != nil || g.engine.ClearSlot(idx-1) != nil {
				fmt.Println("そこには何もない。")
			}
		default:
			idx, err := strconv.Atoi(input)
			cards := g.engine.Hand()
			if err != nil || idx < 1 || idx > len(cards) {
				fmt.Println("カード番号 / send / shuffle / clear <n> / leave")
				continue
			}
			if err := g.engine.PlayCard(cards[idx-1].ID); err != nil {
				fmt.Println("スロットがいっぱいだ。")
			}
		}
	}
}

func (g *game) showBoard(char *types.Character) {
	status := "……"
	if g.engine.Status() == types.StatusQuestion {
		status = "(返事を待っている)"
	}
	fmt.Printf("\n%s %s [%s]\n", char.Name, status, g.engine.Reaction())

	var sentence []string
	for _, s := range g.engine.Slots() {
		if s != nil {
			sentence = append(sentence, s.Text)
		}
	}
	fmt.Printf("文章: %s\n", strings.Join(sentence, ""))
	for i, c := range g.engine.Hand() {
		fmt.Printf("  %2d) %s (%s)\n", i+1, c.Text, c.Type)
	}
}

func (g *game) flushDialogue() {
	g.mu.Lock()
	defer g.mu.Unlock()

	log := g.state.Dialogue()
	for ; g.printed < len(log); g.printed++ {
		line := log[g.printed]
		if line.Speaker == "System" {
			fmt.Printf("    %s\n", line.Text)
		} else {
			fmt.Printf("%s: %s\n", line.Speaker, line.Text)
		}
	}
}

func (g *game) showStatus() {
	for _, id := range catalog.CharacterOrder {
		char := catalog.Characters[id]
		affection := g.state.Affection(id)
		fmt.Printf("  %s: %d 「%s」\n", char.Name, affection, catalog.FeelingFor(id, affection))
	}
}

func (g *game) showEnding() {
	result := calendar.Ending(g.state.Affections())
	char := catalog.Characters[result.CharacterID]

	fmt.Println("\n=== 三月、卒業式 ===")
	if result.Success {
		fmt.Printf("%sはあなたの告白にうなずいた。(好感度 %d)\n", char.Name, result.Affection)
	} else {
		fmt.Printf("%sとはいい友だちのまま、一年が終わった。(好感度 %d)\n", char.Name, result.Affection)
	}
}

func (g *game) prompt(label string) string {
	fmt.Print(label)
	if !g.reader.Scan() {
		return "quit"
	}
	return strings.TrimSpace(g.reader.Text())
}

func meetingCounts(state *session.State) map[string]int {
	counts := make(map[string]int, len(catalog.CharacterOrder))
	for _, id := range catalog.CharacterOrder {
		counts[id] = state.MeetingCount(id)
	}
	return counts
}
