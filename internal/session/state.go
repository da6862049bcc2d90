// Package session holds the mutable school-year state shared across
// encounters: per-character affection, daily move allowance, monthly
// meeting counters, and the dialogue log.
package session

import (
	"sync"

	"github.com/kotonoha/days/internal/types"
)

// ClampAffection bounds affection to the playable range.
func ClampAffection(score int) int {
	if score > types.MaxAffection {
		return types.MaxAffection
	}
	if score < types.MinAffection {
		return types.MinAffection
	}
	return score
}

// Snapshot captures every character's affection at the end of a month.
type Snapshot struct {
	EventIndex int
	Affections map[string]int
}

// State is the single source of truth for progress across the year.
// All mutation goes through its methods; a mutex keeps concurrent
// readers (timers, async collaborator callbacks) consistent.
type State struct {
	mu sync.Mutex

	affections map[string]int
	meetings   map[string]int
	history    []Snapshot
	dialogue   []types.DialogueLine

	movesLeft  int
	eventIndex int
	turnCount  int
}

// NewState starts a fresh year with zero affection for each character
// and a full day of moves.
func NewState(characterIDs []string) *State {
	affections := make(map[string]int, len(characterIDs))
	meetings := make(map[string]int, len(characterIDs))
	for _, id := range characterIDs {
		affections[id] = 0
		meetings[id] = 0
	}
	return &State{
		affections: affections,
		meetings:   meetings,
		movesLeft:  types.MovesPerDay,
	}
}

// Affection returns the current affection for a character.
func (s *State) Affection(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.affections[id]
}

// Affections returns a copy of every character's affection.
func (s *State) Affections() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.affections))
	for id, v := range s.affections {
		out[id] = v
	}
	return out
}

// AdjustAffection applies a delta and returns the clamped result.
func (s *State) AdjustAffection(id string, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := ClampAffection(s.affections[id] + delta)
	s.affections[id] = next
	return next
}

// MovesLeft reports how many map moves remain today.
func (s *State) MovesLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movesLeft
}

// UseMove consumes one move and reports whether one was available.
func (s *State) UseMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.movesLeft <= 0 {
		return false
	}
	s.movesLeft--
	return true
}

// RecordMeeting bumps a character's monthly encounter counter and
// returns the new count.
func (s *State) RecordMeeting(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings[id]++
	return s.meetings[id]
}

// MeetingCount returns how often a character has appeared this month.
func (s *State) MeetingCount(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meetings[id]
}

// TurnCount returns how many conversation turns were spent this month.
// The monthly budget is shared across every encounter.
func (s *State) TurnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turnCount
}

// SpendTurn consumes one conversation turn and returns the new count.
func (s *State) SpendTurn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turnCount++
	return s.turnCount
}

// EventIndex returns the index of the current school event, zero based.
func (s *State) EventIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventIndex
}

// CompleteMonth snapshots every affection into the history, resets the
// monthly counters, daily moves, and dialogue log, and advances to the
// next event. It returns the snapshot that was recorded.
func (s *State) CompleteMonth() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		EventIndex: s.eventIndex,
		Affections: make(map[string]int, len(s.affections)),
	}
	for id, v := range s.affections {
		snap.Affections[id] = v
	}
	s.history = append(s.history, snap)

	for id := range s.meetings {
		s.meetings[id] = 0
	}
	s.movesLeft = types.MovesPerDay
	s.turnCount = 0
	s.dialogue = nil
	s.eventIndex++
	return snap
}

// History returns the recorded month snapshots, oldest first.
func (s *State) History() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Snapshot(nil), s.history...)
}

// AppendDialogue adds lines to the running dialogue log.
func (s *State) AppendDialogue(lines ...types.DialogueLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogue = append(s.dialogue, lines...)
}

// Dialogue returns a copy of the dialogue log, oldest first.
func (s *State) Dialogue() []types.DialogueLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.DialogueLine(nil), s.dialogue...)
}
