package session

import (
	"testing"

	"github.com/kotonoha/days/internal/types"
)

var testIDs = []string{"reina", "akane", "shiori"}

func TestClampAffection(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{120, 120},
		{types.MaxAffection + 1, types.MaxAffection},
		{types.MinAffection - 50, types.MinAffection},
	}
	for _, c := range cases {
		if got := ClampAffection(c.in); got != c.want {
			t.Errorf("ClampAffection(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAdjustAffectionClampsAtBounds(t *testing.T) {
	s := NewState(testIDs)
	if got := s.AdjustAffection("reina", 35); got != 35 {
		t.Errorf("affection = %d, want 35", got)
	}
	s.AdjustAffection("reina", types.MaxAffection)
	if got := s.Affection("reina"); got != types.MaxAffection {
		t.Errorf("affection = %d, want clamp at %d", got, types.MaxAffection)
	}
	s.AdjustAffection("akane", types.MinAffection*2)
	if got := s.Affection("akane"); got != types.MinAffection {
		t.Errorf("affection = %d, want clamp at %d", got, types.MinAffection)
	}
}

func TestUseMoveRunsOut(t *testing.T) {
	s := NewState(testIDs)
	for i := 0; i < types.MovesPerDay; i++ {
		if !s.UseMove() {
			t.Fatalf("move %d refused with moves remaining", i)
		}
	}
	if s.UseMove() {
		t.Error("move granted with none remaining")
	}
	if got := s.MovesLeft(); got != 0 {
		t.Errorf("moves left = %d, want 0", got)
	}
}

func TestCompleteMonthSnapshotsAndResets(t *testing.T) {
	s := NewState(testIDs)
	s.AdjustAffection("reina", 42)
	s.RecordMeeting("reina")
	s.RecordMeeting("reina")
	for i := 0; i < 4; i++ {
		s.UseMove()
	}

	s.SpendTurn()
	s.SpendTurn()

	snap := s.CompleteMonth()
	if snap.EventIndex != 0 {
		t.Errorf("snapshot event index = %d, want 0", snap.EventIndex)
	}
	if snap.Affections["reina"] != 42 {
		t.Errorf("snapshot affection = %d, want 42", snap.Affections["reina"])
	}
	if got := s.MeetingCount("reina"); got != 0 {
		t.Errorf("meeting count after month = %d, want 0", got)
	}
	if got := s.MovesLeft(); got != types.MovesPerDay {
		t.Errorf("moves after month = %d, want %d", got, types.MovesPerDay)
	}
	if got := s.EventIndex(); got != 1 {
		t.Errorf("event index = %d, want 1", got)
	}
	if got := s.TurnCount(); got != 0 {
		t.Errorf("turn count after month = %d, want 0", got)
	}
	// Affection survives the month boundary.
	if got := s.Affection("reina"); got != 42 {
		t.Errorf("affection after month = %d, want 42", got)
	}
	if got := len(s.History()); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
}

func TestCompleteMonthClearsDialogue(t *testing.T) {
	s := NewState(testIDs)
	s.AppendDialogue(
		types.DialogueLine{Speaker: "System", Text: "四月の放課後。"},
		types.DialogueLine{Speaker: "玲奈", Text: "また明日ね。"},
	)

	s.CompleteMonth()
	if got := s.Dialogue(); len(got) != 0 {
		t.Fatalf("dialogue after month = %d lines, want empty", len(got))
	}

	// The new month's log starts fresh.
	s.AppendDialogue(types.DialogueLine{Speaker: "System", Text: "五月の昼休み。"})
	if got := s.Dialogue(); len(got) != 1 || got[0].Text != "五月の昼休み。" {
		t.Fatalf("dialogue = %+v, want only the new month's line", got)
	}
}

func TestHistoryCopiesAreIndependent(t *testing.T) {
	s := NewState(testIDs)
	s.AdjustAffection("shiori", 10)
	s.CompleteMonth()

	hist := s.History()
	hist[0].Affections["shiori"] = 999
	if got := s.History()[0].Affections["shiori"]; got != 10 {
		t.Errorf("history mutated through copy: %d", got)
	}

	all := s.Affections()
	all["shiori"] = -1
	if got := s.Affection("shiori"); got != 10 {
		t.Errorf("affections mutated through copy: %d", got)
	}
}

func TestDialogueLog(t *testing.T) {
	s := NewState(testIDs)
	s.AppendDialogue(
		types.DialogueLine{Speaker: "あなた", Text: "「ゲームが好き」"},
		types.DialogueLine{Speaker: "玲奈", Text: "ほんと？一緒にやろうよ！"},
	)
	log := s.Dialogue()
	if len(log) != 2 {
		t.Fatalf("dialogue length = %d, want 2", len(log))
	}
	if log[1].Speaker != "玲奈" {
		t.Errorf("speaker = %q", log[1].Speaker)
	}
}
