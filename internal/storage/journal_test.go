package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

// fakeClock advances by step on every call
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestJournalOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "journal.db")

	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer j.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestJournalOpenRejectsEmptyPath(t *testing.T) {
	j, err := Open("")
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Open(\"\") error = %v, want ErrEmptyPath", err)
	}
	if j != nil {
		t.Error("Open(\"\") returned a journal")
	}
}

func TestJournalReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := j.StartSession("house_rat"); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	j.Close()

	j, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer j.Close()

	sessions, err := j.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Skin != "house_rat" {
		t.Errorf("sessions after reopen = %+v", sessions)
	}
}

func TestJournalSessionLifecycle(t *testing.T) {
	j := openTestJournal(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	j.now = fakeClock(start, time.Minute)

	id, err := j.StartSession("sewer_rat") // 12:00
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	for _, kind := range []string{"double_click", "single_click", "double_click"} { // 12:01..12:03
		if err := j.RecordEvent(id, kind, ""); err != nil {
			t.Fatalf("RecordEvent(%s) failed: %v", kind, err)
		}
	}
	if err := j.EndSession(id, 1234.5); err != nil { // 12:04
		t.Fatalf("EndSession() failed: %v", err)
	}

	sessions, err := j.RecentSessions(5)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.Skin != "sewer_rat" || s.Events != 3 || s.Distance != 1234.5 {
		t.Errorf("session = %+v", s)
	}
	if !s.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, want %v", s.StartedAt, start)
	}
	if s.Duration() != 4*time.Minute {
		t.Errorf("Duration = %v, want 4m", s.Duration())
	}

	totals, err := j.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Sessions != 1 || totals.Distance != 1234.5 || totals.Duration != 4*time.Minute {
		t.Errorf("totals = %+v", totals)
	}
	if totals.ByKind["double_click"] != 2 || totals.ByKind["single_click"] != 1 {
		t.Errorf("ByKind = %v", totals.ByKind)
	}
}

func TestJournalUnfinishedSession(t *testing.T) {
	j := openTestJournal(t)

	if _, err := j.StartSession("lab_rat"); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	sessions, _ := j.RecentSessions(0)
	if len(sessions) != 1 || !sessions[0].EndedAt.IsZero() || sessions[0].Duration() != 0 {
		t.Errorf("unfinished session = %+v", sessions)
	}

	totals, err := j.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Duration != 0 {
		t.Errorf("Duration = %v, want 0 for unfinished sessions", totals.Duration)
	}
}

func TestJournalEndUnknownSession(t *testing.T) {
	j := openTestJournal(t)

	if err := j.EndSession(99, 0); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestJournalEmptyTotals(t *testing.T) {
	j := openTestJournal(t)

	totals, err := j.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Sessions != 0 || totals.Distance != 0 || len(totals.ByKind) != 0 {
		t.Errorf("empty totals = %+v", totals)
	}
}

func TestJournalRecentSessionsOrder(t *testing.T) {
	j := openTestJournal(t)
	for _, skin := range []string{"a", "b", "c"} {
		if _, err := j.StartSession(skin); err != nil {
			t.Fatalf("StartSession() failed: %v", err)
		}
	}

	sessions, err := j.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 || sessions[0].Skin != "c" || sessions[1].Skin != "b" {
		t.Errorf("recent sessions = %+v, want c, b", sessions)
	}
}
