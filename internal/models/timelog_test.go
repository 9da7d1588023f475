package models

import (
	"errors"
	"testing"
	"time"
)

func TestActivityLog_StartStop(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	t.Run("start opens an interval", func(t *testing.T) {
		log := &ActivityLog{ActivityID: "a"}

		entry, err := log.StartLog(start)
		if err != nil {
			t.Fatalf("StartLog() error = %v", err)
		}
		if entry.ActivityID != "a" {
			t.Errorf("entry.ActivityID = %q, want %q", entry.ActivityID, "a")
		}
		if entry.ID == "" {
			t.Error("entry should get an id")
		}
		if entry.EndedAt != nil {
			t.Error("new entry should be open")
		}
		if log.ActiveLog() == nil {
			t.Error("ActiveLog() = nil after start")
		}
	})

	t.Run("second start fails while active", func(t *testing.T) {
		log := &ActivityLog{ActivityID: "a"}
		if _, err := log.StartLog(start); err != nil {
			t.Fatalf("StartLog() error = %v", err)
		}

		_, err := log.StartLog(start.Add(time.Minute))
		if !errors.Is(err, ErrLogAlreadyActive) {
			t.Errorf("StartLog() error = %v, want ErrLogAlreadyActive", err)
		}
		if len(log.Entries) != 1 {
			t.Errorf("len(Entries) = %d, want 1 after rejected start", len(log.Entries))
		}
	})

	t.Run("stop closes the open interval", func(t *testing.T) {
		log := &ActivityLog{ActivityID: "a"}
		if _, err := log.StartLog(start); err != nil {
			t.Fatalf("StartLog() error = %v", err)
		}

		end := start.Add(90 * time.Minute)
		entry := log.StopActiveLog(end)
		if entry == nil {
			t.Fatal("StopActiveLog() = nil, want the closed entry")
		}
		if entry.EndedAt == nil || !entry.EndedAt.Equal(end) {
			t.Errorf("EndedAt = %v, want %v", entry.EndedAt, end)
		}
		if log.ActiveLog() != nil {
			t.Error("log should be idle after stop")
		}
	})

	t.Run("stop on idle log is a no-op", func(t *testing.T) {
		log := &ActivityLog{ActivityID: "a"}
		if entry := log.StopActiveLog(start); entry != nil {
			t.Errorf("StopActiveLog() = %v, want nil on idle log", entry)
		}
	})

	t.Run("restart after stop", func(t *testing.T) {
		log := &ActivityLog{ActivityID: "a"}
		if _, err := log.StartLog(start); err != nil {
			t.Fatalf("StartLog() error = %v", err)
		}
		log.StopActiveLog(start.Add(time.Hour))

		if _, err := log.StartLog(start.Add(2 * time.Hour)); err != nil {
			t.Errorf("StartLog() after stop error = %v", err)
		}
		if len(log.Entries) != 2 {
			t.Errorf("len(Entries) = %d, want 2", len(log.Entries))
		}
	})
}

func TestActivityLog_Durations(t *testing.T) {
	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	log := &ActivityLog{ActivityID: "a"}
	if _, err := log.StartLog(start); err != nil {
		t.Fatalf("StartLog() error = %v", err)
	}
	log.StopActiveLog(start.Add(time.Hour))
	if _, err := log.StartLog(start.Add(2 * time.Hour)); err != nil {
		t.Fatalf("StartLog() error = %v", err)
	}

	// One closed hour plus an open interval measured up to now
	now := start.Add(2*time.Hour + 30*time.Minute)
	if got := log.TotalDuration(now); got != 90*time.Minute {
		t.Errorf("TotalDuration() = %v, want %v", got, 90*time.Minute)
	}

	open := log.ActiveLog()
	if got := open.Duration(now); got != 30*time.Minute {
		t.Errorf("open Duration() = %v, want %v", got, 30*time.Minute)
	}
}

func TestNote_TextRoundTrip(t *testing.T) {
	note := &Note{ActivityID: "a"}

	note.SetText("first line\nsecond line")
	if len(note.Content) != 2 {
		t.Fatalf("len(Content) = %d, want 2", len(note.Content))
	}
	if got := note.Text(); got != "first line\nsecond line" {
		t.Errorf("Text() = %q", got)
	}

	note.SetText("windows\r\nline endings")
	if got := note.Text(); got != "windows\nline endings" {
		t.Errorf("Text() = %q, want normalized newlines", got)
	}

	note.SetText("")
	if note.Content != nil {
		t.Errorf("Content = %v, want nil after clearing", note.Content)
	}
}
