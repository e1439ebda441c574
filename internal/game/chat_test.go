package game

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeChat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"plain", "hello", "hello", true},
		{"trimmed", "  hi there  ", "hi there", true},
		{"newlines become spaces", "a\nb\r\nc", "a b  c", true},
		{"tabs become spaces", "a\tb", "a b", true},
		{"empty", "", "", false},
		{"whitespace only", " \n\t ", "", false},
		{"too long", strings.Repeat("x", 201), "", false},
		{"max length ok", strings.Repeat("x", 200), strings.Repeat("x", 200), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SanitizeChat(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("SanitizeChat(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice", "Alice"},
		{"  Bob  ", "Bob"},
		{"", "Player"},
		{"   ", "Player"},
		{strings.Repeat("a", 30), strings.Repeat("a", 18)},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChatHistoryBounded(t *testing.T) {
	room := NewRoom("CHAT42", nil, 0)
	now := time.Now()

	for i := 0; i < maxChatHistory+100; i++ {
		room.PushChat(NewSystemMessage("msg", now))
	}
	if len(room.Messages) != maxChatHistory {
		t.Fatalf("history length %d, want %d", len(room.Messages), maxChatHistory)
	}
}

func TestChatHistoryEvictsOldestFirst(t *testing.T) {
	room := NewRoom("CHAT43", nil, 0)
	now := time.Now()

	first := NewSystemMessage("first", now)
	room.PushChat(first)
	for i := 0; i < maxChatHistory; i++ {
		room.PushChat(NewSystemMessage("later", now))
	}
	for _, m := range room.Messages {
		if m.ID == first.ID {
			t.Fatal("oldest message still present after eviction")
		}
	}
}

func TestRecentMessagesCapped(t *testing.T) {
	room := NewRoom("CHAT44", nil, 0)
	now := time.Now()
	for i := 0; i < 80; i++ {
		room.PushChat(NewSystemMessage("msg", now))
	}
	if got := len(room.RecentMessages()); got != joinHistory {
		t.Fatalf("recent messages length %d, want %d", got, joinHistory)
	}
}

func TestSystemMessageHasNoAuthor(t *testing.T) {
	msg := NewSystemMessage("notice", time.Now())
	if msg.PlayerID != "" {
		t.Fatalf("system message has author %q", msg.PlayerID)
	}
	if msg.Name != "System" {
		t.Fatalf("system message author name %q, want System", msg.Name)
	}
}
