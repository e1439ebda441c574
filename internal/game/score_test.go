package game

import (
	"testing"
	"time"
)

func TestPointsBoundaries(t *testing.T) {
	d := 10 * time.Second

	if got := Points(0, d); got != 100 {
		t.Fatalf("Points(0) = %d, want 100", got)
	}
	if got := Points(d, d); got != 10 {
		t.Fatalf("Points(duration) = %d, want 10", got)
	}
	if got := Points(2*d, d); got != 10 {
		t.Fatalf("Points(2*duration) = %d, want 10", got)
	}
	if got := Points(d/2, d); got != 55 {
		t.Fatalf("Points(duration/2) = %d, want 55", got)
	}
}

func TestPointsMonotonicallyNonIncreasing(t *testing.T) {
	d := 10 * time.Second
	prev := Points(0, d)
	for elapsed := time.Duration(0); elapsed <= d; elapsed += 100 * time.Millisecond {
		got := Points(elapsed, d)
		if got > prev {
			t.Fatalf("Points increased from %d to %d at elapsed %v", prev, got, elapsed)
		}
		prev = got
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	room := NewRoom("TEST42", nil, 0)
	add := func(id, name string, score, correct int) {
		p := NewPlayer(id)
		p.Name = name
		p.Score = score
		p.Correct = correct
		room.AddPlayer(p)
	}
	add("p1", "carol", 50, 3)
	add("p2", "alice", 80, 2)
	add("p3", "bob", 50, 5)
	add("p4", "dave", 50, 3)

	entries := Leaderboard(room)
	want := []string{"alice", "bob", "carol", "dave"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("position %d is %q, want %q (full: %+v)", i, entries[i].Name, name, entries)
		}
	}
}
