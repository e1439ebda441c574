package game

import (
	"math"
	"sort"
	"time"
)

const (
	maxPoints = 100
	minPoints = 10
)

// Points converts answer latency into a score: linear decay from maxPoints at
// elapsed=0 down to minPoints at elapsed >= duration.
func Points(elapsed, duration time.Duration) int {
	if duration <= 0 {
		return minPoints
	}
	ratio := math.Min(1, float64(elapsed)/float64(duration))
	pts := int(math.Round(maxPoints - (maxPoints-minPoints)*ratio))
	if pts < minPoints {
		return minPoints
	}
	return pts
}

// LeaderboardEntry is the public view of a player's standing.
type LeaderboardEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Streak    int    `json:"streak"`
	Correct   int    `json:"correct"`
	Questions int    `json:"questions"`
}

// Leaderboard snapshots the room's players ordered by score desc, correct
// answers desc, then name asc. Pure read; safe during an active question.
func Leaderboard(room *Room) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(room.Players))
	for _, p := range room.Players {
		entries = append(entries, LeaderboardEntry{
			ID:        p.ID,
			Name:      p.Name,
			Score:     p.Score,
			Streak:    p.Streak,
			Correct:   p.Correct,
			Questions: p.Questions,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if entries[i].Correct != entries[j].Correct {
			return entries[i].Correct > entries[j].Correct
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
