package game

import (
	"fmt"
	"testing"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	room := NewRoom("BENCH1", nil, 0)
	for i := 0; i < recipients; i++ {
		p := NewPlayer(fmt.Sprintf("p%04d", i))
		room.AddPlayer(p)
		go func(pl *Player) {
			for range pl.Events {
			}
		}(p)
	}

	event := &Event{Kind: EventLeaderboard, Leaderboard: Leaderboard(room)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		room.Broadcast(event)
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
