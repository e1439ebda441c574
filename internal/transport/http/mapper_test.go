package http

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mathrush/mathrush-server/internal/game"
	"github.com/mathrush/mathrush-server/internal/proto"
)

func TestInboundToCommand(t *testing.T) {
	tests := []struct {
		name string
		in   proto.Inbound
		kind game.CommandKind
		ok   bool
	}{
		{"create_room", proto.Inbound{Type: "create_room", Topics: []string{"add"}, Limit: 3}, game.CommandCreateRoom, true},
		{"join_room", proto.Inbound{Type: "join_room", Code: "ABC234"}, game.CommandJoinRoom, true},
		{"set_name", proto.Inbound{Type: "set_name", Name: "x"}, game.CommandSetName, true},
		{"start", proto.Inbound{Type: "start"}, game.CommandStart, true},
		{"answer", proto.Inbound{Type: "answer", QuestionID: "Q", Choice: 7}, game.CommandAnswer, true},
		{"chat", proto.Inbound{Type: "chat", Text: "hi"}, game.CommandChat, true},
		{"unknown", proto.Inbound{Type: "bogus"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := inboundToCommand(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && cmd.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", cmd.Kind, tt.kind)
			}
		})
	}
}

func TestQuestionWireFormatOmitsAnswer(t *testing.T) {
	q := game.Question{
		ID:       "QQQQQQ",
		TopicID:  "mul",
		Text:     "3 × 4 = ?",
		Answer:   12,
		Options:  []int{12, 13, 10, 14},
		Start:    time.UnixMilli(1700000000000),
		Duration: 10 * time.Second,
	}
	out := outboundFromEvent(&game.Event{Kind: game.EventQuestion, Question: &q, Index: 1})

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "answer") {
		t.Fatalf("question payload leaks the answer: %s", data)
	}
	if !strings.Contains(string(data), `"duration":10000`) {
		t.Fatalf("duration not serialized in millis: %s", data)
	}
}

func TestLimitSerializedAsNullWhenUnlimited(t *testing.T) {
	out := outboundFromEvent(&game.Event{Kind: game.EventRoomCreated, Code: "ABC234", HostID: "P"})
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"limit":null`) {
		t.Fatalf("unlimited limit not null: %s", data)
	}
}
