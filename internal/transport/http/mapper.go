package http

import (
	"github.com/mathrush/mathrush-server/internal/game"
	"github.com/mathrush/mathrush-server/internal/proto"
)

// inboundToCommand maps a wire message to a game command. Unknown or
// malformed types are dropped silently, matching the validation policy.
func inboundToCommand(in proto.Inbound) (*game.Command, bool) {
	switch in.Type {
	case proto.InboundCreateRoom:
		return &game.Command{Kind: game.CommandCreateRoom, Topics: in.Topics, Limit: in.Limit}, true
	case proto.InboundJoinRoom:
		return &game.Command{Kind: game.CommandJoinRoom, Code: in.Code}, true
	case proto.InboundSetName:
		return &game.Command{Kind: game.CommandSetName, Name: in.Name}, true
	case proto.InboundStart:
		return &game.Command{Kind: game.CommandStart}, true
	case proto.InboundAnswer:
		return &game.Command{Kind: game.CommandAnswer, QuestionID: in.QuestionID, Choice: in.Choice}, true
	case proto.InboundChat:
		return &game.Command{Kind: game.CommandChat, Text: in.Text}, true
	default:
		return nil, false
	}
}

// outboundFromEvent maps a game event to its wire representation.
func outboundFromEvent(ev *game.Event) any {
	switch ev.Kind {
	case game.EventHello:
		return proto.Hello{
			Type:            proto.OutboundHello,
			PlayerID:        ev.PlayerID,
			SupportedTopics: topicInfos(ev.Topics),
		}
	case game.EventRoomCreated:
		return proto.RoomCreated{
			Type:   proto.OutboundRoomCreated,
			Code:   ev.Code,
			HostID: ev.HostID,
			Topics: ev.RoomTopics,
			Limit:  limitPtr(ev.Limit),
		}
	case game.EventJoined:
		return proto.Joined{
			Type:   proto.OutboundJoined,
			Code:   ev.Code,
			HostID: ev.HostID,
			Topics: ev.RoomTopics,
			Limit:  limitPtr(ev.Limit),
		}
	case game.EventChatHistory:
		return proto.ChatHistory{
			Type:     proto.OutboundChatHistory,
			Messages: chatMessages(ev.Messages),
		}
	case game.EventError:
		return proto.Error{Type: proto.OutboundError, Message: ev.Error.Message}
	case game.EventLeaderboard:
		return proto.Leaderboard{
			Type:        proto.OutboundLeaderboard,
			Leaderboard: leaderboard(ev.Leaderboard),
		}
	case game.EventPlayerJoin:
		return proto.PlayerJoin{
			Type:        proto.OutboundPlayerJoin,
			Player:      proto.PlayerRef{ID: ev.Player.ID, Name: ev.Player.Name},
			Leaderboard: leaderboard(ev.Leaderboard),
		}
	case game.EventHostChange:
		return proto.HostChange{Type: proto.OutboundHostChange, HostID: ev.HostID}
	case game.EventQuestion:
		return proto.QuestionStart{
			Type:        proto.OutboundQuestion,
			Question:    questionView(ev.Question),
			Leaderboard: leaderboard(ev.Leaderboard),
			Index:       ev.Index,
			Total:       limitPtr(ev.Total),
		}
	case game.EventReveal:
		return proto.Reveal{
			Type:        proto.OutboundReveal,
			QuestionID:  ev.QuestionID,
			Answer:      ev.Answer,
			Leaderboard: leaderboard(ev.Leaderboard),
			Players:     playerSummaries(ev.Players),
		}
	case game.EventEndGame:
		return proto.EndGame{
			Type:           proto.OutboundEndGame,
			Leaderboard:    leaderboard(ev.Leaderboard),
			TotalQuestions: ev.TotalQuestions,
		}
	case game.EventChat:
		return proto.Chat{Type: proto.OutboundChat, Message: chatMessage(*ev.Message)}
	default:
		return nil
	}
}

// limitPtr renders 0 (unlimited) as null on the wire.
func limitPtr(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}

func topicInfos(ts []game.Topic) []proto.TopicInfo {
	out := make([]proto.TopicInfo, 0, len(ts))
	for _, t := range ts {
		out = append(out, proto.TopicInfo{ID: t.ID, Label: t.Label})
	}
	return out
}

func leaderboard(entries []game.LeaderboardEntry) []proto.LeaderboardEntry {
	out := make([]proto.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, proto.LeaderboardEntry{
			ID:        e.ID,
			Name:      e.Name,
			Score:     e.Score,
			Streak:    e.Streak,
			Correct:   e.Correct,
			Questions: e.Questions,
		})
	}
	return out
}

func questionView(q *game.Question) proto.Question {
	return proto.Question{
		ID:          q.ID,
		TopicID:     q.TopicID,
		TopicLabel:  q.TopicLabel,
		TopicSymbol: q.TopicSymbol,
		Text:        q.Text,
		Options:     q.Options,
		Start:       q.Start.UnixMilli(),
		Duration:    q.Duration.Milliseconds(),
	}
}

func chatMessage(m game.ChatMessage) proto.ChatMessage {
	var playerID *string
	if m.PlayerID != "" {
		id := m.PlayerID
		playerID = &id
	}
	return proto.ChatMessage{
		ID:       m.ID,
		PlayerID: playerID,
		Name:     m.Name,
		Text:     m.Text,
		TS:       m.SentAt.UnixMilli(),
	}
}

func chatMessages(ms []game.ChatMessage) []proto.ChatMessage {
	out := make([]proto.ChatMessage, 0, len(ms))
	for _, m := range ms {
		out = append(out, chatMessage(m))
	}
	return out
}

func playerSummaries(ss []game.Summary) []proto.PlayerSummary {
	out := make([]proto.PlayerSummary, 0, len(ss))
	for _, s := range ss {
		out = append(out, proto.PlayerSummary{
			ID:       s.ID,
			Name:     s.Name,
			Answered: s.Answered,
			Score:    s.Score,
			Streak:   s.Streak,
		})
	}
	return out
}
