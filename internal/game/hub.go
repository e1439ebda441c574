package game

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/mathrush/mathrush-server/internal/ident"
)

// revealSlack is how far past the deadline the reveal timer is armed, and the
// jitter tolerance when deciding whether a timer fired too early.
const revealSlack = 5 * time.Millisecond

// envelope carries one unit of connection-driven work into the hub loop.
type envelope struct {
	player     *Player
	cmd        *Command
	register   bool
	unregister bool
}

type timerKind int

const (
	timerReveal timerKind = iota
	timerNext
	timerFinish
)

type timerFire struct {
	code string
	kind timerKind
}

// Hub owns every room and is the single mutator of game state. Connection
// commands and timer fires are consumed by one goroutine, so a unit of work
// never overlaps another; rooms need no locks of their own.
type Hub struct {
	log          *zerolog.Logger
	questionTime time.Duration
	revealDelay  time.Duration

	rooms  map[string]*Room
	inbox  chan envelope
	timers chan timerFire
	done   chan struct{}
	rand   *rand.Rand
}

// NewHub constructs a hub. questionTime and revealDelay drive the session
// state machine; tests compress them.
func NewHub(logger *zerolog.Logger, questionTime, revealDelay time.Duration) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		log:          logger,
		questionTime: questionTime,
		revealDelay:  revealDelay,
		rooms:        make(map[string]*Room),
		inbox:        make(chan envelope, 256),
		timers:       make(chan timerFire, 64),
		done:         make(chan struct{}),
		rand:         rand.New(rand.NewSource(int64(rand.Uint64()))),
	}
}

// RegisterPlayer announces a new connection and starts forwarding its
// commands into the hub loop. When the connection closes its Commands
// channel the player is removed from its room.
func (h *Hub) RegisterPlayer(p *Player) {
	h.post(envelope{player: p, register: true})
	go func() {
		for cmd := range p.Commands {
			if !h.post(envelope{player: p, cmd: cmd}) {
				return
			}
		}
		h.post(envelope{player: p, unregister: true})
	}()
}

// post enqueues work for the hub loop; it reports false once the hub stopped.
func (h *Hub) post(env envelope) bool {
	select {
	case h.inbox <- env:
		return true
	case <-h.done:
		return false
	}
}

// Run consumes commands and timer fires until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case env := <-h.inbox:
			h.dispatch(env)
		case fire := <-h.timers:
			h.handleTimer(fire)
		case <-ctx.Done():
			return
		}
	}
}

// dispatch executes one connection-driven unit of work. A panic in a handler
// is confined to that unit so other rooms keep being served.
func (h *Hub) dispatch(env envelope) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Interface("panic", r).Msg("recovered in command handler")
		}
	}()

	p := env.player
	switch {
	case env.register:
		send(p, &Event{Kind: EventHello, PlayerID: p.ID, Topics: Topics()})
	case env.unregister:
		if p.room != nil {
			h.removePlayer(p.room, p.ID)
		}
	case env.cmd != nil:
		h.handleCommand(p, env.cmd)
	}
}

func (h *Hub) handleCommand(p *Player, cmd *Command) {
	switch cmd.Kind {
	case CommandCreateRoom:
		h.handleCreateRoom(p, cmd)
	case CommandJoinRoom:
		h.handleJoinRoom(p, cmd)
	case CommandSetName:
		h.handleSetName(p, cmd)
	case CommandStart:
		h.handleStart(p)
	case CommandAnswer:
		h.handleAnswer(p, cmd)
	case CommandChat:
		h.handleChat(p, cmd)
	}
}

func (h *Hub) handleCreateRoom(p *Player, cmd *Command) {
	if p.room != nil {
		h.removePlayer(p.room, p.ID)
	}

	topicIDs := FilterTopicIDs(cmd.Topics)
	if len(topicIDs) == 0 {
		for _, t := range Topics() {
			topicIDs = append(topicIDs, t.ID)
		}
	}

	code := ident.New()
	for {
		if _, taken := h.rooms[code]; !taken {
			break
		}
		code = ident.New()
	}

	limit := 0
	if cmd.Limit > 0 && cmd.Limit <= maxQuestionLimit {
		limit = cmd.Limit
	}

	room := NewRoom(code, topicIDs, limit)
	room.AddPlayer(p)
	room.HostID = p.ID
	h.rooms[code] = room

	h.log.Info().Str("room", code).Str("host", p.ID).Strs("topics", topicIDs).Int("limit", limit).Msg("room created")

	send(p, &Event{Kind: EventRoomCreated, Code: code, HostID: p.ID, RoomTopics: topicIDs, Limit: limit})
	room.Broadcast(&Event{Kind: EventLeaderboard, Leaderboard: Leaderboard(room)})
	h.systemMessage(room, fmt.Sprintf("%s created the room.", p.Name))
}

func (h *Hub) handleJoinRoom(p *Player, cmd *Command) {
	room, ok := h.rooms[normalizeCode(cmd.Code)]
	if !ok {
		send(p, &Event{Kind: EventError, Error: gameError(ErrCodeRoomNotFound, "Room not found")})
		return
	}
	if room.InProgress {
		send(p, &Event{Kind: EventError, Error: gameError(ErrCodeGameInProgress, "Game already in progress")})
		return
	}
	if p.room != nil {
		h.removePlayer(p.room, p.ID)
	}

	room.AddPlayer(p)
	h.log.Info().Str("room", room.Code).Str("player", p.ID).Msg("player joined")

	room.Broadcast(&Event{
		Kind:        EventPlayerJoin,
		Player:      &PlayerRef{ID: p.ID, Name: p.Name},
		Leaderboard: Leaderboard(room),
	})
	send(p, &Event{Kind: EventJoined, Code: room.Code, HostID: room.HostID, RoomTopics: room.Topics, Limit: room.Limit})
	if history := room.RecentMessages(); len(history) > 0 {
		send(p, &Event{Kind: EventChatHistory, Messages: history})
	}
	h.systemMessage(room, fmt.Sprintf("%s joined the room.", p.Name))
}

func (h *Hub) handleSetName(p *Player, cmd *Command) {
	p.SetName(cmd.Name)
	if p.room != nil {
		p.room.Broadcast(&Event{Kind: EventLeaderboard, Leaderboard: Leaderboard(p.room)})
	}
}

func (h *Hub) handleStart(p *Player) {
	room := p.room
	if room == nil {
		return
	}
	if p.ID != room.HostID {
		send(p, &Event{Kind: EventError, Error: gameError(ErrCodeNotHost, "Only host can start")})
		return
	}
	if room.InProgress {
		return
	}
	room.InProgress = true
	room.QuestionIndex = 0
	h.log.Info().Str("room", room.Code).Msg("session started")
	h.scheduleQuestion(room)
}

func (h *Hub) handleAnswer(p *Player, cmd *Command) {
	room := p.room
	if room == nil {
		return
	}
	q := room.CurrentQuestion
	if q == nil || cmd.QuestionID != q.ID || room.Revealed() {
		return
	}
	if p.AnsweredCurrent(q.ID) {
		// First answer wins.
		return
	}

	elapsed := time.Since(q.Start)
	p.Questions++
	if cmd.Choice == q.Answer {
		p.Correct++
		p.Streak++
		p.Score += Points(elapsed, q.Duration)
	} else {
		p.Streak = 0
	}
	p.lastAnswerQuestionID = q.ID

	// Live rank changes are visible before the reveal; the answer itself
	// stays hidden until the deadline.
	room.Broadcast(&Event{Kind: EventLeaderboard, Leaderboard: Leaderboard(room)})
}

func (h *Hub) handleChat(p *Player, cmd *Command) {
	room := p.room
	if room == nil {
		return
	}
	text, ok := SanitizeChat(cmd.Text)
	if !ok {
		return
	}
	if !p.chatLimiter.Allow() {
		// Silent drop, no error reply.
		return
	}
	msg := NewChatMessage(p, text, time.Now())
	h.log.Debug().Str("room", room.Code).Str("player", p.Name).Str("text", text).Msg("chat")
	h.pushChat(room, msg)
}

func (h *Hub) pushChat(room *Room, msg ChatMessage) {
	room.PushChat(msg)
	room.Broadcast(&Event{Kind: EventChat, Message: &msg})
}

func (h *Hub) systemMessage(room *Room, text string) {
	h.pushChat(room, NewSystemMessage(text, time.Now()))
}

func (h *Hub) removePlayer(room *Room, playerID string) {
	newHostID, empty := room.RemovePlayer(playerID)
	if empty {
		delete(h.rooms, room.Code)
		h.log.Info().Str("room", room.Code).Msg("room destroyed")
		// Pending timers for this room become no-ops on lookup.
		return
	}
	if newHostID != "" {
		h.log.Info().Str("room", room.Code).Str("host", newHostID).Msg("host reassigned")
		room.Broadcast(&Event{Kind: EventHostChange, HostID: newHostID})
	}
	room.Broadcast(&Event{Kind: EventLeaderboard, Leaderboard: Leaderboard(room)})
}

// scheduleQuestion advances the room to the next QuestionActive state, or to
// Finished when the configured limit is reached.
func (h *Hub) scheduleQuestion(room *Room) {
	if room.Limit > 0 && room.QuestionIndex >= room.Limit {
		h.finishRoom(room)
		return
	}

	q := BuildQuestion(h.rand, room.Topics, time.Now(), h.questionTime)
	room.CurrentQuestion = &q
	room.QuestionDeadline = q.Start.Add(q.Duration)
	room.QuestionIndex++
	room.RevealedQuestionID = ""
	for _, p := range room.Players {
		p.lastAnswerQuestionID = ""
	}

	h.log.Debug().Str("room", room.Code).Int("index", room.QuestionIndex).Str("question", q.ID).Msg("question scheduled")

	room.Broadcast(&Event{
		Kind:        EventQuestion,
		Question:    &q,
		Leaderboard: Leaderboard(room),
		Index:       room.QuestionIndex,
		Total:       room.Limit,
	})
	h.armTimer(room.Code, timerReveal, h.questionTime+revealSlack)
}

func (h *Hub) handleTimer(fire timerFire) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Interface("panic", r).Msg("recovered in timer handler")
		}
	}()

	room, ok := h.rooms[fire.code]
	if !ok {
		// Room was destroyed before the timer fired.
		return
	}
	switch fire.kind {
	case timerReveal:
		h.revealIfPending(room)
	case timerNext:
		if room.InProgress {
			h.scheduleQuestion(room)
		}
	case timerFinish:
		h.finishRoom(room)
	}
}

// revealIfPending publishes the answer for the current question. It never
// fires early: answers stay hidden for the full countdown even when every
// player has answered, and scheduling jitter re-arms the timer instead of
// revealing prematurely.
func (h *Hub) revealIfPending(room *Room) {
	q := room.CurrentQuestion
	if q == nil || room.Revealed() {
		return
	}
	now := time.Now()
	if now.Before(room.QuestionDeadline.Add(-revealSlack)) {
		h.armTimer(room.Code, timerReveal, room.QuestionDeadline.Sub(now))
		return
	}

	room.RevealedQuestionID = q.ID

	summaries := make([]Summary, 0, len(room.Players))
	for _, p := range room.Players {
		summaries = append(summaries, Summary{
			ID:       p.ID,
			Name:     p.Name,
			Answered: p.AnsweredCurrent(q.ID),
			Score:    p.Score,
			Streak:   p.Streak,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })

	h.log.Debug().Str("room", room.Code).Str("question", q.ID).Int("index", room.QuestionIndex).Msg("question revealed")

	room.Broadcast(&Event{
		Kind:        EventReveal,
		QuestionID:  q.ID,
		Answer:      q.Answer,
		Leaderboard: Leaderboard(room),
		Players:     summaries,
	})

	if room.Limit > 0 && room.QuestionIndex >= room.Limit {
		h.armTimer(room.Code, timerFinish, h.revealDelay)
	} else {
		h.armTimer(room.Code, timerNext, h.revealDelay)
	}
}

func (h *Hub) finishRoom(room *Room) {
	room.InProgress = false
	h.log.Info().Str("room", room.Code).Int("questions", room.QuestionIndex).Msg("session finished")
	room.Broadcast(&Event{
		Kind:           EventEndGame,
		Leaderboard:    Leaderboard(room),
		TotalQuestions: room.QuestionIndex,
	})
	room.CurrentQuestion = nil
}

// armTimer posts a timer fire into the hub loop after d. If the hub has
// stopped, the fire is discarded.
func (h *Hub) armTimer(code string, kind timerKind, d time.Duration) {
	time.AfterFunc(d, func() {
		select {
		case h.timers <- timerFire{code: code, kind: kind}:
		case <-h.done:
		}
	})
}
