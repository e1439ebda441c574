package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/mathrush/mathrush-server/internal/game"
	"github.com/mathrush/mathrush-server/internal/ident"
	"github.com/mathrush/mathrush-server/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to game players.
type WSHandler struct {
	hub *game.Hub
	log *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *game.Hub, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{hub: hub, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	player := game.NewPlayer(ident.New())
	h.hub.RegisterPlayer(player)
	h.log.Debug().Str("player", player.ID).Str("remote", r.RemoteAddr).Msg("ws connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, player)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, player)
	}()

	err = <-errCh
	cancel()
	<-errCh

	// The read loop is the only writer to Commands; closing it here tells
	// the hub to remove the player from its room.
	close(player.Commands)
	h.log.Debug().Str("player", player.ID).Msg("ws disconnected")

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("player", player.ID).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, player *game.Player) error {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}
		cmd, ok := inboundToCommand(inbound)
		if !ok {
			h.log.Debug().Str("player", player.ID).Str("type", inbound.Type).Msg("dropping unknown inbound type")
			continue
		}
		select {
		case player.Commands <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, player *game.Player) error {
	for {
		select {
		case event := <-player.Events:
			outbound := outboundFromEvent(event)
			if outbound == nil {
				continue
			}
			if err := wsjson.Write(ctx, conn, outbound); err != nil {
				h.log.Error().Err(err).Str("player", player.ID).Msg("write ws event")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
