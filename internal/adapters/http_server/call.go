package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"aadhira_hotel/internal/app"
)

// callFrame is one client message on the call channel.
type callFrame struct {
	Type   string `json:"type"` // dial|say|delivered|hangup
	Number string `json:"number,omitempty"`
	Text   string `json:"text,omitempty"`
}

// callEvent is one server message. Listen tells the client whether to open
// its microphone.
type callEvent struct {
	Type   string `json:"type"` // reply|status|error
	Text   string `json:"text,omitempty"`
	Listen bool   `json:"listen"`
	Source string `json:"source,omitempty"`
	Intent string `json:"intent,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
	// Browsers and phone bridges connect from arbitrary origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const callIdle = 5 * time.Minute

func (h *Handlers) call(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("call upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(16 * 1024)

	c := app.NewCall(uuid.NewString(), h.Resolver, h.CallNumber)
	l := log.With().Str("call", c.ID).Logger()
	l.Info().Msg("call channel opened")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(callIdle))
		var f callFrame
		if err := conn.ReadJSON(&f); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				l.Warn().Err(err).Msg("call read failed")
			}
			return
		}

		var ev callEvent
		done := false
		switch f.Type {
		case "dial":
			text, ok := c.Dial(f.Number)
			ev = callEvent{Type: "status", Text: text, Listen: ok}
		case "say":
			reply, err := c.Say(ctx, f.Text)
			if err != nil {
				ev = callEvent{Type: "error", Text: err.Error()}
				break
			}
			// listening resumes only after the client reports playback done
			ev = callEvent{Type: "reply", Text: reply.Text, Source: string(reply.Source), Intent: string(reply.Intent)}
		case "delivered":
			ev = callEvent{Type: "status", Listen: c.ReplyDelivered()}
		case "hangup":
			ev = callEvent{Type: "status", Text: c.HangUp(ctx)}
			done = true
		default:
			ev = callEvent{Type: "error", Text: "unknown frame type " + f.Type}
		}

		if err := conn.WriteJSON(ev); err != nil {
			l.Warn().Err(err).Msg("call write failed")
			return
		}
		if done {
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "hung up"))
			l.Info().Msg("call ended")
			return
		}
	}
}
