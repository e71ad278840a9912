package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ghs-carnival/carnival-server/live"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler attaches clients to the push hub. Subscriptions are
// fixed at connect time by the requested URL.
type WebSocketHandler struct {
	hub *live.Hub
	log *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, log *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, log: log}
}

// Live subscribes to every match event, or to a single sport when
// sport_slug is given.
func (h *WebSocketHandler) Live(w http.ResponseWriter, r *http.Request) {
	topic := live.TopicAll
	if sportSlug := r.URL.Query().Get("sport_slug"); sportSlug != "" {
		topic = live.SportTopic(sportSlug)
	}
	h.serve(w, r, topic)
}

// Match subscribes to events for one match.
func (h *WebSocketHandler) Match(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.serve(w, r, live.MatchTopic(matchID))
}

func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, topics ...string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", "error", err)
		return
	}
	live.ServeClient(h.hub, conn, topics...)
}
