package live

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 256
)

// TopicAll receives every match event regardless of sport.
const TopicAll = "all"

func SportTopic(slug string) string { return "sport:" + slug }
func MatchTopic(id int) string      { return "match:" + strconv.Itoa(id) }

const (
	MessageMatchUpdated = "MATCH_UPDATED"
	MessageMatchDeleted = "MATCH_DELETED"
)

// Message is the wire frame the hub fans out to websocket subscribers.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type broadcast struct {
	topics []string
	data   []byte
}

// Hub is the push side of the live update channel: a room-per-topic fan-out
// fed by the mutation gateway. All room state is owned by the run loop; the
// channels are the only way in.
type Hub struct {
	log        *slog.Logger
	register   chan *Client
	unregister chan *Client
	broadcasts chan broadcast
	rooms      map[string]map[*Client]bool
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcasts: make(chan broadcast, 64),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Run owns the room registry. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			for _, topic := range client.topics {
				if _, ok := h.rooms[topic]; !ok {
					h.rooms[topic] = make(map[*Client]bool)
				}
				h.rooms[topic][client] = true
			}
			h.log.Debug("live client registered",
				slog.String("client_id", client.id),
				slog.Any("topics", client.topics))

		case client := <-h.unregister:
			for _, topic := range client.topics {
				room, ok := h.rooms[topic]
				if !ok {
					continue
				}
				if _, ok := room[client]; ok {
					delete(room, client)
					if len(room) == 0 {
						delete(h.rooms, topic)
					}
				}
			}
			client.closeSend()
			h.log.Debug("live client unregistered", slog.String("client_id", client.id))

		case b := <-h.broadcasts:
			delivered := make(map[*Client]bool)
			for _, topic := range b.topics {
				for client := range h.rooms[topic] {
					if delivered[client] {
						continue
					}
					delivered[client] = true
					select {
					case client.send <- b.data:
					default:
						// Slow consumer: drop the frame rather than block the hub.
						h.log.Warn("live client send buffer full, dropping frame",
							slog.String("client_id", client.id))
					}
				}
			}
		}
	}
}

func (h *Hub) publish(msg Message, topics ...string) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("failed to marshal live message", slog.Any("error", err))
		return
	}
	h.broadcasts <- broadcast{topics: topics, data: data}
}

// MatchUpdated implements the gateway's notifier: every successful mutation
// lands here and reaches match-, sport- and all-scoped subscribers.
func (h *Hub) MatchUpdated(match *models.Match) {
	topics := []string{TopicAll, MatchTopic(match.ID)}
	if match.Sport != nil {
		topics = append(topics, SportTopic(match.Sport.Slug))
	}
	h.publish(Message{Type: MessageMatchUpdated, Payload: match}, topics...)
}

func (h *Hub) MatchDeleted(match *models.Match) {
	topics := []string{TopicAll, MatchTopic(match.ID)}
	payload := map[string]interface{}{"id": match.ID}
	if match.Sport != nil {
		topics = append(topics, SportTopic(match.Sport.Slug))
		payload["sport_slug"] = match.Sport.Slug
	}
	h.publish(Message{Type: MessageMatchDeleted, Payload: payload}, topics...)
}

// Client is one websocket subscriber. Inbound frames are read only to service
// control messages (pong); viewers have nothing to say to the server.
type Client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	topics []string

	closeOnce sync.Once
}

// ServeClient registers a connection with the hub and starts its pumps. The
// pumps run until the connection drops or the hub unregisters the client.
func ServeClient(hub *Hub, conn *websocket.Conn, topics ...string) *Client {
	client := &Client{
		id:     uuid.NewString(),
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		topics: topics,
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
	return client
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("live client read error",
					slog.String("client_id", c.id), slog.Any("error", err))
			}
			return
		}
		// Inbound application frames are ignored.
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
