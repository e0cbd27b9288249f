// Package websocket pushes tracker changes to open dashboards. Clients
// subscribe to topics (one per tracker) and receive every event published
// on them; the "*" topic receives everything.
package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gorillawebsocket "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	TopicAll          = "*"
	TopicAssessment   = "assessment"
	TopicMealPlan     = "mealplan"
	TopicNutritionLog = "nutritionlog"
	TopicHydration    = "hydration"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

// Event is the message written to subscribers, e.g.
// {"type":"hydration.updated","topic":"hydration","data":{...}}.
type Event struct {
	Type      string          `json:"type"`
	Topic     string          `json:"topic"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewEvent builds an "<topic>.<action>" event carrying payload as its data.
func NewEvent(topic, action string, payload interface{}) (Event, error) {
	evt := Event{
		Type:      topic + "." + action,
		Topic:     topic,
		Timestamp: time.Now().UTC(),
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Event{}, fmt.Errorf("encode %s payload: %w", evt.Type, err)
		}
		evt.Data = raw
	}
	return evt, nil
}

// ClientMessage is sent by a client to change its subscriptions.
type ClientMessage struct {
	Action string   `json:"action"`
	Topics []string `json:"topics"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// Notify publishes an "<topic>.updated" event. A nil publisher is allowed so
// services can run without a hub (CLI, tests). Failures are logged, never
// returned: a missed refresh must not fail the write that caused it.
func Notify(ctx context.Context, pub EventPublisher, logger zerolog.Logger, topic string, payload interface{}) {
	if pub == nil {
		return
	}
	evt, err := NewEvent(topic, "updated", payload)
	if err == nil {
		err = pub.Publish(ctx, evt)
	}
	if err != nil {
		logger.Warn().Err(err).Str("topic", topic).Msg("event not published")
	}
}

type Client struct {
	ID     string
	Topics map[string]struct{}
	Send   chan []byte
}

func newClient(topics ...string) *Client {
	c := &Client{
		ID:     uuid.New().String(),
		Topics: make(map[string]struct{}),
		Send:   make(chan []byte, sendBuffer),
	}
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			c.Topics[t] = struct{}{}
		}
	}
	return c
}

// Hub tracks connected clients by topic.
type Hub struct {
	mu      sync.RWMutex
	topics  map[string]map[*Client]struct{}
	clients map[*Client]struct{}
	logger  zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		topics:  make(map[string]map[*Client]struct{}),
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	for t := range c.Topics {
		h.addLocked(c, t)
	}
}

// Unregister removes c and closes its send channel. Safe to call twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	for t := range c.Topics {
		h.removeLocked(c, t)
	}
	delete(h.clients, c)
	close(c.Send)
}

func (h *Hub) Subscribe(c *Client, topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range topics {
		c.Topics[t] = struct{}{}
		h.addLocked(c, t)
	}
}

func (h *Hub) Unsubscribe(c *Client, topics ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range topics {
		delete(c.Topics, t)
		h.removeLocked(c, t)
	}
}

func (h *Hub) addLocked(c *Client, topic string) {
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]struct{})
	}
	h.topics[topic][c] = struct{}{}
}

func (h *Hub) removeLocked(c *Client, topic string) {
	subs, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(subs, c)
	if len(subs) == 0 {
		delete(h.topics, topic)
	}
}

func (h *Hub) handleMessage(c *Client, msg ClientMessage) {
	switch msg.Action {
	case "subscribe":
		h.Subscribe(c, msg.Topics...)
	case "unsubscribe":
		h.Unsubscribe(c, msg.Topics...)
	}
}

// Publish delivers event to subscribers of its topic and of TopicAll. Slow
// clients whose buffer is full miss the event.
func (h *Hub) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := make(map[*Client]struct{})
	for _, topic := range []string{event.Topic, TopicAll} {
		for c := range h.topics[topic] {
			if _, done := delivered[c]; done {
				continue
			}
			delivered[c] = struct{}{}
			select {
			case c.Send <- data:
			default:
				h.logger.Debug().Str("client_id", c.ID).Str("type", event.Type).Msg("client buffer full, event dropped")
			}
		}
	}
	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) TopicCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// ---- HTTP upgrade ----

var upgrader = gorillawebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/ws", h.Connect)
}

// Connect upgrades the request. Initial topics come from ?topics=a,b and
// default to TopicAll.
func (h *Handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	topics := []string{TopicAll}
	if q := c.QueryParam("topics"); q != "" {
		topics = strings.Split(q, ",")
	}
	client := newClient(topics...)
	h.hub.Register(client)

	go h.writePump(client, ws)
	go h.readPump(client, ws)
	return nil
}

func (h *Handler) readPump(client *Client, ws *gorillawebsocket.Conn) {
	defer func() {
		h.hub.Unregister(client)
		ws.Close()
	}()

	ws.SetReadLimit(4096)
	ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		h.hub.handleMessage(client, msg)
	}
}

func (h *Handler) writePump(client *Client, ws *gorillawebsocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				ws.WriteMessage(gorillawebsocket.CloseMessage, []byte{})
				return
			}
			if err := ws.WriteMessage(gorillawebsocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(gorillawebsocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
