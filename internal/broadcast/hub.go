package broadcast

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/tourist_safety_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

type outbound struct {
	topic string
	data  []byte
}

// Hub раздает сообщения топиков подключенным WebSocket-клиентам.
// Множеством клиентов владеет только горутина Run.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
	done       chan struct{}

	topics   map[string]struct{}
	upgrader websocket.Upgrader
	logger   *logrus.Logger
	count    atomic.Int64
}

// NewHub создает хаб для заданных топиков. Пустой allowedOrigins разрешает любой Origin.
func NewHub(logger *logrus.Logger, topics []string, allowedOrigins []string) *Hub {
	known := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		known[t] = struct{}{}
	}

	h := &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, sendBufferSize),
		done:       make(chan struct{}),
		topics:     known,
		logger:     logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// Run обслуживает регистрацию клиентов и рассылку до отмены ctx
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			h.drop(client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Broadcast hub stopped")
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.updateCount()
			client.logger.Info("WebSocket client subscribed")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				client.logger.Info("WebSocket client unsubscribed")
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.subscribed(msg.topic) {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					// медленный клиент
					h.drop(client)
					client.logger.Warn("WebSocket client dropped: send buffer full")
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.updateCount()
}

func (h *Hub) updateCount() {
	h.count.Store(int64(len(h.clients)))
	metrics.WebSocketSubscribers.Set(float64(len(h.clients)))
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Publish кодирует payload и рассылает его подписчикам топика
func (h *Hub) Publish(ctx context.Context, topic string, payload any) error {
	data, err := encode(topic, payload)
	if err != nil {
		return err
	}
	return h.Deliver(ctx, topic, data)
}

// Deliver рассылает уже закодированное сообщение
func (h *Hub) Deliver(ctx context.Context, topic string, data []byte) error {
	select {
	case h.broadcast <- outbound{topic: topic, data: data}:
		return nil
	case <-h.done:
		return fmt.Errorf("broadcast hub is stopped")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) subscribe(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unsubscribe(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ServeHTTP поднимает WebSocket-подписку: GET /ws?topics=locations,alerts.
// Без параметра topics клиент подписывается на все топики.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := h.parseTopics(r.URL.Query().Get("topics"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже записал ответ
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	id := uuid.NewString()
	client := &Client{
		ID:     id,
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		topics: topics,
		logger: h.logger.WithFields(logrus.Fields{"component": "ws", "client_id": id}),
	}
	if !h.subscribe(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (h *Hub) parseTopics(raw string) (map[string]struct{}, error) {
	selected := make(map[string]struct{})
	if strings.TrimSpace(raw) == "" {
		for t := range h.topics {
			selected[t] = struct{}{}
		}
		return selected, nil
	}

	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := h.topics[t]; !ok {
			return nil, fmt.Errorf("unknown topic %q", t)
		}
		selected[t] = struct{}{}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no topics requested")
	}
	return selected, nil
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(o, "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[strings.TrimRight(origin, "/")]
		return ok
	}
}
