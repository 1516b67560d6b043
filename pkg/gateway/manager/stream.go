package manager

import (
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/hookworks/hookd/pkg/gateway/model"
	"github.com/sirupsen/logrus"
)

// A slow consumer loses events once its buffer is full. The stream is a
// live tail, not a durable feed.
const subscriberBufferSize = 64

// EventHub fans ingested events out to websocket subscribers. It implements
// ingest.Notifier.
type EventHub struct {
	mu          sync.Mutex
	subscribers map[chan model.WebhookEvent]struct{}

	wsUpgrader websocket.Upgrader
}

func NewEventHub() *EventHub {
	return &EventHub{
		subscribers: make(map[chan model.WebhookEvent]struct{}),
	}
}

func (h *EventHub) NotifyEvent(event model.WebhookEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (h *EventHub) subscribe() chan model.WebhookEvent {
	ch := make(chan model.WebhookEvent, subscriberBufferSize)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *EventHub) unsubscribe(ch chan model.WebhookEvent) {
	h.mu.Lock()
	delete(h.subscribers, ch)
	h.mu.Unlock()
}

func (h *EventHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Errorf("failed to upgrade websocket: %v", err)
		return
	}
	defer c.Close()

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case event := <-ch:
			payload, err := json.Marshal(event)
			if err != nil {
				logrus.Errorf("failed to encode event for stream: %v", err)
				continue
			}
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return
				}
				logrus.Warnf("failed to write event to stream: %v", err)
				return
			}
		}
	}
}
