package roster

import (
	"sync"
	"time"

	"github.com/adrs/attendance-sheet/internal/pkg/sse"
)

// How long flash messages stay visible
const (
	MessageTTL = 3 * time.Second
	SaveAckTTL = 2 * time.Second
)

// SSE event names published by the notifier
const (
	EventMessage        = "message"
	EventMessageCleared = "message_cleared"
)

type MessageType string

const (
	MessageSuccess MessageType = "success"
	MessageError   MessageType = "error"
)

// Message is a transient user-facing notification
type Message struct {
	ID        uint64      `json:"id"`
	Type      MessageType `json:"type"`
	Text      string      `json:"text"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Publisher receives every show and clear; *sse.Hub satisfies it
type Publisher interface {
	Publish(event sse.Event)
}

// scheduleFunc runs fn after d and returns a stop function
type scheduleFunc func(d time.Duration, fn func()) func() bool

func afterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Notifier holds at most one message and clears it after its TTL.
// A newer message cancels the previous clear.
type Notifier struct {
	mu        sync.Mutex
	seq       uint64
	current   *Message
	stopTimer func() bool
	publisher Publisher
	now       func() time.Time
	schedule  scheduleFunc
}

// NewNotifier creates a notifier; publisher may be nil
func NewNotifier(publisher Publisher) *Notifier {
	return &Notifier{
		publisher: publisher,
		now:       time.Now,
		schedule:  afterFunc,
	}
}

// Show replaces the current message and schedules its removal after ttl
func (n *Notifier) Show(kind MessageType, text string, ttl time.Duration) Message {
	n.mu.Lock()
	n.seq++
	msg := Message{
		ID:        n.seq,
		Type:      kind,
		Text:      text,
		ExpiresAt: n.now().Add(ttl),
	}
	if n.stopTimer != nil {
		n.stopTimer()
	}
	n.current = &msg
	id := msg.ID
	n.stopTimer = n.schedule(ttl, func() { n.clear(id) })
	n.mu.Unlock()

	n.publish(sse.Event{Name: EventMessage, Data: msg})
	return msg
}

// Current returns the visible message, if any
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Message{}, false
	}
	return *n.current, true
}

// Close drops the current message and its pending clear
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.stopTimer != nil {
		n.stopTimer()
		n.stopTimer = nil
	}
	n.current = nil
}

func (n *Notifier) clear(id uint64) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.stopTimer = nil
	n.mu.Unlock()

	n.publish(sse.Event{Name: EventMessageCleared, Data: map[string]uint64{"id": id}})
}

func (n *Notifier) publish(event sse.Event) {
	if n.publisher != nil {
		n.publisher.Publish(event)
	}
}
