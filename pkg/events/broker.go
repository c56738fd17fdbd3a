package events

import (
	"sync"
	"time"
)

const (
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	PostVoted      = "post.voted"
	CommentCreated = "comment.created"
	CommentDeleted = "comment.deleted"
	CommentVoted   = "comment.voted"
)

type Event struct {
	Kind     string    `json:"kind"`
	Resource string    `json:"resource"`
	Post     string    `json:"post,omitempty"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}

// Broker fans events out to in-process subscribers. Delivery is
// at-most-once: a subscriber with a full buffer misses the event, and
// there is no replay.
type Broker struct {
	mu     sync.Mutex
	subs   []chan Event
	closed bool
}

func NewBroker() *Broker {
	return &Broker{}
}

func (b *Broker) Subscribe() <-chan Event {
	ch := make(chan Event, 16)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

func (b *Broker) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
