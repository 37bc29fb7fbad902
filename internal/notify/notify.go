package notify

import "sync"

// NameOpenChallenge asks the active-challenge view to refresh itself,
// carrying the challenge that changed.
const NameOpenChallenge = "open_challenge"

// Notification is one named in-process broadcast
type Notification struct {
	// Name identifies the notification kind
	Name string

	// ChallengeID is the challenge the notification is about, if any
	ChallengeID string
}

// Bus is a small in-process broadcast hub: publishers push named
// notifications, subscribers receive every notification matching the
// name they registered for.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan Notification
}

// NewBus creates an empty notification bus
func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[int]chan Notification),
	}
}

// Subscribe registers for notifications with the given name. The cancel
// function removes the registration and closes the channel.
func (b *Bus) Subscribe(name string) (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Notification, 4)
	if b.subs[name] == nil {
		b.subs[name] = make(map[int]chan Notification)
	}
	b.subs[name][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if c, ok := b.subs[name][id]; ok {
			delete(b.subs[name], id)
			close(c)
		}
	}

	return ch, cancel
}

// Publish delivers a notification to every subscriber of its name
// without blocking on any of them.
func (b *Bus) Publish(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[n.Name] {
		select {
		case ch <- n:
		default:
			// Subscriber is backed up; it will act on a later notification
		}
	}
}
