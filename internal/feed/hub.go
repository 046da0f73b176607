// Package feed delivers newly produced scenes to the player.
//
// A Hub maps event names to subscriber callbacks. Sources such as
// DirSource own their connection lifecycle and publish into a Hub.
package feed

import (
	"sync"

	"github.com/san-kum/animato/internal/scene"
)

// Event names.
const (
	SceneLoaded  = "scene.loaded"
	SceneFailed  = "scene.failed"
	Connected    = "source.connected"
	Disconnected = "source.disconnected"
)

type Event struct {
	Name  string
	Path  string
	Scene *scene.Scene
	Err   error
}

type Handler func(Event)

type subscriber struct {
	id int
	fn Handler
}

// Hub is a synchronous publish/subscribe registry. Handlers run on the
// publishing goroutine in subscription order.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[string][]subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string][]subscriber)}
}

// Subscribe registers fn for events named name. The returned function
// removes the registration; calling it more than once is harmless.
func (h *Hub) Subscribe(name string, fn Handler) (unsubscribe func()) {
	h.mu.Lock()
	h.next++
	id := h.next
	h.subs[name] = append(h.subs[name], subscriber{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(name, id) })
	}
}

func (h *Hub) remove(name string, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.subs[name]
	for i, s := range subs {
		if s.id == id {
			h.subs[name] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(h.subs[name]) == 0 {
		delete(h.subs, name)
	}
}

// Publish delivers ev to every current subscriber of ev.Name. Handlers
// may subscribe or unsubscribe while being called; changes take effect
// from the next Publish.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	subs := append([]subscriber(nil), h.subs[ev.Name]...)
	h.mu.Unlock()
	for _, s := range subs {
		s.fn(ev)
	}
}

// Count reports the number of subscribers for name.
func (h *Hub) Count(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[name])
}
