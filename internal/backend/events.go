package backend

import "sync"

// EventReloadShortcuts tells views to fetch the list again
const EventReloadShortcuts = "reload-shortcuts"

// Bus delivers named events to subscribers. Handlers run synchronously on the
// publishing goroutine; UI handlers hop to the main thread themselves.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func()
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func())}
}

// Subscribe registers fn for event and returns a func that removes it
func (b *Bus) Subscribe(event string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	if b.subs[event] == nil {
		b.subs[event] = make(map[int]func())
	}
	b.subs[event][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[event], id)
			b.mu.Unlock()
		})
	}
}

// Publish calls every subscriber of event
func (b *Bus) Publish(event string) {
	b.mu.Lock()
	handlers := make([]func(), 0, len(b.subs[event]))
	for _, fn := range b.subs[event] {
		handlers = append(handlers, fn)
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
