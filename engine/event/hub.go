// Package event is a synchronous typed lifecycle hub.
//
// The host emits lifecycle events and subscribers run immediately, in
// subscription order, on the emitting goroutine.
package event

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/coolhome/coolhome/engine/chutils"
)

// Hub dispatches events to handlers subscribed to their type
type Hub struct {
	mu       sync.Mutex // only protects handler registration
	handlers map[reflect.Type][]any
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		handlers: make(map[reflect.Type][]any),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Subscribe registers a typed handler for events of type T
func Subscribe[T any](h *Hub, fn func(T)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t := typeOf[T]()
	h.handlers[t] = append(h.handlers[t], fn)
}

// Emit delivers the event to every handler of type T. A panicking handler
// is logged and does not stop the remaining handlers.
func Emit[T any](h *Hub, ev T) {
	t := typeOf[T]()
	h.mu.Lock()
	handlers := h.handlers[t]
	h.mu.Unlock()

	for _, handler := range handlers {
		fn := handler.(func(T))
		chutils.RunPanicless(fmt.Sprintf("event %s handler", t), func() {
			fn(ev)
		})
	}
}

// HandlerCount returns the number of handlers subscribed to T
func HandlerCount[T any](h *Hub) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers[typeOf[T]()])
}
