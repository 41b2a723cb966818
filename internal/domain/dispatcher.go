package domain

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"stageline.io/stageline/internal/pkg/logger"
)

// EventHandler processes a domain event.
type EventHandler func(ctx context.Context, event *Event) error

// EventDispatcher routes domain events to registered handlers.
// Handlers run after the originating transaction commits; a failing handler
// never feeds back into the primary request's error channel.
type EventDispatcher struct {
	handlers map[EventType][]EventHandler
	mu       sync.RWMutex
}

// NewEventDispatcher creates a new EventDispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Register registers a handler for a specific event type.
func (d *EventDispatcher) Register(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch dispatches an event to all registered handlers.
// Handlers are called sequentially. If any handler fails, the error is logged
// but remaining handlers are still executed (best-effort delivery).
func (d *EventDispatcher) Dispatch(ctx context.Context, event *Event) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventType]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		logger.Debug("No handlers registered for event type",
			zap.String("event_type", string(event.EventType)),
			zap.String("event_id", event.EventID),
		)
		return nil
	}

	var firstErr error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			logger.Error("Event handler failed",
				zap.String("event_type", string(event.EventType)),
				zap.String("event_id", event.EventID),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = fmt.Errorf("handler for %s failed: %w", event.EventType, err)
			}
		}
	}

	return firstErr
}
