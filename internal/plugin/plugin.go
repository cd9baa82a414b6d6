// Package plugin models the build host's plugin contract: a named set of
// handlers keyed by lifecycle event.
package plugin

import (
	"context"
	"fmt"

	"github.com/emiliopalmerini/installhook/internal/domain"
)

// Handler runs for one lifecycle event. A returned error fails the build.
type Handler func(ctx context.Context, input *domain.LifecycleInput) error

// Plugin is a named collection of lifecycle handlers.
type Plugin struct {
	Name        string
	Description string
	handlers    map[domain.Event]Handler
}

// New creates a plugin with no handlers.
func New(name, description string) *Plugin {
	return &Plugin{
		Name:        name,
		Description: description,
		handlers:    make(map[domain.Event]Handler),
	}
}

// Register binds a handler to an event. Each event takes at most one handler.
func (p *Plugin) Register(event domain.Event, h Handler) error {
	if _, err := domain.ParseEvent(string(event)); err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("nil handler for %s", event)
	}
	if _, exists := p.handlers[event]; exists {
		return fmt.Errorf("handler already registered for %s", event)
	}
	p.handlers[event] = h
	return nil
}

// Handles reports whether a handler is registered for event.
func (p *Plugin) Handles(event domain.Event) bool {
	_, ok := p.handlers[event]
	return ok
}

// Events returns the handled events in lifecycle order.
func (p *Plugin) Events() []domain.Event {
	var events []domain.Event
	for _, e := range domain.Events() {
		if p.Handles(e) {
			events = append(events, e)
		}
	}
	return events
}

// Dispatch runs the handler for input.Event. Events without a handler
// complete successfully.
func (p *Plugin) Dispatch(ctx context.Context, input *domain.LifecycleInput) error {
	if input == nil {
		return fmt.Errorf("nil lifecycle input")
	}
	h, ok := p.handlers[input.Event]
	if !ok {
		return nil
	}
	if err := h(ctx, input); err != nil {
		return fmt.Errorf("%s %s: %w", p.Name, input.Event, err)
	}
	return nil
}
