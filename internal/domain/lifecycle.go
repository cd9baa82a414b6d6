package domain

import (
	"encoding/json"
	"fmt"
)

// Event is a lifecycle phase name as the build host reports it.
type Event string

const (
	EventPreBuild  Event = "onPreBuild"
	EventBuild     Event = "onBuild"
	EventPostBuild Event = "onPostBuild"
	EventError     Event = "onError"
	EventSuccess   Event = "onSuccess"
	EventEnd       Event = "onEnd"
)

// Events lists every lifecycle event in the order the host runs them.
func Events() []Event {
	return []Event{
		EventPreBuild,
		EventBuild,
		EventPostBuild,
		EventError,
		EventSuccess,
		EventEnd,
	}
}

// ParseEvent validates a lifecycle event name.
func ParseEvent(name string) (Event, error) {
	if name == "" {
		return "", fmt.Errorf("missing lifecycle event")
	}
	for _, e := range Events() {
		if string(e) == name {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown lifecycle event: %s", name)
}

// LifecycleInput is the JSON the build host writes to a hook's stdin.
// Only Event is interpreted; the rest is carried through for handlers.
type LifecycleInput struct {
	Event         Event           `json:"event"`
	Constants     json.RawMessage `json:"constants,omitempty"`
	Inputs        json.RawMessage `json:"inputs,omitempty"`
	NetlifyConfig json.RawMessage `json:"netlify_config,omitempty"`
}

// ParseLifecycleInput parses raw JSON into a LifecycleInput with a known event.
func ParseLifecycleInput(data []byte) (*LifecycleInput, error) {
	var input LifecycleInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse lifecycle input: %w", err)
	}

	event, err := ParseEvent(string(input.Event))
	if err != nil {
		return nil, err
	}
	input.Event = event

	return &input, nil
}
