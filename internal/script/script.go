// Package script loads and plays recorded lifecycle event sessions.
// Scripts are YAML documents that drive the status area for demos and
// debugging; a set of bundled scripts is compiled into the binary.
package script

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/statui/internal/config"
	"github.com/jmylchreest/statui/internal/events"
)

// Step is one scripted event: wait for Delay, then publish Event with the
// typed form of Payload.
type Step struct {
	Delay   config.Duration `yaml:"delay"`
	Event   string          `yaml:"event"`
	Payload map[string]any  `yaml:"payload"`
}

// Script is a replayable event session.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Parse decodes and validates a YAML script document.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a script from a file, or from stdin when path is "-".
func LoadFile(path string) (*Script, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Validate checks every step against the event catalog. A typo in an
// event name is an authoring error even though the router would silently
// ignore the event at dispatch.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if step.Event == "" {
			return fmt.Errorf("step %d: missing event name", i+1)
		}
		if !events.Known(step.Event) {
			return fmt.Errorf("step %d: unknown event %q", i+1, step.Event)
		}
		if _, err := payloadFor(step.Event, step.Payload); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Event, err)
		}
	}
	return nil
}

// EventAt builds the bus event for step i.
func (s *Script) EventAt(i int) events.Event {
	step := s.Steps[i]
	payload, _ := payloadFor(step.Event, step.Payload)
	return events.Event{Type: step.Event, Data: payload}
}

// payloadFor converts a raw YAML payload map into the typed payload the
// router expects for the event. Events without a typed payload carry the
// raw map; the router's defensive defaults handle it.
func payloadFor(event string, raw map[string]any) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	switch event {
	case events.KernelAutorestarting, events.KernelConnectionFailed:
		attempt, err := intField(raw, "attempt")
		if err != nil {
			return nil, err
		}
		return events.Retry{Attempt: attempt}, nil

	case events.NotebookSaveFailed:
		reason, _ := raw["reason"].(string)
		return events.SaveFailure{Reason: reason}, nil

	case events.CheckpointCreated:
		ts, err := timeField(raw, "last_modified")
		if err != nil {
			return nil, err
		}
		return events.Checkpoint{LastModified: ts}, nil

	case events.AutosaveEnabled:
		interval, err := durationField(raw, "interval")
		if err != nil {
			return nil, err
		}
		return events.Autosave{Interval: interval}, nil

	case events.SessionStartFailed:
		var failure events.KernelFailure
		failure.Message, _ = raw["message"].(string)
		failure.ShortMessage, _ = raw["short_message"].(string)
		if lines, ok := raw["traceback"].([]any); ok {
			for _, line := range lines {
				if text, ok := line.(string); ok {
					failure.Traceback = append(failure.Traceback, text)
				}
			}
		}
		return failure, nil
	}

	return raw, nil
}

func intField(raw map[string]any, key string) (int, error) {
	v, ok := raw[key]
	if !ok {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("field %q: expected integer, got %T", key, v)
	}
}

func timeField(raw map[string]any, key string) (time.Time, error) {
	v, ok := raw[key]
	if !ok {
		return time.Time{}, nil
	}
	switch ts := v.(type) {
	case time.Time:
		return ts, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return time.Time{}, fmt.Errorf("field %q: %w", key, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("field %q: expected timestamp, got %T", key, v)
	}
}

func durationField(raw map[string]any, key string) (time.Duration, error) {
	v, ok := raw[key]
	if !ok {
		return 0, nil
	}
	switch d := v.(type) {
	case int:
		return time.Duration(d) * time.Millisecond, nil
	case int64:
		return time.Duration(d) * time.Millisecond, nil
	case float64:
		return time.Duration(d) * time.Millisecond, nil
	case string:
		var dur config.Duration
		if err := dur.UnmarshalText([]byte(d)); err != nil {
			return 0, fmt.Errorf("field %q: %w", key, err)
		}
		return dur.Duration(), nil
	default:
		return 0, fmt.Errorf("field %q: expected milliseconds or duration string, got %T", key, v)
	}
}
