package slugsync

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownEvent is returned when an event kind cannot be parsed.
var ErrUnknownEvent = errors.New("slugsync: unknown event")

// State is the pair of field values plus the manual-override flag.
type State struct {
	Name       string
	Slug       string
	UserEdited bool
}

// Mode is the synchronizer state derived from UserEdited.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
)

// Mode reports whether the slug is auto-derived or manually owned.
func (s State) Mode() Mode {
	if s.UserEdited {
		return ModeManual
	}
	return ModeAuto
}

// EventKind identifies a field event.
type EventKind string

const (
	EventLoad        EventKind = "load"
	EventNameChanged EventKind = "name"
	EventSlugEdited  EventKind = "edit"
	EventSlugBlurred EventKind = "blur"
)

// Event is a single field event. Value carries the new field content for
// EventNameChanged and EventSlugEdited and is ignored otherwise.
type Event struct {
	Kind  EventKind
	Value string
}

// ParseEventKind converts a raw event name into an EventKind.
func ParseEventKind(raw string) (EventKind, error) {
	switch k := EventKind(raw); k {
	case EventLoad, EventNameChanged, EventSlugEdited, EventSlugBlurred:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, raw)
	}
}

// ParseUserEdited reads the form representation of the flag.
// Missing or unparsable values count as false.
func ParseUserEdited(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
