package slugsync

import (
	"strings"

	"github.com/sapujagad-id/botpanel/pkg/slug"
)

// Synchronizer applies field events to a State.
// A Synchronizer is not safe for concurrent use; each form owns its own.
type Synchronizer struct {
	state State
}

// New returns a synchronizer starting from the given state.
func New(initial State) *Synchronizer {
	return &Synchronizer{state: initial}
}

// State returns a copy of the current state.
func (s *Synchronizer) State() State {
	return s.state
}

// Load regenerates the slug from a non-blank name regardless of UserEdited.
// The flag itself is left as it was.
func (s *Synchronizer) Load() {
	if strings.TrimSpace(s.state.Name) != "" {
		s.state.Slug = slug.Make(s.state.Name)
	}
}

// NameChanged records a new name and propagates it while in AUTO mode.
func (s *Synchronizer) NameChanged(name string) {
	s.state.Name = name
	if !s.state.UserEdited {
		s.state.Slug = slug.Make(name)
	}
}

// SlugEdited records a direct edit of the slug and switches to MANUAL mode.
func (s *Synchronizer) SlugEdited(value string) {
	s.state.Slug = value
	s.state.UserEdited = true
}

// SlugBlurred resets to AUTO mode when the slug was left blank.
func (s *Synchronizer) SlugBlurred() {
	if strings.TrimSpace(s.state.Slug) != "" {
		return
	}
	s.state.UserEdited = false
	s.state.Slug = slug.Make(s.state.Name)
}

// Apply dispatches a single event. Unknown kinds are ignored.
func (s *Synchronizer) Apply(ev Event) {
	switch ev.Kind {
	case EventLoad:
		s.Load()
	case EventNameChanged:
		s.NameChanged(ev.Value)
	case EventSlugEdited:
		s.SlugEdited(ev.Value)
	case EventSlugBlurred:
		s.SlugBlurred()
	}
}

// Replay applies events in order and returns the final state.
func Replay(initial State, events ...Event) State {
	s := New(initial)
	for _, ev := range events {
		s.Apply(ev)
	}
	return s.State()
}
