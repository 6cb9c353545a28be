package requests

import (
	"strings"

	"github.com/sapujagad-id/botpanel/pkg/slugsync"
)

// SlugEvent carries the slug field state with one htmx event.
// Values are taken as typed; the synchronizer slugifies what it derives.
type SlugEvent struct {
	Name       string `form:"name"`
	Slug       string `form:"slug"`
	UserEdited string `form:"user_edited"`
}

// State returns the state before the event is applied.
func (e *SlugEvent) State() slugsync.State {
	return slugsync.State{
		Name:       e.Name,
		Slug:       e.Slug,
		UserEdited: slugsync.ParseUserEdited(e.UserEdited),
	}
}

// Event builds the synchronizer event of kind from the submitted values.
func (e *SlugEvent) Event(kind slugsync.EventKind) slugsync.Event {
	ev := slugsync.Event{Kind: kind}
	switch kind {
	case slugsync.EventNameChanged:
		ev.Value = e.Name
	case slugsync.EventSlugEdited:
		ev.Value = e.Slug
	}
	return ev
}

// SlugCheck is the query of a slug uniqueness check.
type SlugCheck struct {
	Slug string `form:"slug"`
}

func (q *SlugCheck) Sanitize() {
	q.Slug = strings.TrimSpace(q.Slug)
}

// Blank reports whether there is nothing to check.
func (q *SlugCheck) Blank() bool {
	return q.Slug == ""
}
