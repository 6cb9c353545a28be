// Package slugsync keeps a derived slug field consistent with a name field
// until the user takes ownership of the slug.
//
// The synchronizer is a two-state machine over State.UserEdited:
//
//	AUTO   (UserEdited=false)  name changes regenerate the slug
//	MANUAL (UserEdited=true)   name changes leave the slug alone
//
// Any edit to the slug moves the field to MANUAL, even when the typed value
// equals the generated one. The only way back to AUTO is blurring the slug
// field while it is blank.
//
// State is passed explicitly, so a form handler can rebuild it from the
// submitted values, apply one event and render the result:
//
//	s := slugsync.New(slugsync.State{Name: req.Name, Slug: req.Slug, UserEdited: req.UserEdited})
//	s.Apply(slugsync.Event{Kind: slugsync.EventNameChanged, Value: req.Name})
//	state := s.State()
//
// Load establishes the invariant once when a pre-filled form is first shown:
// a non-blank name always regenerates the slug, whatever the flag says.
package slugsync
