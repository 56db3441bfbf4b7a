package editor

import (
	"github.com/google/uuid"

	"github.com/devbook/internal/content"
)

// Session holds the current state of one editing session. It is not safe
// for concurrent use.
type Session struct {
	state State
	newID IDFunc
}

// NewSession starts a session at state. A nil newID uses random UUIDs.
func NewSession(state State, newID IDFunc) *Session {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Session{state: state, newID: newID}
}

// Apply reduces action into the session. On error the state is kept.
func (s *Session) Apply(action Action) error {
	if a, ok := action.(Append); ok && a.ID == "" {
		a.ID = s.newID()
		action = a
	}
	next, err := Reduce(s.state, action)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Session) State() State {
	return s.state
}

// CanSubmit reports whether the current blocks form valid post content.
func (s *Session) CanSubmit() bool {
	return len(s.state.Entries) > 0 && s.state.Valid()
}

// Content returns the current blocks, or the validation error that blocks submission.
func (s *Session) Content() (content.PostContent, error) {
	if err := s.state.Errors.Err(); err != nil {
		return content.PostContent{}, err
	}
	return s.state.Content(), nil
}
