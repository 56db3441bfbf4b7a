// Package editor models an editing session over post content as a pure
// reducer: every action yields a new State that carries the validation
// result of the whole block sequence.
package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/devbook/internal/content"
)

// IDFunc returns a fresh block id.
type IDFunc func() string

// Entry is a block plus the stable id the session assigned to it. The id
// follows the block through moves and removals of its neighbours.
type Entry struct {
	ID    string
	Block content.Block
}

type entryJSON struct {
	ID    string          `json:"id"`
	Block json.RawMessage `json:"block"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	block, err := content.MarshalBlock(e.Block)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entryJSON{ID: e.ID, Block: block})
}

// UnmarshalJSON accepts blocks that are still incomplete.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	block, err := content.UnmarshalDraftBlock(raw.Block)
	if err != nil {
		return err
	}
	e.ID = raw.ID
	e.Block = block
	return nil
}

// State is a snapshot of the editor. Errors always describes Entries.
type State struct {
	Entries  []Entry
	Errors   *content.ValidationError
	Language string
}

// New validates entries and returns the resulting state.
func New(entries []Entry, language string) State {
	copied := make([]Entry, len(entries))
	for i, e := range entries {
		copied[i] = Entry{ID: e.ID, Block: content.Clone(e.Block)}
	}
	return revalidate(State{Entries: copied, Language: language})
}

// FromContent seeds a state from stored content, assigning ids with newID
// (random UUIDs when nil).
func FromContent(c content.PostContent, newID IDFunc) State {
	if newID == nil {
		newID = uuid.NewString
	}
	entries := make([]Entry, len(c.Blocks))
	for i, b := range c.Blocks {
		entries[i] = Entry{ID: newID(), Block: b}
	}
	return New(entries, "")
}

func (s State) Valid() bool {
	return s.Errors.Empty()
}

func (s State) Len() int {
	return len(s.Entries)
}

// Content returns the blocks in order, without ids.
func (s State) Content() content.PostContent {
	blocks := make([]content.Block, len(s.Entries))
	for i, e := range s.Entries {
		blocks[i] = e.Block
	}
	return content.PostContent{Blocks: blocks}
}

func (s State) IDs() []string {
	ids := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		ids[i] = e.ID
	}
	return ids
}

func revalidate(s State) State {
	s.Errors = nil
	err := content.Check(s.Content(), content.WithLanguage(s.Language))
	var verr *content.ValidationError
	if errors.As(err, &verr) {
		s.Errors = verr
	}
	return s
}

func (s State) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.Entries) {
		return fmt.Errorf("%w: %s index %d, have %d blocks", ErrOutOfRange, op, index, len(s.Entries))
	}
	return nil
}
