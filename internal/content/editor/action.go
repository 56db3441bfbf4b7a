package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/devbook/internal/content"
)

var (
	ErrOutOfRange    = errors.New("editor: index out of range")
	ErrUnknownField  = errors.New("editor: unknown field")
	ErrInvalidValue  = errors.New("editor: invalid value")
	ErrUnknownType   = errors.New("editor: unknown block type")
	ErrNotList       = errors.New("editor: block is not a list")
	ErrInvalidAction = errors.New("editor: invalid action")
)

// Action is one edit. The set is closed: Append, Remove, Move, UpdateField,
// AppendItem and RemoveItem.
type Action interface {
	Op() string
	isAction()
}

// Append adds the default draft of Type at the end. ID is assigned to the
// new entry; Session fills it when empty.
type Append struct {
	Type content.BlockType
	ID   string
}

type Remove struct {
	Index int
}

// Move relocates the block at From so that it ends up at To.
type Move struct {
	From int
	To   int
}

// UpdateField sets one field of the block at Index. Field is a block-relative
// path: text, level, style, language, filename, code, explanation or items[n].
type UpdateField struct {
	Index int
	Field string
	Value any
}

type AppendItem struct {
	Index int
}

type RemoveItem struct {
	Index int
	Item  int
}

func (Append) Op() string      { return "append" }
func (Remove) Op() string      { return "remove" }
func (Move) Op() string        { return "move" }
func (UpdateField) Op() string { return "updateField" }
func (AppendItem) Op() string  { return "appendItem" }
func (RemoveItem) Op() string  { return "removeItem" }

func (Append) isAction()      {}
func (Remove) isAction()      {}
func (Move) isAction()        {}
func (UpdateField) isAction() {}
func (AppendItem) isAction()  {}
func (RemoveItem) isAction()  {}

type actionJSON struct {
	Op    string          `json:"op"`
	Type  string          `json:"type"`
	Index *int            `json:"index"`
	From  *int            `json:"from"`
	To    *int            `json:"to"`
	Item  *int            `json:"item"`
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// DecodeAction reads the JSON form of an action, e.g.
// {"op":"append","type":"list"} or {"op":"move","from":0,"to":2}.
func DecodeAction(raw []byte) (Action, error) {
	var a actionJSON
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}

	need := func(name string, v *int) (int, error) {
		if v == nil {
			return 0, fmt.Errorf("%w: %s requires %q", ErrInvalidAction, a.Op, name)
		}
		return *v, nil
	}

	switch a.Op {
	case "append":
		t, ok := content.ParseBlockType(a.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, a.Type)
		}
		return Append{Type: t}, nil
	case "remove":
		index, err := need("index", a.Index)
		if err != nil {
			return nil, err
		}
		return Remove{Index: index}, nil
	case "move":
		from, err := need("from", a.From)
		if err != nil {
			return nil, err
		}
		to, err := need("to", a.To)
		if err != nil {
			return nil, err
		}
		return Move{From: from, To: to}, nil
	case "updateField":
		index, err := need("index", a.Index)
		if err != nil {
			return nil, err
		}
		if a.Field == "" {
			return nil, fmt.Errorf("%w: updateField requires \"field\"", ErrInvalidAction)
		}
		var value any
		if len(a.Value) > 0 {
			if err := json.Unmarshal(a.Value, &value); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
		}
		return UpdateField{Index: index, Field: a.Field, Value: value}, nil
	case "appendItem":
		index, err := need("index", a.Index)
		if err != nil {
			return nil, err
		}
		return AppendItem{Index: index}, nil
	case "removeItem":
		index, err := need("index", a.Index)
		if err != nil {
			return nil, err
		}
		item, err := need("item", a.Item)
		if err != nil {
			return nil, err
		}
		return RemoveItem{Index: index, Item: item}, nil
	}
	return nil, fmt.Errorf("%w: unknown op %q", ErrInvalidAction, a.Op)
}
