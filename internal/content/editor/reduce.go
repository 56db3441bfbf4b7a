package editor

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/devbook/internal/content"
)

var itemField = regexp.MustCompile(`^items\[(\d+)\]$`)

// Reduce applies action to state and returns the next state. The input is
// never modified. On error the input state is returned unchanged.
func Reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case Append:
		draft, ok := content.NewDraft(a.Type)
		if !ok {
			return state, fmt.Errorf("%w: %q", ErrUnknownType, a.Type)
		}
		entries := make([]Entry, 0, len(state.Entries)+1)
		entries = append(entries, state.Entries...)
		entries = append(entries, Entry{ID: a.ID, Block: draft})
		return next(state, entries), nil

	case Remove:
		if err := state.checkIndex("remove", a.Index); err != nil {
			return state, err
		}
		entries := make([]Entry, 0, len(state.Entries)-1)
		entries = append(entries, state.Entries[:a.Index]...)
		entries = append(entries, state.Entries[a.Index+1:]...)
		return next(state, entries), nil

	case Move:
		if err := state.checkIndex("move from", a.From); err != nil {
			return state, err
		}
		if err := state.checkIndex("move to", a.To); err != nil {
			return state, err
		}
		if a.From == a.To {
			return state, nil
		}
		entries := make([]Entry, 0, len(state.Entries))
		moved := state.Entries[a.From]
		for i, e := range state.Entries {
			if i != a.From {
				entries = append(entries, e)
			}
		}
		entries = slices.Insert(entries, a.To, moved)
		return next(state, entries), nil

	case UpdateField:
		if err := state.checkIndex("update", a.Index); err != nil {
			return state, err
		}
		block := state.Entries[a.Index].Block
		if !content.Known(block) {
			return state, fmt.Errorf("%w: block %d", ErrUnknownType, a.Index)
		}
		res := content.Visit[setResult](block, fieldSetter{field: a.Field, value: a.Value})
		if res.err != nil {
			return state, res.err
		}
		return replace(state, a.Index, res.block), nil

	case AppendItem:
		if err := state.checkIndex("append item", a.Index); err != nil {
			return state, err
		}
		list, err := listAt(state, a.Index)
		if err != nil {
			return state, err
		}
		list.Items = append(append([]string(nil), list.Items...), "")
		return replace(state, a.Index, list), nil

	case RemoveItem:
		if err := state.checkIndex("remove item", a.Index); err != nil {
			return state, err
		}
		list, err := listAt(state, a.Index)
		if err != nil {
			return state, err
		}
		if a.Item < 0 || a.Item >= len(list.Items) {
			return state, fmt.Errorf("%w: item %d, have %d", ErrOutOfRange, a.Item, len(list.Items))
		}
		items := make([]string, 0, len(list.Items)-1)
		items = append(items, list.Items[:a.Item]...)
		list.Items = append(items, list.Items[a.Item+1:]...)
		return replace(state, a.Index, list), nil
	}
	return state, fmt.Errorf("%w: %T", ErrInvalidAction, action)
}

func next(state State, entries []Entry) State {
	return revalidate(State{Entries: entries, Language: state.Language})
}

func replace(state State, index int, b content.Block) State {
	entries := make([]Entry, len(state.Entries))
	copy(entries, state.Entries)
	entries[index] = Entry{ID: entries[index].ID, Block: b}
	return next(state, entries)
}

func listAt(state State, index int) (content.List, error) {
	switch b := state.Entries[index].Block.(type) {
	case content.List:
		return b, nil
	case *content.List:
		if b != nil {
			return *b, nil
		}
	}
	return content.List{}, fmt.Errorf("%w: block %d", ErrNotList, index)
}

type setResult struct {
	block content.Block
	err   error
}

// fieldSetter writes value into the named field of a block.
type fieldSetter struct {
	field string
	value any
}

func (f fieldSetter) unknown(t content.BlockType) setResult {
	return setResult{err: fmt.Errorf("%w: %s has no field %q", ErrUnknownField, t, f.field)}
}

func (f fieldSetter) str() (string, error) {
	s, ok := f.value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidValue, f.field, f.value)
	}
	return s, nil
}

func (f fieldSetter) integer() (int, error) {
	switch v := f.value.(type) {
	case int:
		return v, nil
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			return int(v), nil
		}
	case json.Number:
		if i, err := v.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return int(i), nil
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidValue, f.field, f.value)
}

func (f fieldSetter) Heading(h content.Heading) setResult {
	switch f.field {
	case "text":
		s, err := f.str()
		h.Text = s
		return setResult{block: h, err: err}
	case "level":
		n, err := f.integer()
		h.Level = n
		return setResult{block: h, err: err}
	}
	return f.unknown(content.TypeHeading)
}

func (f fieldSetter) Paragraph(p content.Paragraph) setResult {
	if f.field != "text" {
		return f.unknown(content.TypeParagraph)
	}
	s, err := f.str()
	p.Text = s
	return setResult{block: p, err: err}
}

func (f fieldSetter) List(l content.List) setResult {
	if f.field == "style" {
		s, err := f.str()
		l.Style = content.ListStyle(s)
		return setResult{block: l, err: err}
	}
	m := itemField.FindStringSubmatch(f.field)
	if m == nil {
		return f.unknown(content.TypeList)
	}
	j, err := strconv.Atoi(m[1])
	if err != nil || j >= len(l.Items) {
		return setResult{err: fmt.Errorf("%w: %s, have %d items", ErrOutOfRange, f.field, len(l.Items))}
	}
	s, err := f.str()
	if err != nil {
		return setResult{err: err}
	}
	items := append([]string(nil), l.Items...)
	items[j] = s
	l.Items = items
	return setResult{block: l}
}

func (f fieldSetter) Code(c content.Code) setResult {
	var target *string
	switch f.field {
	case "language":
		target = &c.Language
	case "filename":
		target = &c.Filename
	case "code":
		target = &c.Code
	case "explanation":
		target = &c.Explanation
	default:
		return f.unknown(content.TypeCode)
	}
	s, err := f.str()
	*target = s
	return setResult{block: c, err: err}
}

func (f fieldSetter) Summary(s content.Summary) setResult {
	if f.field != "text" {
		return f.unknown(content.TypeSummary)
	}
	text, err := f.str()
	s.Text = text
	return setResult{block: s, err: err}
}
