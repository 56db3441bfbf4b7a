package content

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilBlock is returned when encoding content that holds a nil block.
var ErrNilBlock = errors.New("content: nil block")

type headingJSON struct {
	Type  BlockType `json:"type"`
	Level int       `json:"level"`
	Text  string    `json:"text"`
}

type paragraphJSON struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
}

type listJSON struct {
	Type  BlockType `json:"type"`
	Style ListStyle `json:"style"`
	Items []string  `json:"items"`
}

type codeJSON struct {
	Type        BlockType `json:"type"`
	Language    string    `json:"language"`
	Filename    string    `json:"filename,omitempty"`
	Code        string    `json:"code"`
	Explanation string    `json:"explanation,omitempty"`
}

type summaryJSON struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
}

type wireVisitor struct{}

func (wireVisitor) Heading(h Heading) any {
	return headingJSON{Type: TypeHeading, Level: h.Level, Text: h.Text}
}

func (wireVisitor) Paragraph(p Paragraph) any {
	return paragraphJSON{Type: TypeParagraph, Text: p.Text}
}

func (wireVisitor) List(l List) any {
	items := l.Items
	if items == nil {
		items = []string{}
	}
	return listJSON{Type: TypeList, Style: l.Style, Items: items}
}

func (wireVisitor) Code(c Code) any {
	return codeJSON{Type: TypeCode, Language: c.Language, Filename: c.Filename, Code: c.Code, Explanation: c.Explanation}
}

func (wireVisitor) Summary(s Summary) any {
	return summaryJSON{Type: TypeSummary, Text: s.Text}
}

// MarshalBlock encodes one block with its "type" tag.
func MarshalBlock(b Block) ([]byte, error) {
	if !Known(b) {
		return nil, ErrNilBlock
	}
	return json.Marshal(Visit[any](b, wireVisitor{}))
}

func (h Heading) MarshalJSON() ([]byte, error)   { return MarshalBlock(h) }
func (p Paragraph) MarshalJSON() ([]byte, error) { return MarshalBlock(p) }
func (l List) MarshalJSON() ([]byte, error)      { return MarshalBlock(l) }
func (c Code) MarshalJSON() ([]byte, error)      { return MarshalBlock(c) }
func (s Summary) MarshalJSON() ([]byte, error)   { return MarshalBlock(s) }

// UnmarshalBlock decodes and validates a single block.
func UnmarshalBlock(raw []byte, opts ...Option) (Block, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	b, errs := decodeBlock(v, newOptions(opts), true)
	if errs != nil {
		return nil, errs
	}
	return b, nil
}

// UnmarshalDraftBlock decodes a block that is still being edited. Field
// types are checked but empty values are accepted.
func UnmarshalDraftBlock(raw []byte, opts ...Option) (Block, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	b, errs := decodeBlock(v, newOptions(opts), false)
	if errs != nil {
		return nil, errs
	}
	return b, nil
}

func (c PostContent) MarshalJSON() ([]byte, error) {
	blocks := make([]json.RawMessage, 0, len(c.Blocks))
	for i, b := range c.Blocks {
		encoded, err := MarshalBlock(b)
		if err != nil {
			return nil, fmt.Errorf("encode blocks[%d]: %w", i, err)
		}
		blocks = append(blocks, encoded)
	}
	return json.Marshal(struct {
		Blocks []json.RawMessage `json:"blocks"`
	}{Blocks: blocks})
}

// UnmarshalJSON validates while decoding; invalid input leaves c untouched
// and returns a *ValidationError.
func (c *PostContent) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value stores the content as a JSON text column.
func (c PostContent) Value() (driver.Value, error) {
	encoded, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

func (c *PostContent) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = PostContent{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("content: cannot scan %T", src)
	}
	return c.UnmarshalJSON(raw)
}
