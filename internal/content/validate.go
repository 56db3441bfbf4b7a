package content

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Parse decodes raw JSON and validates it as post content.
func Parse(raw []byte, opts ...Option) (PostContent, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		o := newOptions(opts)
		errs := &ValidationError{}
		errs.Add("", o.msg(msgInvalidJSON))
		return PostContent{}, errs
	}
	return Validate(v, opts...)
}

// Validate checks an untyped value, as produced by encoding/json, against
// the block schema. Every failing path is reported, not just the first.
func Validate(v any, opts ...Option) (PostContent, error) {
	o := newOptions(opts)
	errs := &ValidationError{}

	root, ok := v.(map[string]any)
	if !ok {
		errs.Add("", o.msg(msgRootObject))
		return PostContent{}, errs
	}
	for key := range root {
		if key != "blocks" {
			errs.Add(key, o.msg(msgFieldUnknown))
		}
	}

	rawBlocks, ok := root["blocks"].([]any)
	if !ok {
		errs.Add("blocks", o.msg(msgBlocksMissing))
		return PostContent{}, errs
	}
	if len(rawBlocks) == 0 {
		errs.Add("blocks", o.msg(msgBlocksEmpty))
	}

	blocks := make([]Block, 0, len(rawBlocks))
	for i, raw := range rawBlocks {
		b, blockErrs := decodeBlock(raw, o, true)
		errs.Merge(fmt.Sprintf("blocks[%d]", i), blockErrs)
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	if err := errs.Err(); err != nil {
		return PostContent{}, err
	}
	return PostContent{Blocks: blocks}, nil
}

// Check applies the per-variant rules to already typed content.
func Check(c PostContent, opts ...Option) error {
	o := newOptions(opts)
	errs := &ValidationError{}
	if len(c.Blocks) == 0 {
		errs.Add("blocks", o.msg(msgBlocksEmpty))
	}
	for i, b := range c.Blocks {
		errs.Merge(fmt.Sprintf("blocks[%d]", i), CheckBlock(b, opts...))
	}
	return errs.Err()
}

// CheckBlock validates one block and returns messages keyed by paths
// relative to the block ("text", "items[1]"). It returns nil when b is valid.
func CheckBlock(b Block, opts ...Option) *ValidationError {
	o := newOptions(opts)
	if !Known(b) {
		errs := &ValidationError{}
		errs.Add("type", o.msg(msgTypeUnknown))
		return errs
	}
	errs := Visit[*ValidationError](b, ruleVisitor{o: o})
	if errs.Empty() {
		return nil
	}
	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type ruleVisitor struct {
	o options
}

func (r ruleVisitor) Heading(h Heading) *ValidationError {
	errs := &ValidationError{}
	if h.Level != 2 && h.Level != 3 {
		errs.Add("level", r.o.msg(msgHeadingLevel))
	}
	if blank(h.Text) {
		errs.Add("text", r.o.msg(msgHeadingText))
	}
	return errs
}

func (r ruleVisitor) Paragraph(p Paragraph) *ValidationError {
	errs := &ValidationError{}
	if blank(PlainText(ParseInline(p.Text))) {
		errs.Add("text", r.o.msg(msgParagraphText))
	}
	return errs
}

func (r ruleVisitor) List(l List) *ValidationError {
	errs := &ValidationError{}
	if !l.Style.Valid() {
		errs.Add("style", r.o.msg(msgListStyle))
	}
	if len(l.Items) == 0 {
		errs.Add("items", r.o.msg(msgListItems))
	}
	for j, item := range l.Items {
		if blank(item) {
			errs.Add(fmt.Sprintf("items[%d]", j), r.o.msg(msgListItem))
		}
	}
	return errs
}

func (r ruleVisitor) Code(c Code) *ValidationError {
	errs := &ValidationError{}
	switch {
	case blank(c.Language):
		errs.Add("language", r.o.msg(msgCodeLanguage))
	case utf8.RuneCountInString(c.Language) > MaxLanguageLength:
		errs.Add("language", r.o.msg(msgCodeLanguageLong))
	}
	if blank(c.Code) {
		errs.Add("code", r.o.msg(msgCodeCode))
	}
	return errs
}

func (r ruleVisitor) Summary(s Summary) *ValidationError {
	errs := &ValidationError{}
	if blank(s.Text) {
		errs.Add("text", r.o.msg(msgSummaryText))
	}
	return errs
}

// decodeBlock turns one untyped element into a Block. Shape errors (missing,
// wrong-typed or extra fields) take precedence over rule errors on the same
// path. With rules off only the shape is checked.
func decodeBlock(raw any, o options, rules bool) (Block, *ValidationError) {
	shape := &ValidationError{}
	obj, ok := raw.(map[string]any)
	if !ok {
		shape.Add("", o.msg(msgBlockObject))
		return nil, shape
	}

	rawType, present := obj["type"]
	if !present {
		shape.Add("type", o.msg(msgTypeMissing))
		return nil, shape
	}
	typeName, ok := rawType.(string)
	if !ok {
		shape.Add("type", o.msg(msgFieldString))
		return nil, shape
	}
	t, ok := ParseBlockType(typeName)
	if !ok {
		shape.Add("type", o.msg(msgTypeUnknown))
		return nil, shape
	}

	f := &fieldReader{obj: obj, o: o, errs: shape, seen: map[string]bool{"type": true}}
	var b Block
	switch t {
	case TypeHeading:
		b = Heading{Level: f.integer("level"), Text: f.str("text", true)}
	case TypeParagraph:
		b = Paragraph{Text: f.str("text", true)}
	case TypeList:
		b = List{Style: ListStyle(f.str("style", true)), Items: f.strings("items")}
	case TypeCode:
		b = Code{
			Language:    f.str("language", true),
			Filename:    f.str("filename", false),
			Code:        f.str("code", true),
			Explanation: f.str("explanation", false),
		}
	case TypeSummary:
		b = Summary{Text: f.str("text", true)}
	}
	f.rejectExtra()
	if !rules {
		if !shape.Empty() {
			return nil, shape
		}
		return b, nil
	}

	if ruleErrs := CheckBlock(b, WithLanguage(o.language)); ruleErrs != nil {
		for path, msgs := range ruleErrs.Fields {
			if shape.Has(path) {
				continue
			}
			for _, msg := range msgs {
				shape.Add(path, msg)
			}
		}
	}
	if !shape.Empty() {
		return nil, shape
	}
	return b, nil
}

type fieldReader struct {
	obj  map[string]any
	o    options
	errs *ValidationError
	seen map[string]bool
}

func (f *fieldReader) str(name string, required bool) string {
	f.seen[name] = true
	raw, ok := f.obj[name]
	if !ok || raw == nil {
		if required {
			f.errs.Add(name, f.o.msg(msgFieldRequired))
		}
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		f.errs.Add(name, f.o.msg(msgFieldString))
		return ""
	}
	return s
}

func (f *fieldReader) integer(name string) int {
	f.seen[name] = true
	raw, ok := f.obj[name]
	if !ok || raw == nil {
		f.errs.Add(name, f.o.msg(msgFieldRequired))
		return 0
	}
	switch n := raw.(type) {
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt32 && n <= math.MaxInt32 {
			return int(n)
		}
	case int:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return int(i)
		}
	}
	f.errs.Add(name, f.o.msg(msgFieldInteger))
	return 0
}

func (f *fieldReader) strings(name string) []string {
	f.seen[name] = true
	raw, ok := f.obj[name]
	if !ok || raw == nil {
		f.errs.Add(name, f.o.msg(msgFieldRequired))
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		f.errs.Add(name, f.o.msg(msgFieldArray))
		return nil
	}
	out := make([]string, len(list))
	for j, item := range list {
		s, ok := item.(string)
		if !ok {
			f.errs.Add(fmt.Sprintf("%s[%d]", name, j), f.o.msg(msgFieldString))
			continue
		}
		out[j] = s
	}
	return out
}

func (f *fieldReader) rejectExtra() {
	for key := range f.obj {
		if !f.seen[key] {
			f.errs.Add(key, f.o.msg(msgFieldUnknown))
		}
	}
}
