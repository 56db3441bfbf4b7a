// Package content holds the block model of a post body: the five block
// variants, their validation rules, JSON and storage encoding, and the public
// and edit-form HTML renderers.
package content

// BlockType is the discriminator stored in the "type" field of a block.
type BlockType string

const (
	TypeHeading   BlockType = "heading"
	TypeParagraph BlockType = "paragraph"
	TypeList      BlockType = "list"
	TypeCode      BlockType = "code"
	TypeSummary   BlockType = "summary"
)

// BlockTypes lists every variant in the order the editor offers them.
var BlockTypes = []BlockType{TypeHeading, TypeParagraph, TypeList, TypeCode, TypeSummary}

// ParseBlockType reports whether raw names a known variant.
func ParseBlockType(raw string) (BlockType, bool) {
	t := BlockType(raw)
	switch t {
	case TypeHeading, TypeParagraph, TypeList, TypeCode, TypeSummary:
		return t, true
	}
	return "", false
}

// ListStyle selects between ordered and unordered lists.
type ListStyle string

const (
	ListBullet   ListStyle = "bullet"
	ListNumbered ListStyle = "numbered"
)

func (s ListStyle) Valid() bool {
	switch s {
	case ListBullet, ListNumbered:
		return true
	}
	return false
}

const (
	// DefaultCodeFilename is shown for code blocks without a filename.
	DefaultCodeFilename = "index.html"
	// MaxLanguageLength bounds the code block language tag, in runes.
	MaxLanguageLength = 20
)

// Block is one element of a post body. The set of implementations is closed:
// Heading, Paragraph, List, Code and Summary.
type Block interface {
	Type() BlockType
	isBlock()
}

type Heading struct {
	Level int
	Text  string
}

type Paragraph struct {
	// Text may carry the inline markup produced by the formatting toolbar.
	Text string
}

type List struct {
	Style ListStyle
	Items []string
}

type Code struct {
	Language    string
	Filename    string
	Code        string
	Explanation string
}

type Summary struct {
	Text string
}

func (Heading) Type() BlockType   { return TypeHeading }
func (Paragraph) Type() BlockType { return TypeParagraph }
func (List) Type() BlockType      { return TypeList }
func (Code) Type() BlockType      { return TypeCode }
func (Summary) Type() BlockType   { return TypeSummary }

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (List) isBlock()      {}
func (Code) isBlock()      {}
func (Summary) isBlock()   {}

// DisplayFilename returns the filename shown above the code listing.
func (c Code) DisplayFilename() string {
	if c.Filename == "" {
		return DefaultCodeFilename
	}
	return c.Filename
}

// Visitor handles every block variant. Adding a variant adds a method here,
// so each consumer stops compiling until it handles the new case.
type Visitor[T any] interface {
	Heading(Heading) T
	Paragraph(Paragraph) T
	List(List) T
	Code(Code) T
	Summary(Summary) T
}

// Visit dispatches b to the matching Visitor method. Pointers to variants are
// dereferenced. A nil block yields the zero value of T.
func Visit[T any](b Block, v Visitor[T]) T {
	switch b := b.(type) {
	case Heading:
		return v.Heading(b)
	case Paragraph:
		return v.Paragraph(b)
	case List:
		return v.List(b)
	case Code:
		return v.Code(b)
	case Summary:
		return v.Summary(b)
	case *Heading:
		if b != nil {
			return v.Heading(*b)
		}
	case *Paragraph:
		if b != nil {
			return v.Paragraph(*b)
		}
	case *List:
		if b != nil {
			return v.List(*b)
		}
	case *Code:
		if b != nil {
			return v.Code(*b)
		}
	case *Summary:
		if b != nil {
			return v.Summary(*b)
		}
	}
	var zero T
	return zero
}

type knownVisitor struct{}

func (knownVisitor) Heading(Heading) bool     { return true }
func (knownVisitor) Paragraph(Paragraph) bool { return true }
func (knownVisitor) List(List) bool           { return true }
func (knownVisitor) Code(Code) bool           { return true }
func (knownVisitor) Summary(Summary) bool     { return true }

// Known reports whether b holds one of the block variants.
func Known(b Block) bool {
	return Visit[bool](b, knownVisitor{})
}

type cloneVisitor struct{}

func (cloneVisitor) Heading(h Heading) Block     { return h }
func (cloneVisitor) Paragraph(p Paragraph) Block { return p }
func (cloneVisitor) List(l List) Block {
	l.Items = append([]string(nil), l.Items...)
	return l
}
func (cloneVisitor) Code(c Code) Block       { return c }
func (cloneVisitor) Summary(s Summary) Block { return s }

// Clone returns a value copy of b that shares no memory with it.
func Clone(b Block) Block {
	return Visit[Block](b, cloneVisitor{})
}

// NewDraft returns the empty block the editor appends for t.
func NewDraft(t BlockType) (Block, bool) {
	switch t {
	case TypeHeading:
		return Heading{Level: 2}, true
	case TypeParagraph:
		return Paragraph{}, true
	case TypeList:
		return List{Style: ListBullet, Items: []string{""}}, true
	case TypeCode:
		return Code{Language: "php"}, true
	case TypeSummary:
		return Summary{}, true
	}
	return nil, false
}

// PostContent is the ordered body of a post.
type PostContent struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (c PostContent) Len() int {
	return len(c.Blocks)
}
