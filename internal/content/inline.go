package content

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Mark is a text decoration applied by the formatting toolbar.
type Mark string

const (
	MarkBold      Mark = "bold"
	MarkItalic    Mark = "italic"
	MarkUnderline Mark = "underline"
)

var markOrder = []Mark{MarkBold, MarkItalic, MarkUnderline}

// InlineNode is a node of the paragraph inline tree: InlineText, InlineLink,
// InlineCode or InlineQuote.
type InlineNode interface {
	isInline()
}

type InlineText struct {
	Text  string
	Marks []Mark
}

type InlineLink struct {
	Href     string
	Children []InlineNode
}

type InlineCode struct {
	Text string
}

type InlineQuote struct {
	Children []InlineNode
}

func (InlineText) isInline()  {}
func (InlineLink) isInline()  {}
func (InlineCode) isInline()  {}
func (InlineQuote) isInline() {}

// HasMark reports whether t carries m.
func (t InlineText) HasMark(m Mark) bool {
	for _, have := range t.Marks {
		if have == m {
			return true
		}
	}
	return false
}

var paragraphPolicy = newParagraphPolicy()

func newParagraphPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "code", "blockquote")
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	return p
}

// SanitizeParagraph strips every tag and attribute the toolbar cannot produce.
func SanitizeParagraph(text string) string {
	return paragraphPolicy.Sanitize(text)
}

// toolbarTag matches the tags the formatting toolbar inserts. Any other angle
// bracket in paragraph text is literal prose such as "a<b" or "List<String>".
var toolbarTag = regexp.MustCompile(`(?i)</?(?:b|strong|i|em|u|code|blockquote)\s*>|<a\s[^<>]*>|</a\s*>`)

// EscapeProse escapes every angle bracket that does not belong to a toolbar tag.
func EscapeProse(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range toolbarTag.FindAllStringIndex(text, -1) {
		b.WriteString(escapeBrackets(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(escapeBrackets(text[last:]))
	return b.String()
}

var bracketEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

func escapeBrackets(s string) string {
	return bracketEscaper.Replace(s)
}

// ParseInline sanitizes paragraph text and converts it into an inline tree.
// Plain text without markup yields a single InlineText.
func ParseInline(text string) []InlineNode {
	sanitized := SanitizeParagraph(EscapeProse(text))
	if sanitized == "" {
		return nil
	}
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(sanitized), context)
	if err != nil {
		return []InlineNode{InlineText{Text: html.UnescapeString(sanitized)}}
	}
	var out []InlineNode
	for _, n := range nodes {
		out = append(out, inlineFromNode(n, nil)...)
	}
	return out
}

func inlineFromNode(n *html.Node, marks []Mark) []InlineNode {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		return []InlineNode{InlineText{Text: n.Data, Marks: marks}}
	case html.ElementNode:
	default:
		return nil
	}

	switch n.Data {
	case "b", "strong":
		return inlineChildren(n, withMark(marks, MarkBold))
	case "i", "em":
		return inlineChildren(n, withMark(marks, MarkItalic))
	case "u":
		return inlineChildren(n, withMark(marks, MarkUnderline))
	case "code":
		return []InlineNode{InlineCode{Text: textContent(n)}}
	case "blockquote":
		return []InlineNode{InlineQuote{Children: inlineChildren(n, marks)}}
	case "a":
		href := attr(n, "href")
		if href == "" {
			return inlineChildren(n, marks)
		}
		return []InlineNode{InlineLink{Href: href, Children: inlineChildren(n, marks)}}
	}
	return inlineChildren(n, marks)
}

func inlineChildren(n *html.Node, marks []Mark) []InlineNode {
	var out []InlineNode
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, inlineFromNode(c, marks)...)
	}
	return out
}

func withMark(marks []Mark, m Mark) []Mark {
	for _, have := range marks {
		if have == m {
			return marks
		}
	}
	out := make([]Mark, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, m)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// PlainText returns the visible text of an inline tree.
func PlainText(nodes []InlineNode) string {
	var b strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case InlineText:
			b.WriteString(n.Text)
		case InlineCode:
			b.WriteString(n.Text)
		case InlineLink:
			b.WriteString(PlainText(n.Children))
		case InlineQuote:
			b.WriteString(PlainText(n.Children))
		}
	}
	return b.String()
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// RenderInline writes the inline tree as HTML. Links always open in a new tab.
func RenderInline(nodes []InlineNode) string {
	var b strings.Builder
	writeInline(&b, nodes)
	return b.String()
}

func writeInline(b *strings.Builder, nodes []InlineNode) {
	for _, node := range nodes {
		switch n := node.(type) {
		case InlineText:
			var open, closing []string
			for _, m := range markOrder {
				if !n.HasMark(m) {
					continue
				}
				tag := markTag(m)
				open = append(open, "<"+tag+">")
				closing = append([]string{"</" + tag + ">"}, closing...)
			}
			b.WriteString(strings.Join(open, ""))
			b.WriteString(template.HTMLEscapeString(n.Text))
			b.WriteString(strings.Join(closing, ""))
		case InlineLink:
			b.WriteString(`<a href="`)
			b.WriteString(template.HTMLEscapeString(n.Href))
			b.WriteString(`" target="_blank" rel="noopener noreferrer">`)
			writeInline(b, n.Children)
			b.WriteString("</a>")
		case InlineCode:
			b.WriteString("<code>")
			b.WriteString(template.HTMLEscapeString(n.Text))
			b.WriteString("</code>")
		case InlineQuote:
			b.WriteString(`<q class="inline-quote">`)
			writeInline(b, n.Children)
			b.WriteString("</q>")
		}
	}
}

func markTag(m Mark) string {
	switch m {
	case MarkBold:
		return "strong"
	case MarkItalic:
		return "em"
	case MarkUnderline:
		return "u"
	}
	return "span"
}
