package content

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/devbook/internal/locale"
)

// FormRenderer emits the admin edit controls for a block sequence. Input
// names are the validator field paths, so a ValidationError marks the
// exact control that failed.
type FormRenderer struct {
	Language string
}

// Render writes one fieldset per block. ids holds the editor's stable block
// ids by position and may be shorter than blocks.
func (r FormRenderer) Render(blocks []Block, ids []string, errs *ValidationError) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="block-editor">`)
	b.WriteString(r.errorList("blocks", errs))
	for i, block := range blocks {
		id := ""
		if i < len(ids) {
			id = ids[i]
		}
		path := fmt.Sprintf("blocks[%d]", i)
		if !Known(block) {
			b.WriteString(r.errorList(path+".type", errs))
			continue
		}
		fmt.Fprintf(&b, `<fieldset class="block-form block-%s" data-block-index="%d" data-block-type="%s"`,
			block.Type(), i, block.Type())
		if id != "" {
			fmt.Fprintf(&b, ` data-block-id="%s"`, template.HTMLEscapeString(id))
		}
		b.WriteString(">")
		fmt.Fprintf(&b, `<legend>%s</legend>`, template.HTMLEscapeString(r.typeLabel(block.Type())))
		fmt.Fprintf(&b, `<input type="hidden" name="%s.type" value="%s">`, path, block.Type())
		b.WriteString(r.errorList(path, errs))
		b.WriteString(Visit[string](block, formVisitor{r: r, path: path, errs: errs}))
		b.WriteString(r.blockControls(i, len(blocks)))
		b.WriteString(`</fieldset>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// blockControls renders the move and remove buttons of block i.
func (r FormRenderer) blockControls(i, n int) string {
	var b strings.Builder
	b.WriteString(`<div class="block-controls">`)
	if i > 0 {
		fmt.Fprintf(&b, `<button type="button" data-op="move" data-to="%d">%s</button>`,
			i-1, template.HTMLEscapeString(r.text("Move up", "Subir")))
	}
	if i < n-1 {
		fmt.Fprintf(&b, `<button type="button" data-op="move" data-to="%d">%s</button>`,
			i+1, template.HTMLEscapeString(r.text("Move down", "Descer")))
	}
	fmt.Fprintf(&b, `<button type="button" data-op="remove">%s</button>`,
		template.HTMLEscapeString(r.text("Remove block", "Remover bloco")))
	b.WriteString(`</div>`)
	return b.String()
}

func (r FormRenderer) text(english, portuguese string) string {
	return locale.Pick(r.Language, english, portuguese)
}

func (r FormRenderer) typeLabel(t BlockType) string {
	switch t {
	case TypeHeading:
		return r.text("Heading", "Título")
	case TypeParagraph:
		return r.text("Paragraph", "Parágrafo")
	case TypeList:
		return r.text("List", "Lista")
	case TypeCode:
		return r.text("Code", "Código")
	case TypeSummary:
		return r.text("Summary", "Resumo")
	}
	return string(t)
}

func (r FormRenderer) errorList(path string, errs *ValidationError) string {
	msgs := errs.Messages(path)
	if len(msgs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<ul class="field-errors" data-for="%s">`, template.HTMLEscapeString(path))
	for _, msg := range msgs {
		b.WriteString("<li>" + template.HTMLEscapeString(msg) + "</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

type formVisitor struct {
	r    FormRenderer
	path string
	errs *ValidationError
}

func (f formVisitor) invalid(name string) string {
	if f.errs.Has(name) {
		return ` aria-invalid="true"`
	}
	return ""
}

func (f formVisitor) input(field, label, value, placeholder string) string {
	name := JoinPath(f.path, field)
	var b strings.Builder
	fmt.Fprintf(&b, `<label>%s <input type="text" name="%s" value="%s"`,
		template.HTMLEscapeString(label), name, template.HTMLEscapeString(value))
	if placeholder != "" {
		fmt.Fprintf(&b, ` placeholder="%s"`, template.HTMLEscapeString(placeholder))
	}
	b.WriteString(f.invalid(name) + "></label>")
	b.WriteString(f.r.errorList(name, f.errs))
	return b.String()
}

func (f formVisitor) textarea(field, label, value string, rows int) string {
	name := JoinPath(f.path, field)
	return fmt.Sprintf(`<label>%s <textarea name="%s" rows="%d"%s>%s</textarea></label>`,
		template.HTMLEscapeString(label), name, rows, f.invalid(name), template.HTMLEscapeString(value)) +
		f.r.errorList(name, f.errs)
}

type option struct {
	value string
	label string
}

func (f formVisitor) selectField(field, label, current string, opts []option) string {
	name := JoinPath(f.path, field)
	var b strings.Builder
	fmt.Fprintf(&b, `<label>%s <select name="%s"%s>`, template.HTMLEscapeString(label), name, f.invalid(name))
	for _, o := range opts {
		selected := ""
		if o.value == current {
			selected = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
			template.HTMLEscapeString(o.value), selected, template.HTMLEscapeString(o.label))
	}
	b.WriteString("</select></label>")
	b.WriteString(f.r.errorList(name, f.errs))
	return b.String()
}

func (f formVisitor) Heading(h Heading) string {
	return f.selectField("level", f.r.text("Level", "Nível"), strconv.Itoa(h.Level), []option{
		{value: "2", label: "H2"},
		{value: "3", label: "H3"},
	}) + f.input("text", f.r.text("Text", "Texto"), h.Text, "")
}

func (f formVisitor) Paragraph(p Paragraph) string {
	return `<div class="inline-toolbar" role="toolbar">` +
		`<button type="button" data-mark="bold"><b>B</b></button>` +
		`<button type="button" data-mark="italic"><i>I</i></button>` +
		`<button type="button" data-mark="underline"><u>U</u></button>` +
		`<button type="button" data-mark="link">🔗</button>` +
		`<button type="button" data-mark="code">&lt;/&gt;</button>` +
		`<button type="button" data-mark="quote">❝</button>` +
		`</div>` +
		f.textarea("text", f.r.text("Text", "Texto"), p.Text, 4)
}

func (f formVisitor) List(l List) string {
	var b strings.Builder
	b.WriteString(f.selectField("style", f.r.text("Style", "Estilo"), string(l.Style), []option{
		{value: string(ListBullet), label: f.r.text("Bullets", "Marcadores")},
		{value: string(ListNumbered), label: f.r.text("Numbered", "Numerada")},
	}))
	b.WriteString(f.r.errorList(JoinPath(f.path, "items"), f.errs))
	b.WriteString(`<ol class="list-items">`)
	for j, item := range l.Items {
		b.WriteString("<li>")
		b.WriteString(f.input(fmt.Sprintf("items[%d]", j), f.r.text("Item", "Item"), item, ""))
		fmt.Fprintf(&b, `<button type="button" data-op="removeItem" data-item="%d">%s</button>`,
			j, template.HTMLEscapeString(f.r.text("Remove", "Remover")))
		b.WriteString("</li>")
	}
	b.WriteString("</ol>")
	fmt.Fprintf(&b, `<button type="button" data-op="appendItem">%s</button>`,
		template.HTMLEscapeString(f.r.text("Add item", "Adicionar item")))
	return b.String()
}

func (f formVisitor) Code(c Code) string {
	return f.input("language", f.r.text("Language", "Linguagem"), c.Language, "") +
		f.input("filename", f.r.text("File name", "Nome do arquivo"), c.Filename, DefaultCodeFilename) +
		f.textarea("code", f.r.text("Code", "Código"), c.Code, 10) +
		f.textarea("explanation", f.r.text("Explanation", "Explicação"), c.Explanation, 3)
}

func (f formVisitor) Summary(s Summary) string {
	return f.textarea("text", f.r.text("Summary", "Resumo"), s.Text, 3)
}
