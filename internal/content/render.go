package content

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/devbook/internal/content"

// RenderOption configures an HTMLRenderer.
type RenderOption func(*HTMLRenderer)

// WithAnomalyHook registers fn to be called for every block the renderer
// cannot dispatch. index is the block position in the content.
func WithAnomalyHook(fn func(ctx context.Context, index int)) RenderOption {
	return func(r *HTMLRenderer) {
		r.onAnomaly = fn
	}
}

// WithMeter records anomalies on the devbook.content.render_anomalies counter.
func WithMeter(meter metric.Meter) RenderOption {
	return func(r *HTMLRenderer) {
		counter, err := meter.Int64Counter("devbook.content.render_anomalies",
			metric.WithDescription("Blocks skipped by the public renderer"),
			metric.WithUnit("{block}"),
		)
		if err == nil {
			r.anomalies = counter
		}
	}
}

// WithDefaultMeter uses the global OpenTelemetry meter provider.
func WithDefaultMeter() RenderOption {
	return WithMeter(otel.Meter(meterName))
}

// HTMLRenderer turns post content into the public article markup.
type HTMLRenderer struct {
	onAnomaly func(ctx context.Context, index int)
	anomalies metric.Int64Counter
}

func NewHTMLRenderer(opts ...RenderOption) *HTMLRenderer {
	r := &HTMLRenderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render emits every block in order. Blocks that hold no known variant are
// skipped and reported through the anomaly hook and counter.
func (r *HTMLRenderer) Render(ctx context.Context, c PostContent) template.HTML {
	var b strings.Builder
	for i, block := range c.Blocks {
		if !Known(block) {
			r.anomaly(ctx, i)
			continue
		}
		b.WriteString(Visit[string](block, htmlVisitor{}))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}

// RenderBlock renders a single block; an unknown block renders as empty and
// is reported with index -1.
func (r *HTMLRenderer) RenderBlock(ctx context.Context, block Block) template.HTML {
	if !Known(block) {
		r.anomaly(ctx, -1)
		return ""
	}
	return template.HTML(Visit[string](block, htmlVisitor{}))
}

func (r *HTMLRenderer) anomaly(ctx context.Context, index int) {
	if r.onAnomaly != nil {
		r.onAnomaly(ctx, index)
	}
	if r.anomalies != nil {
		r.anomalies.Add(ctx, 1, metric.WithAttributes(attribute.Int("block.index", index)))
	}
}

type htmlVisitor struct{}

func (htmlVisitor) Heading(h Heading) string {
	tag := "h2"
	if h.Level == 3 {
		tag = "h3"
	}
	return fmt.Sprintf("<%s>%s</%s>", tag, template.HTMLEscapeString(h.Text), tag)
}

func (htmlVisitor) Paragraph(p Paragraph) string {
	return "<p>" + RenderInline(ParseInline(p.Text)) + "</p>"
}

func (htmlVisitor) List(l List) string {
	tag := "ul"
	if l.Style == ListNumbered {
		tag = "ol"
	}
	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, item := range l.Items {
		b.WriteString("<li>")
		b.WriteString(template.HTMLEscapeString(item))
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}

func (htmlVisitor) Code(c Code) string {
	language := strings.TrimSpace(c.Language)
	var b strings.Builder
	fmt.Fprintf(&b, `<figure class="code-block" data-language="%s">`, template.HTMLEscapeString(strings.ToLower(language)))
	b.WriteString(`<figcaption class="code-header">`)
	fmt.Fprintf(&b, `<span class="code-filename">%s</span>`, template.HTMLEscapeString(c.DisplayFilename()))
	fmt.Fprintf(&b, `<span class="code-language">%s</span>`, template.HTMLEscapeString(strings.ToUpper(language)))
	b.WriteString(`</figcaption>`)
	fmt.Fprintf(&b, `<pre><code class="language-%s">`, template.HTMLEscapeString(strings.ToLower(language)))
	for i, line := range CodeLines(c.Code) {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, `<span class="code-line"><span class="line-number">%d</span><span class="line-text">%s</span></span>`,
			i+1, template.HTMLEscapeString(line))
	}
	b.WriteString(`</code></pre>`)
	if !blank(c.Explanation) {
		fmt.Fprintf(&b, `<p class="code-explanation">%s</p>`, template.HTMLEscapeString(c.Explanation))
	}
	b.WriteString(`</figure>`)
	return b.String()
}

func (htmlVisitor) Summary(s Summary) string {
	return `<p class="summary"><strong>` + template.HTMLEscapeString(s.Text) + `</strong></p>`
}

// CodeLines splits code into display lines. Trailing whitespace of the whole
// listing is dropped and empty lines become a single space so they keep height.
func CodeLines(code string) []string {
	trimmed := strings.TrimRight(code, " \t\r\n")
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			line = " "
		}
		lines[i] = line
	}
	return lines
}
