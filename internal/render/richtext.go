package render

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// richText turns author-supplied text into safe markup.
type richText struct {
	markdown goldmark.Markdown
	enabled  bool
	ugc      *bluemonday.Policy
	embeds   *bluemonday.Policy
}

var embedSrcPattern = regexp.MustCompile(`^https://`)

func newRichText(enabled bool) *richText {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	embeds := bluemonday.NewPolicy()
	embeds.AllowElements("iframe")
	embeds.AllowAttrs("src").Matching(embedSrcPattern).OnElements("iframe")
	embeds.AllowAttrs("width", "height", "loading", "title", "referrerpolicy", "allowfullscreen").OnElements("iframe")
	embeds.AllowURLSchemes("https")
	embeds.RequireParseableURLs(true)

	return &richText{
		markdown: md,
		enabled:  enabled,
		ugc:      bluemonday.UGCPolicy(),
		embeds:   embeds,
	}
}

// Markdown renders text as sanitised HTML. With Markdown disabled the text is
// escaped and split into paragraphs on blank lines.
func (r *richText) Markdown(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if !r.enabled {
		return plainParagraphs(text)
	}

	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(text), &buf); err != nil {
		return plainParagraphs(text)
	}
	return template.HTML(r.ugc.SanitizeBytes(buf.Bytes()))
}

// Embed keeps only https iframes from a third-party embed snippet.
func (r *richText) Embed(snippet string) template.HTML {
	if strings.TrimSpace(snippet) == "" {
		return ""
	}
	return template.HTML(r.embeds.Sanitize(snippet))
}

func plainParagraphs(text string) template.HTML {
	var b strings.Builder
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(template.HTMLEscapeString(para))
		b.WriteString("</p>")
	}
	return template.HTML(b.String())
}
