// Package render turns normalized posts into one of five Markdown/HTML
// layouts and splices the result into delimited document sections.
package render

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/hashnode-blog/readme-action/internal/models"
)

// The five supported display formats.
const (
	FormatCard         = "card"
	FormatStackedLeft  = "stacked-left"
	FormatStackedRight = "stacked-right"
	FormatList         = "list"
	FormatTable        = "table"
)

// Ellipsis is appended to descriptions cut at the configured length.
const Ellipsis = "..."

// Options carries the rendering knobs from the validated configuration.
type Options struct {
	Format            string
	CardWidth         int
	ImageWidth        int
	ImageHeight       int
	DescriptionLength int
	CustomCSS         string
	NoPostsMessage    string
}

// Renderer is a pure string producer: same posts and options, same output.
type Renderer struct {
	opts Options
	log  zerolog.Logger
}

func NewRenderer(opts Options, log zerolog.Logger) *Renderer {
	return &Renderer{opts: opts, log: log}
}

// Render produces the display block for the given posts. An empty post
// list yields the configured no-posts message verbatim.
func (r *Renderer) Render(posts []models.PostRecord) string {
	if len(posts) == 0 {
		return r.opts.NoPostsMessage
	}

	prepared := make([]models.PostRecord, len(posts))
	for i, p := range posts {
		prepared[i] = r.prepare(p)
	}

	switch r.opts.Format {
	case FormatCard:
		return r.renderCards(prepared)
	case FormatStackedLeft:
		return r.renderStacked(prepared, false)
	case FormatStackedRight:
		return r.renderStacked(prepared, true)
	case FormatList:
		return r.renderList(prepared)
	case FormatTable:
		return r.renderTable(prepared)
	default:
		// Validation gates the enum, so this only fires when the
		// renderer is driven outside the usual pipeline.
		r.log.Warn().
			Str("display_format", r.opts.Format).
			Msg("Unknown display format, falling back to stacked-left")
		return r.renderStacked(prepared, false)
	}
}

// prepare truncates the description and guards the cover image before a
// post reaches any layout.
func (r *Renderer) prepare(p models.PostRecord) models.PostRecord {
	if utf8.RuneCountInString(p.Description) > r.opts.DescriptionLength {
		runes := []rune(p.Description)
		p.Description = string(runes[:r.opts.DescriptionLength]) + Ellipsis
	}
	if p.CoverImage == "" {
		p.CoverImage = models.PlaceholderCover
	}
	return p
}

// escape rewrites the five HTML special characters as entities so post
// content can never inject markup.
func escape(s string) string {
	return html.EscapeString(s)
}

func (r *Renderer) renderCards(posts []models.PostRecord) string {
	var b strings.Builder
	for _, p := range posts {
		style := fmt.Sprintf("max-width: %dpx; border: 1px solid #e1e4e8; border-radius: 8px; overflow: hidden; margin-bottom: 16px;", r.opts.CardWidth)
		if r.opts.CustomCSS != "" {
			style += " " + r.opts.CustomCSS
		}
		fmt.Fprintf(&b, "<div style=\"%s\">\n", escape(style))
		fmt.Fprintf(&b, "  <a href=\"%s\"><img src=\"%s\" alt=\"%s\" width=\"100%%\"></a>\n",
			escape(p.URL), escape(p.CoverImage), escape(p.Title))
		b.WriteString("  <div style=\"padding: 12px;\">\n")
		fmt.Fprintf(&b, "    <a href=\"%s\"><strong>%s</strong></a><br>\n", escape(p.URL), escape(p.Title))
		fmt.Fprintf(&b, "    <em>%s</em>%s<br>\n", escape(p.FormattedDate), readTimeSuffix(p))
		fmt.Fprintf(&b, "    %s\n", escape(p.Description))
		b.WriteString("  </div>\n")
		b.WriteString("</div>\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderStacked(posts []models.PostRecord, imageRight bool) string {
	var b strings.Builder
	for _, p := range posts {
		style := "display: flex; align-items: center; margin-bottom: 16px;"
		if r.opts.CustomCSS != "" {
			style += " " + r.opts.CustomCSS
		}
		img := fmt.Sprintf("  <a href=\"%s\"><img src=\"%s\" alt=\"%s\" width=\"%d\" height=\"%d\" style=\"object-fit: cover; border-radius: 8px;\"></a>\n",
			escape(p.URL), escape(p.CoverImage), escape(p.Title), r.opts.ImageWidth, r.opts.ImageHeight)
		text := fmt.Sprintf("  <div style=\"padding: 0 12px;\">\n    <a href=\"%s\"><strong>%s</strong></a><br>\n    <em>%s</em>%s<br>\n    %s\n  </div>\n",
			escape(p.URL), escape(p.Title), escape(p.FormattedDate), readTimeSuffix(p), escape(p.Description))

		fmt.Fprintf(&b, "<div style=\"%s\">\n", escape(style))
		if imageRight {
			b.WriteString(text)
			b.WriteString(img)
		} else {
			b.WriteString(img)
			b.WriteString(text)
		}
		b.WriteString("</div>\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderList(posts []models.PostRecord) string {
	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, fmt.Sprintf("- **%s**: [%s](%s)", p.FormattedDate, p.Title, p.URL))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderTable(posts []models.PostRecord) string {
	var b strings.Builder
	b.WriteString("<table>\n")
	b.WriteString("  <tr><th>Date</th><th>Image</th><th>Title</th></tr>\n")
	for _, p := range posts {
		fmt.Fprintf(&b, "  <tr><td>%s</td><td><a href=\"%s\"><img src=\"%s\" alt=\"%s\" width=\"%d\" height=\"%d\"></a></td><td><a href=\"%s\"><strong>%s</strong></a><br>%s</td></tr>\n",
			escape(p.FormattedDate),
			escape(p.URL), escape(p.CoverImage), escape(p.Title), r.opts.ImageWidth, r.opts.ImageHeight,
			escape(p.URL), escape(p.Title), escape(p.Description))
	}
	b.WriteString("</table>")
	return b.String()
}

func readTimeSuffix(p models.PostRecord) string {
	if p.ReadTime <= 0 {
		return ""
	}
	return fmt.Sprintf(" &middot; %d min read", p.ReadTime)
}
