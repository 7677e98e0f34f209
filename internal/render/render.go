// Package render writes a tag cloud as a static HTML document.
package render

import (
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/valyala/fasttemplate"

	"tagcloud/internal/sizing"
)

// Defaults for the presentation options of a Page.
const (
	DefaultStylesheet  = "tagcloud.css"
	DefaultClassPrefix = "f"
)

const pageTemplate = `<html>
<head>
<title>{{title}}</title>
<link href="{{stylesheet}}" rel="stylesheet" type="text/css">
</head>
<body>
<h2>{{title}}</h2>
<hr>
<div class="cdiv">
<p class="cbox">
{{tags}}</p>
</div>
</body>
</html>
`

const tagTemplate = `<span style="cursor:default" class="{{class}}" title="count: {{count}}">{{word}}</span>
`

var (
	page = fasttemplate.New(pageTemplate, "{{", "}}")
	tag  = fasttemplate.New(tagTemplate, "{{", "}}")
)

// Page is everything needed to render one tag cloud.
type Page struct {
	// Source names the document the words came from.
	Source string
	// TopN is the requested number of words.
	TopN int
	// Stylesheet is the href of the external stylesheet defining the
	// font-size classes.
	Stylesheet string
	// ClassPrefix is prepended to each font-size class number.
	ClassPrefix string
	// Tags are rendered in order.
	Tags []sizing.Tag
}

// Title returns the heading shown on the page.
func (p Page) Title() string {
	return fmt.Sprintf("Top %d words in %s", p.TopN, p.Source)
}

func (p Page) stylesheet() string {
	if p.Stylesheet == "" {
		return DefaultStylesheet
	}
	return p.Stylesheet
}

func (p Page) classPrefix() string {
	if p.ClassPrefix == "" {
		return DefaultClassPrefix
	}
	return p.ClassPrefix
}

// Render writes p to w and returns the number of bytes written. Any write
// error is returned unchanged apart from wrapping.
func Render(w io.Writer, p Page) (int64, error) {
	title := html.EscapeString(p.Title())
	n, err := page.ExecuteFunc(w, func(w io.Writer, name string) (int, error) {
		switch name {
		case "title":
			return io.WriteString(w, title)
		case "stylesheet":
			return io.WriteString(w, html.EscapeString(p.stylesheet()))
		case "tags":
			written, err := renderTags(w, p.classPrefix(), p.Tags)
			return int(written), err
		default:
			return 0, fmt.Errorf("unknown placeholder %q", name)
		}
	})
	if err != nil {
		return n, fmt.Errorf("render page: %w", err)
	}
	return n, nil
}

func renderTags(w io.Writer, prefix string, tags []sizing.Tag) (int64, error) {
	prefix = html.EscapeString(prefix)
	var total int64
	for _, t := range tags {
		n, err := tag.ExecuteFunc(w, func(w io.Writer, name string) (int, error) {
			switch name {
			case "class":
				return io.WriteString(w, prefix+strconv.Itoa(t.Size))
			case "count":
				return io.WriteString(w, strconv.Itoa(t.Count))
			case "word":
				return io.WriteString(w, html.EscapeString(t.Word))
			default:
				return 0, fmt.Errorf("unknown placeholder %q", name)
			}
		})
		total += n
		if err != nil {
			return total, fmt.Errorf("render tag %q: %w", t.Word, err)
		}
	}
	return total, nil
}
