// Package export writes a rendered chart as a standalone HTML page, an SVG
// document or a PNG image.
package export

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"strings"

	"golang.org/x/net/html"

	"countytrend/internal/scene"
)

const svgNS = "http://www.w3.org/2000/svg"

// Stylesheet colours the party classes used by the chart markup.
const Stylesheet = `body { font-family: sans-serif; max-width: 760px; margin: 0 auto; }
h3 { margin: 12px 0 0; text-align: center; }
.dem { color: #2a6ebb; }
.rep { color: #c8102e; }
path.line { fill: none; stroke-width: 2.5px; }
path.line.dem { stroke: #2a6ebb; }
path.line.rep { stroke: #c8102e; }
path.stdev.dem { fill: rgba(42,110,187,.2); }
path.stdev.rep { fill: rgba(200,16,46,.2); }
circle.uncontestedD { fill: #2a6ebb; }
circle.uncontestedR { fill: #c8102e; }
.axis .tick line { stroke: #ddd; }
.axis path.domain { stroke: none; }
.axis text { fill: #555; }
.axis text.label { fill: #333; font-size: 11px; }
.footnote { font-size: 12px; color: #666; text-align: center; }
.stdev-key { display: inline-block; width: 10px; height: 10px; }
.stdev-key.dem { background: rgba(42,110,187,.3); }
.stdev-key.rep { background: rgba(200,16,46,.3); }
.trendLab { text-align: center; font-weight: bold; }
`

var ErrNoSVG = errors.New("mount has no svg; render the chart first")

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.CSS}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML writes the mount as the body of a standalone page.
func HTML(w io.Writer, m *scene.Mount, title string) error {
	if scene.Select(m.Node(), "svg") == nil {
		return ErrNoSVG
	}
	var body bytes.Buffer
	if err := m.Render(&body); err != nil {
		return err
	}
	return page.Execute(w, struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{title, template.CSS(Stylesheet), template.HTML(body.String())})
}

// SVG writes the chart's svg element as a standalone document with the
// stylesheet embedded. The heading and trend label sit outside the svg
// element, so they are carried over as the document's title.
func SVG(w io.Writer, m *scene.Mount) error {
	svg := scene.Select(m.Node(), "svg")
	if svg == nil {
		return ErrNoSVG
	}
	var b strings.Builder
	if err := html.Render(&b, svg); err != nil {
		return err
	}
	markup := b.String()
	open := strings.IndexByte(markup, '>')
	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	out.WriteString(markup[:4])
	if scene.Attr(svg, "xmlns") == "" {
		out.WriteString(` xmlns="` + svgNS + `"`)
	}
	out.WriteString(markup[4 : open+1])
	if t := svgTitle(m); t != "" {
		out.WriteString("<title>" + html.EscapeString(t) + "</title>")
	}
	out.WriteString("<style>" + Stylesheet + "</style>")
	out.WriteString(markup[open+1:])
	out.WriteString("\n")
	_, err := io.WriteString(w, out.String())
	return err
}

func svgTitle(m *scene.Mount) string {
	var parts []string
	for _, sel := range []string{"h3", ".trendLab span"} {
		if n := scene.Select(m.Node(), sel); n != nil {
			if t := strings.TrimSpace(scene.Text(n)); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}
