// Package scene is a small retained scene graph over an HTML/SVG node tree.
// Elements are selected with CSS selectors, updated in place, and reconciled
// against data with keyed or positional joins, so repeated renders patch the
// existing tree instead of rebuilding it.
package scene

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const svgNamespace = "svg"

// Box is the rendered size of a mount.
type Box struct {
	Width  float64
	Height float64
}

// Mount is the element a chart renders into, plus its current layout box.
type Mount struct {
	root *html.Node
	box  Box
}

func NewMount(id string, width, height float64) *Mount {
	root := newElement("div", "")
	if id != "" {
		SetAttr(root, "id", id)
	}
	return &Mount{root: root, box: Box{Width: width, Height: height}}
}

func (m *Mount) Node() *html.Node { return m.root }

func (m *Mount) Bounds() Box { return m.box }

// Resize changes the layout box; the tree is untouched until the next render.
func (m *Mount) Resize(width, height float64) {
	m.box = Box{Width: width, Height: height}
}

// Render writes the mount element and its subtree as markup.
func (m *Mount) Render(w io.Writer) error {
	return html.Render(w, m.root)
}

func (m *Mount) String() string {
	var b strings.Builder
	_ = m.Render(&b)
	return b.String()
}

func newElement(tag, namespace string) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: namespace,
	}
}

// Append creates a child element. Elements inside an svg element inherit the svg
// namespace.
func Append(parent *html.Node, tag string) *html.Node {
	ns := parent.Namespace
	if tag == "svg" {
		ns = svgNamespace
	}
	n := newElement(tag, ns)
	parent.AppendChild(n)
	return n
}

func sel(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// Select returns the first descendant of root matching selector, or nil.
func Select(root *html.Node, selector string) *html.Node {
	s := sel(root).Find(selector)
	if s.Length() == 0 {
		return nil
	}
	return s.Nodes[0]
}

// SelectAll returns every descendant of root matching selector in document order.
func SelectAll(root *html.Node, selector string) []*html.Node {
	return sel(root).Find(selector).Nodes
}

// Count is the number of descendants of root matching selector.
func Count(root *html.Node, selector string) int {
	return sel(root).Find(selector).Length()
}

func SetAttr(n *html.Node, key, value string) {
	sel(n).SetAttr(key, value)
}

func Attr(n *html.Node, key string) string {
	return sel(n).AttrOr(key, "")
}

func HasClass(n *html.Node, class string) bool {
	return sel(n).HasClass(class)
}

// SetText replaces the children of n with a single text node.
func SetText(n *html.Node, text string) {
	sel(n).SetText(text)
}

func Text(n *html.Node) string {
	return sel(n).Text()
}

// SetHTML replaces the children of n with the parsed markup.
func SetHTML(n *html.Node, markup string) {
	sel(n).SetHtml(markup)
}

func Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// SetStyle sets one inline CSS property, keeping the others in order.
func SetStyle(n *html.Node, prop, value string) {
	decls := parseStyle(Attr(n, "style"))
	found := false
	for i := range decls {
		if decls[i][0] == prop {
			decls[i][1] = value
			found = true
		}
	}
	if !found {
		decls = append(decls, [2]string{prop, value})
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d[0]+": "+d[1]+";")
	}
	SetAttr(n, "style", strings.Join(parts, " "))
}

// Style returns the inline value of prop, or "".
func Style(n *html.Node, prop string) string {
	for _, d := range parseStyle(Attr(n, "style")) {
		if d[0] == prop {
			return d[1]
		}
	}
	return ""
}

func parseStyle(s string) [][2]string {
	var out [][2]string
	for _, decl := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out = append(out, [2]string{strings.TrimSpace(k), strings.TrimSpace(v)})
	}
	return out
}
