package scene

import (
	"strconv"
	"time"

	"golang.org/x/net/html"
)

// keyAttr stores the join key on keyed elements so the next render can find them.
const keyAttr = "data-key"

// Joined is the outcome of reconciling elements against data. Nodes holds the
// enter and update elements in data order (Nodes[i] belongs to datum i).
type Joined struct {
	Enter  []*html.Node
	Update []*html.Node
	Exit   []*html.Node
	Nodes  []*html.Node
}

// RemoveExit detaches every exiting element.
func (j Joined) RemoveExit() {
	for _, n := range j.Exit {
		Remove(n)
	}
}

// Join reconciles the children of parent that match selector against n data
// items. With a nil key, elements are matched by position; otherwise by the
// key of each datum. create appends and returns the element for a datum that
// has none. Exiting elements are reported, not removed.
func Join(parent *html.Node, selector string, n int, key func(i int) string, create func(parent *html.Node, i int) *html.Node) Joined {
	existing := sel(parent).ChildrenFiltered(selector).Nodes
	var j Joined
	j.Nodes = make([]*html.Node, n)

	if key == nil {
		for i := 0; i < n; i++ {
			if i < len(existing) {
				j.Nodes[i] = existing[i]
				j.Update = append(j.Update, existing[i])
				continue
			}
			el := create(parent, i)
			j.Nodes[i] = el
			j.Enter = append(j.Enter, el)
		}
		if len(existing) > n {
			j.Exit = append(j.Exit, existing[n:]...)
		}
		return j
	}

	byKey := make(map[string]*html.Node, len(existing))
	for _, el := range existing {
		k := Attr(el, keyAttr)
		if _, dup := byKey[k]; dup {
			j.Exit = append(j.Exit, el)
			continue
		}
		byKey[k] = el
	}
	for i := 0; i < n; i++ {
		k := key(i)
		if el, ok := byKey[k]; ok {
			delete(byKey, k)
			j.Nodes[i] = el
			j.Update = append(j.Update, el)
			continue
		}
		el := create(parent, i)
		SetAttr(el, keyAttr, k)
		j.Nodes[i] = el
		j.Enter = append(j.Enter, el)
	}
	// keep document order for leftovers
	for _, el := range existing {
		if left, ok := byKey[Attr(el, keyAttr)]; ok && left == el {
			j.Exit = append(j.Exit, el)
		}
	}
	return j
}

// Animation is a declared transition of one attribute.
type Animation struct {
	Attr     string
	From     string
	To       string
	Duration time.Duration
}

// Transition sets attr to its target value and declares an animation from the
// previous value over d. A later declaration for the same attribute replaces
// the earlier one; a transition that is still running is not cancelled.
func Transition(n *html.Node, attr, to string, d time.Duration) {
	from := Attr(n, attr)
	SetAttr(n, attr, to)
	for _, a := range sel(n).ChildrenFiltered("animate").Nodes {
		if Attr(a, "attributeName") == attr {
			Remove(a)
		}
	}
	a := Append(n, "animate")
	SetAttr(a, "attributeName", attr)
	if from != "" {
		SetAttr(a, "from", from)
	}
	SetAttr(a, "to", to)
	SetAttr(a, "dur", strconv.FormatInt(d.Milliseconds(), 10)+"ms")
	SetAttr(a, "fill", "freeze")
}

// Animations lists the transitions declared on n.
func Animations(n *html.Node) []Animation {
	var out []Animation
	for _, a := range sel(n).ChildrenFiltered("animate").Nodes {
		d, _ := time.ParseDuration(Attr(a, "dur"))
		out = append(out, Animation{
			Attr:     Attr(a, "attributeName"),
			From:     Attr(a, "from"),
			To:       Attr(a, "to"),
			Duration: d,
		})
	}
	return out
}
