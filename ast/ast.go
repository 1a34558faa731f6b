package ast

import (
	"fmt"
	"io"
	"strings"
)

//go:generate sumgen Node = *Leaf | *Parent
type Node interface {
	node()
	// HTML renders the subtree rooted at the node.
	HTML() (string, error)
	// WriteHTML writes the same bytes HTML would return.
	WriteHTML(w io.Writer) error
}

// Leaf is an element with a single text body, or raw text if Tag is empty.
type Leaf struct {
	Tag   string
	Value string
	Props Props
}

// Parent is a container element. It owns its children.
type Parent struct {
	Tag      string
	Children []Node
	Props    Props
}

func (*Leaf) node()   {}
func (*Parent) node() {}

// NewLeaf returns a leaf node. An empty tag makes it raw text.
func NewLeaf(tag, value string, props Props) *Leaf {
	return &Leaf{Tag: tag, Value: value, Props: props}
}

// NewParent returns a container node holding children in order.
func NewParent(tag string, children []Node, props Props) *Parent {
	return &Parent{Tag: tag, Children: children, Props: props}
}

// Prop is a single HTML attribute.
type Prop struct {
	Key   string
	Value string
}

// Props is an ordered attribute list. Rendering follows slice order.
type Props []Prop

// Attrs builds Props from alternating keys and values.
func Attrs(kv ...string) Props {
	if len(kv)%2 != 0 {
		panic("ast: Attrs called with odd number of arguments")
	}
	if len(kv) == 0 {
		return nil
	}
	props := make(Props, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		props = append(props, Prop{Key: kv[i], Value: kv[i+1]})
	}
	return props
}

// Get returns the value of the first attribute named key.
func (p Props) Get(key string) (string, bool) {
	for _, a := range p {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (l *Leaf) String() string {
	return fmt.Sprintf("LeafNode(%s, %s, %s)", l.Tag, l.Value, l.Props.HTML())
}

func (p *Parent) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ParentNode(%s, children: [", p.Tag)
	for i, c := range p.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c)
	}
	fmt.Fprintf(&b, "], %s)", p.Props.HTML())
	return b.String()
}

// Walk visits n and its descendants in document order.
// It stops at the first error returned by f.
func Walk(n Node, f Walker) error {
	if n == nil {
		return nil
	}
	if err := f(n); err != nil {
		return err
	}
	if p, ok := n.(*Parent); ok {
		for _, c := range p.Children {
			if err := Walk(c, f); err != nil {
				return err
			}
		}
	}
	return nil
}

type Walker func(Node) error

// Validate reports the first node in the tree that cannot be rendered.
func Validate(n Node) error {
	if isNil(n) {
		return ErrNilNode
	}
	return Walk(n, func(n Node) error {
		switch t := n.(type) {
		case *Leaf:
			return t.check()
		case *Parent:
			return t.check()
		}
		return nil
	})
}
