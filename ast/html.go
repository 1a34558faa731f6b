package ast

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrMissingValue  = errors.New("leaf node has no value")
	ErrMissingTag    = errors.New("parent node has no tag")
	ErrEmptyChildren = errors.New("parent node has no children")
	ErrNilNode       = errors.New("nil node")
)

// isNil reports whether n is nil or holds a nil pointer.
func isNil(n Node) bool {
	switch t := n.(type) {
	case *Leaf:
		return t == nil
	case *Parent:
		return t == nil
	}
	return n == nil
}

// emptyBody lists the tags whose leaves may render without a value.
// Such a leaf renders as a lone start tag.
var emptyBody = map[string]bool{
	"img": true,
}

// HTML renders the attribute list as it appears inside a start tag.
// Non-empty lists begin with a space.
func (p Props) HTML() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range p {
		fmt.Fprintf(&b, " %s=\"%s\"", a.Key, a.Value)
	}
	return b.String()
}

func (l *Leaf) check() error {
	if l == nil {
		return ErrNilNode
	}
	if l.Value == "" && !emptyBody[l.Tag] {
		return fmt.Errorf("%w: %v", ErrMissingValue, l)
	}
	return nil
}

func (p *Parent) check() error {
	if p == nil {
		return ErrNilNode
	}
	if p.Tag == "" {
		return fmt.Errorf("%w: %v", ErrMissingTag, p)
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrEmptyChildren, p.Tag)
	}
	for i, c := range p.Children {
		if isNil(c) {
			return fmt.Errorf("%w: child %d of <%s>", ErrNilNode, i, p.Tag)
		}
	}
	return nil
}

func (l *Leaf) HTML() (string, error) {
	var b strings.Builder
	if err := l.WriteHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) WriteHTML(w io.Writer) error {
	if err := l.check(); err != nil {
		return err
	}
	var err error
	switch {
	case l.Tag == "":
		_, err = io.WriteString(w, l.Value)
	case l.Value == "":
		_, err = fmt.Fprintf(w, "<%s%s>", l.Tag, l.Props.HTML())
	default:
		_, err = fmt.Fprintf(w, "<%s%s>%s</%s>", l.Tag, l.Props.HTML(), l.Value, l.Tag)
	}
	return err
}

func (p *Parent) HTML() (string, error) {
	var b strings.Builder
	if err := p.WriteHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) WriteHTML(w io.Writer) error {
	if err := p.check(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<%s%s>", p.Tag, p.Props.HTML()); err != nil {
		return err
	}
	for _, c := range p.Children {
		if err := c.WriteHTML(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", p.Tag)
	return err
}
