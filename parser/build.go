// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"akhil.cc/marknode/ast"
)

// SpanNode maps an inline span to a leaf element.
//
//	text    raw text
//	bold    <b></b>
//	italic  <i></i>
//	code    <code></code>
//	link    <a href=""></a>
//	image   <img src="" alt="">
func SpanNode(s ast.Span) *ast.Leaf {
	switch s.Kind {
	case ast.Plain:
		return ast.NewLeaf("", s.Text, nil)
	case ast.Bold:
		return ast.NewLeaf("b", s.Text, nil)
	case ast.Italic:
		return ast.NewLeaf("i", s.Text, nil)
	case ast.Code:
		return ast.NewLeaf("code", s.Text, nil)
	case ast.Link:
		return ast.NewLeaf("a", s.Text, ast.Attrs("href", s.URL))
	case ast.Image:
		return ast.NewLeaf("img", "", ast.Attrs("src", s.URL, "alt", s.Text))
	default:
		panic(fmt.Sprintf("parser: unknown span kind %v", s.Kind))
	}
}

// Build converts a block of the given type into its element. The result
// is checked with ast.Validate, so an element that would have no content
// is reported here rather than at render time.
func Build(block string, typ ast.BlockType) (*ast.Parent, error) {
	var (
		n   *ast.Parent
		err error
	)
	lines := strings.Split(block, "\n")
	switch typ.Kind {
	case ast.Paragraph:
		n, err = paragraph(lines)
	case ast.Heading:
		n, err = heading(block, typ.Level)
	case ast.CodeBlock:
		n = code(lines)
	case ast.Quote:
		n, err = quote(lines)
	case ast.UnorderedList:
		n, err = list("ul", lines, func(int) string { return "- " })
	case ast.OrderedList:
		n, err = list("ol", lines, itemNumber)
	default:
		panic(fmt.Sprintf("parser: unknown block kind %v", typ.Kind))
	}
	if err != nil {
		return nil, err
	}
	if err := ast.Validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

// inline tokenizes text and maps each span to a leaf.
func inline(text string) ([]ast.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]ast.Node, len(spans))
	for i, s := range spans {
		nodes[i] = SpanNode(s)
	}
	return nodes, nil
}

func textElement(tag, text string) (*ast.Parent, error) {
	children, err := inline(text)
	if err != nil {
		return nil, err
	}
	return ast.NewParent(tag, children, nil), nil
}

func paragraph(lines []string) (*ast.Parent, error) {
	text := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
	return textElement("p", text)
}

func heading(block string, level int) (*ast.Parent, error) {
	return textElement("h"+strconv.Itoa(level), block[level+1:])
}

// code keeps the lines between the fences verbatim.
func code(lines []string) *ast.Parent {
	body := strings.Join(lines[1:len(lines)-1], "\n") + "\n"
	return ast.NewParent("pre", []ast.Node{ast.NewLeaf("code", body, nil)}, nil)
}

func quote(lines []string) (*ast.Parent, error) {
	stripped := make([]string, len(lines))
	for i, l := range lines {
		l = strings.TrimLeft(l, " \t")
		stripped[i] = strings.TrimLeft(strings.TrimPrefix(l, ">"), " ")
	}
	return textElement("blockquote", strings.Join(stripped, " "))
}

// list builds one <li> per line after removing the item marker.
func list(tag string, lines []string, marker func(int) string) (*ast.Parent, error) {
	items := make([]ast.Node, len(lines))
	for i, l := range lines {
		li, err := textElement("li", strings.TrimPrefix(l, marker(i)))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items[i] = li
	}
	return ast.NewParent(tag, items, nil), nil
}
