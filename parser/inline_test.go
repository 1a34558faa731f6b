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

// Tests for inline.go
package parser_test

import (
	"errors"
	"reflect"
	"testing"

	"akhil.cc/marknode/ast"
	"akhil.cc/marknode/parser"
	"github.com/sanity-io/litter"
)

type spancase struct {
	in   string
	want []ast.Span
	werr error
}

var inlineSmall = []spancase{
	{"This is **bold** and _italic_.", []ast.Span{
		ast.Text("This is "),
		ast.Styled(ast.Bold, "bold"),
		ast.Text(" and "),
		ast.Styled(ast.Italic, "italic"),
		ast.Text("."),
	}, nil},
	{"**bold** at the start", []ast.Span{
		ast.Styled(ast.Bold, "bold"),
		ast.Text(" at the start"),
	}, nil},
	{"a `code block` word", []ast.Span{
		ast.Text("a "),
		ast.Styled(ast.Code, "code block"),
		ast.Text(" word"),
	}, nil},
	{"**one** and **two**", []ast.Span{
		ast.Styled(ast.Bold, "one"),
		ast.Text(" and "),
		ast.Styled(ast.Bold, "two"),
	}, nil},
	// markup inside a styled span is left alone
	{"**bold _not italic_**", []ast.Span{
		ast.Styled(ast.Bold, "bold _not italic_"),
	}, nil},
	{"a****b", []ast.Span{ast.Text("a"), ast.Text("b")}, nil},
	{"see [the docs](https://example.com/docs) now", []ast.Span{
		ast.Text("see "),
		ast.LinkTo("the docs", "https://example.com/docs"),
		ast.Text(" now"),
	}, nil},
	{"![a cat](https://example.com/cat.png)", []ast.Span{
		ast.ImageOf("a cat", "https://example.com/cat.png"),
	}, nil},
	{"x![i](s) and [l](u)", []ast.Span{
		ast.Text("x"),
		ast.ImageOf("i", "s"),
		ast.Text(" and "),
		ast.LinkTo("l", "u"),
	}, nil},
	{"[l](u)![i](s)", []ast.Span{
		ast.LinkTo("l", "u"),
		ast.ImageOf("i", "s"),
	}, nil},
	{"**[not a link](u)**", []ast.Span{
		ast.Styled(ast.Bold, "[not a link](u)"),
	}, nil},
	{"[a]()", []ast.Span{ast.LinkTo("a", "")}, nil},
	{"[broken](link", []ast.Span{ast.Text("[broken](link")}, nil},
	{"This is **bold", nil, parser.ErrMalformedInline},
	{"**a** **b", nil, parser.ErrMalformedInline},
	{"snake_case", nil, parser.ErrMalformedInline},
	{"`open", nil, parser.ErrMalformedInline},
}

func TestTokenize(t *testing.T) {
	for i, test := range inlineSmall {
		got, err := parser.Tokenize(test.in)
		if !errors.Is(err, test.werr) || (test.werr == nil && !reflect.DeepEqual(test.want, got)) {
			t.Errorf("case %d, in %q,\nwant %s, err %v,\ngot %s, err %v", i, test.in, litter.Sdump(test.want), test.werr, litter.Sdump(got), err)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	got, err := parser.Tokenize("")
	if err != nil || len(got) != 0 {
		t.Errorf("want no spans, got %s, err %v", litter.Sdump(got), err)
	}
}

func TestImageIsNeverLink(t *testing.T) {
	got, err := parser.Tokenize("![x](y)")
	if err != nil {
		t.Fatal(err)
	}
	images, links := 0, 0
	for _, s := range got {
		switch s.Kind {
		case ast.Image:
			images++
		case ast.Link:
			links++
		}
	}
	if images != 1 || links != 0 {
		t.Errorf("want 1 image and 0 links, got %d and %d: %s", images, links, litter.Sdump(got))
	}
}

func TestSpanNode(t *testing.T) {
	cases := []struct {
		in   ast.Span
		want string
	}{
		{ast.Text("plain"), "plain"},
		{ast.Styled(ast.Bold, "b"), "<b>b</b>"},
		{ast.Styled(ast.Italic, "i"), "<i>i</i>"},
		{ast.Styled(ast.Code, "c"), "<code>c</code>"},
		{ast.LinkTo("l", "https://u"), `<a href="https://u">l</a>`},
		{ast.ImageOf("alt", "s.png"), `<img src="s.png" alt="alt">`},
	}
	for i, c := range cases {
		got, err := parser.SpanNode(c.in).HTML()
		if err != nil || got != c.want {
			t.Errorf("case %d, in %v, want %q, got %q, err %v", i, c.in, c.want, got, err)
		}
	}
	defer func() {
		if recover() == nil {
			t.Errorf("unknown span kind did not panic")
		}
	}()
	parser.SpanNode(ast.Span{Kind: ast.SpanKind(99)})
}
