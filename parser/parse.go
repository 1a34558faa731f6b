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

// Package parser converts markdown source into an HTML node tree.
// The root of the tree is a <div> holding one element per block.
//
// A document is split into blocks on blank lines. Each block is one of:
//
//      heading        = octothorpe { octothorpe } space text .     (1 to 6 octothorpes)
//      code           = fence newline { line newline } fence .
//      quote          = quote_line { newline quote_line } .
//      unordered_list = "- " text { newline "- " text } .
//      ordered_list   = "1. " text { newline n ". " text } .       (n counts up from 1)
//      paragraph      = line { newline line } .
//
//      fence          = backtick backtick backtick .
//      quote_line     = rangle [ space ] text .
//
// Text inside every block except code is scanned for inline markup:
//
//      bold   = "**" chars "**" .
//      italic = "_" chars "_" .
//      code   = "`" chars "`" .
//      image  = "![" alt "](" url ")" .
//      link   = "[" chars "](" url ")" .     (not preceded by "!")
//
// An unclosed bold, italic or code delimiter fails the whole document.
// Text is not HTML-escaped.
package parser // import "akhil.cc/marknode/parser"

import (
	"errors"
	"fmt"
	"io"

	"akhil.cc/marknode/ast"
	"github.com/npillmayer/schuko/tracing"
)

var (
	ErrMalformedInline = errors.New("malformed inline markup")
	ErrEmptyDocument   = errors.New("document has no blocks")
)

// tracer traces with key 'marknode.parser'.
func tracer() tracing.Trace {
	return tracing.Select("marknode.parser")
}

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src io.Reader) *ast.Parent {
	root, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return root
}

// Parse reads all of src and converts it with ParseString.
func Parse(src io.Reader) (*ast.Parent, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}

// ParseString converts markdown into a <div> holding one node per block,
// in document order. It returns no tree if any block fails.
func ParseString(markdown string) (*ast.Parent, error) {
	blocks := Segment(markdown)
	tracer().Debugf("segmented %d blocks", len(blocks))
	if len(blocks) == 0 {
		return nil, ErrEmptyDocument
	}
	children := make([]ast.Node, 0, len(blocks))
	for i, block := range blocks {
		typ := Classify(block)
		tracer().Debugf("block %d is %v", i+1, typ)
		n, err := Build(block, typ)
		if err != nil {
			tracer().Errorf("block %d: %v", i+1, err)
			return nil, fmt.Errorf("block %d (%v): %w", i+1, typ, err)
		}
		children = append(children, n)
	}
	return ast.NewParent("div", children, nil), nil
}
