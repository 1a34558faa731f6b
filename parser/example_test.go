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

// Examples for parse.go
package parser_test

import (
	"fmt"
	"strings"

	"akhil.cc/marknode/parser"
)

func ExampleMustParse() {
	src := `# Favorite Hobbits

- Frodo
- Samwise
- _Bilbo_
`
	root := parser.MustParse(strings.NewReader(src))
	s, err := root.HTML()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output:
	// <div><h1>Favorite Hobbits</h1><ul><li>Frodo</li><li>Samwise</li><li><i>Bilbo</i></li></ul></div>
}

func ExampleTokenize() {
	spans, err := parser.Tokenize("This is **bold** and [a link](https://go.dev).")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range spans {
		fmt.Println(s)
	}
	// Output:
	// TextNode(This is , text, )
	// TextNode(bold, bold, )
	// TextNode( and , text, )
	// TextNode(a link, link, https://go.dev)
	// TextNode(., text, )
}

func ExampleClassify() {
	for _, block := range parser.Segment("## Intro\n\n1. first\n2. second\n\n> quoted") {
		fmt.Println(parser.Classify(block))
	}
	// Output:
	// heading2
	// ordered_list
	// quote
}
