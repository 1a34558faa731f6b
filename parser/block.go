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
	"regexp"
	"strconv"
	"strings"

	"akhil.cc/marknode/ast"
)

const fence = "```"

var blankLines = regexp.MustCompile(`\n{2,}`)

// Segment splits markdown into blocks on blank lines. Blocks are trimmed
// and empty ones are dropped. CRLF line endings are read as LF.
func Segment(markdown string) []string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	var blocks []string
	for _, b := range blankLines.Split(markdown, -1) {
		if b = strings.TrimSpace(b); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Classify returns the structural type of a block. Rules are tried in
// order: heading, code, quote, unordered list, ordered list, paragraph.
func Classify(block string) ast.BlockType {
	if block == "" {
		return ast.BlockType{Kind: ast.Paragraph}
	}
	lines := strings.Split(block, "\n")
	if n := headingLevel(lines[0]); n > 0 {
		return ast.BlockType{Kind: ast.Heading, Level: n}
	}
	if len(lines) >= 2 && strings.TrimSpace(lines[0]) == fence && strings.TrimSpace(lines[len(lines)-1]) == fence {
		return ast.BlockType{Kind: ast.CodeBlock}
	}
	if every(lines, func(i int, l string) bool { return strings.HasPrefix(strings.TrimSpace(l), ">") }) {
		return ast.BlockType{Kind: ast.Quote}
	}
	if every(lines, func(i int, l string) bool { return strings.HasPrefix(l, "- ") }) {
		return ast.BlockType{Kind: ast.UnorderedList}
	}
	if every(lines, func(i int, l string) bool { return strings.HasPrefix(l, itemNumber(i)) }) {
		return ast.BlockType{Kind: ast.OrderedList}
	}
	return ast.BlockType{Kind: ast.Paragraph}
}

// headingLevel returns the number of leading octothorpes if it is
// between 1 and 6 and followed by a space, else 0.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

// itemNumber is the prefix of the ith (0-based) ordered list line.
func itemNumber(i int) string {
	return strconv.Itoa(i+1) + ". "
}

func every(lines []string, f func(int, string) bool) bool {
	for i, l := range lines {
		if !f(i, l) {
			return false
		}
	}
	return true
}
