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
	"regexp"
	"strings"

	"akhil.cc/marknode/ast"
)

// delimiters are applied in order. Each pass only looks inside Plain spans,
// so markup inside an already styled span is left as is.
var delimiters = []struct {
	delim string
	kind  ast.SpanKind
}{
	{"**", ast.Bold},
	{"_", ast.Italic},
	{"`", ast.Code},
}

var (
	imageRE = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkRE  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Tokenize splits text into styled spans.
// It fails with ErrMalformedInline if a delimiter is left open.
func Tokenize(text string) ([]ast.Span, error) {
	spans := []ast.Span{ast.Text(text)}
	for _, d := range delimiters {
		var err error
		spans, err = splitDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = extractImages(spans)
	spans = extractLinks(spans)
	return spans, nil
}

// splitDelimiter cuts every Plain span at delim. Odd-numbered pieces
// become spans of kind; empty pieces are dropped.
func splitDelimiter(spans []ast.Span, delim string, kind ast.SpanKind) ([]ast.Span, error) {
	out := make([]ast.Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != ast.Plain {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.Text, delim)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q not closed in %q", ErrMalformedInline, delim, s.Text)
		}
		for i, p := range parts {
			if p == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, ast.Text(p))
			} else {
				out = append(out, ast.Styled(kind, p))
			}
		}
	}
	return out, nil
}

func extractImages(spans []ast.Span) []ast.Span {
	return extract(spans, imageRE, func(text string, beg int) bool { return true }, ast.ImageOf)
}

// extractLinks skips matches preceded by "!", which are images.
func extractLinks(spans []ast.Span) []ast.Span {
	notImage := func(text string, beg int) bool {
		return beg == 0 || text[beg-1] != '!'
	}
	return extract(spans, linkRE, notImage, ast.LinkTo)
}

// extract replaces each accepted match of re inside Plain spans with the
// span built from its two submatches. Text around matches stays Plain.
func extract(spans []ast.Span, re *regexp.Regexp, accept func(string, int) bool, mk func(string, string) ast.Span) []ast.Span {
	out := make([]ast.Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != ast.Plain {
			out = append(out, s)
			continue
		}
		last := 0
		for _, m := range re.FindAllStringSubmatchIndex(s.Text, -1) {
			if !accept(s.Text, m[0]) {
				continue
			}
			if m[0] > last {
				out = append(out, ast.Text(s.Text[last:m[0]]))
			}
			out = append(out, mk(s.Text[m[2]:m[3]], s.Text[m[4]:m[5]]))
			last = m[1]
		}
		if last < len(s.Text) {
			out = append(out, ast.Text(s.Text[last:]))
		}
	}
	return out
}
