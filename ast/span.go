package ast

import "fmt"

type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var spanKinds = [...]string{
	Plain:  "text",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKinds) {
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
	return spanKinds[k]
}

// Span is a run of inline text with a single style.
// URL is meaningful for Link and Image spans only and is empty for all
// other kinds. An empty URL does not mark a link as URL-less: "[a]()" is
// a Link span whose URL is the empty string, and it still renders an
// href attribute. Use Kind, not URL, to tell links and images apart.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Text returns a Plain span.
func Text(s string) Span {
	return Span{Kind: Plain, Text: s}
}

// Styled returns a span of kind k, which must be one of Plain, Bold, Italic or Code.
func Styled(k SpanKind, s string) Span {
	switch k {
	case Plain, Bold, Italic, Code:
		return Span{Kind: k, Text: s}
	}
	panic(fmt.Sprintf("ast: Styled called with %v", k))
}

// LinkTo returns a Link span with anchor text s.
func LinkTo(s, url string) Span {
	return Span{Kind: Link, Text: s, URL: url}
}

// ImageOf returns an Image span with alternative text alt.
func ImageOf(alt, url string) Span {
	return Span{Kind: Image, Text: alt, URL: url}
}

func (s Span) String() string {
	return fmt.Sprintf("TextNode(%s, %v, %s)", s.Text, s.Kind, s.URL)
}
