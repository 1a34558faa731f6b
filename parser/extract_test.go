package parser

import (
	"reflect"
	"testing"

	"akhil.cc/marknode/ast"
	"github.com/sanity-io/litter"
)

// Image and link extraction must give the same spans whichever runs first.
func TestExtractOrderIndependent(t *testing.T) {
	inputs := []string{
		"x![i](s) and [l](u)",
		"[l](u)![i](s)",
		"!![a](u)",
		"![a](u)",
		"[a](u)",
		"![i](s)![j](t)[k](v)[m](w)",
		"text ![alt](src) more [anchor](href) end",
		"no markup here",
		"[unclosed](x",
	}
	for i, in := range inputs {
		spans := []ast.Span{ast.Text(in)}
		imagesFirst := extractLinks(extractImages(spans))
		linksFirst := extractImages(extractLinks(spans))
		if !reflect.DeepEqual(imagesFirst, linksFirst) {
			t.Errorf("case %d, in %q,\nimages first %s,\nlinks first %s", i, in, litter.Sdump(imagesFirst), litter.Sdump(linksFirst))
		}
	}
}

func TestExtractPassesLeaveStyledSpans(t *testing.T) {
	spans := []ast.Span{
		ast.Styled(ast.Code, "[l](u)"),
		ast.Text(" "),
		ast.Styled(ast.Bold, "![i](s)"),
	}
	got := extractLinks(extractImages(spans))
	if !reflect.DeepEqual(spans, got) {
		t.Errorf("want %s,\ngot %s", litter.Sdump(spans), litter.Sdump(got))
	}
}
