package ast

import (
	"fmt"
	"strconv"
)

type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

var blockKinds = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	CodeBlock:     "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKinds) {
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
	return blockKinds[k]
}

// BlockType is the structural type of a block.
// Level is 1 through 6 for headings and 0 otherwise.
type BlockType struct {
	Kind  BlockKind
	Level int
}

func (b BlockType) String() string {
	if b.Kind == Heading {
		return b.Kind.String() + strconv.Itoa(b.Level)
	}
	return b.Kind.String()
}
