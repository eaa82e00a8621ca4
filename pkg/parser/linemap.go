package parser

import (
	"bytes"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/testatlas/core/pkg/domain"
)

// lineIndex converts byte offsets to line/column positions. It is built once
// per parse so large files with many blocks cost one scan plus a binary
// search per lookup instead of a rescan per lookup.
type lineIndex struct {
	// starts holds the byte offset of the first byte of each line.
	// starts[0] is always 0.
	starts []uint32
	length uint32
}

func newLineIndex(source []byte) *lineIndex {
	starts := make([]uint32, 1, 64)
	for off := 0; ; {
		i := bytes.IndexByte(source[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		starts = append(starts, uint32(off))
	}
	return &lineIndex{starts: starts, length: uint32(len(source))}
}

// position maps a byte offset to a Position (1-based line, 0-based column).
// Offsets past the end of the source clamp to the final position.
func (ix *lineIndex) position(offset uint32) domain.Position {
	if offset > ix.length {
		offset = ix.length
	}
	// First line whose start is strictly after offset; the line containing
	// offset is the one before it.
	line := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})
	return domain.Position{
		Line:   line,
		Column: int(offset - ix.starts[line-1]),
	}
}

// nodeRange maps a node's byte extent to a Range.
func (ix *lineIndex) nodeRange(node *sitter.Node) domain.Range {
	return domain.Range{
		Start: ix.position(node.StartByte()),
		End:   ix.position(node.EndByte()),
	}
}

// pointRange returns a zero-width range at the given offset.
func (ix *lineIndex) pointRange(offset uint32) domain.Range {
	pos := ix.position(offset)
	return domain.Range{Start: pos, End: pos}
}
