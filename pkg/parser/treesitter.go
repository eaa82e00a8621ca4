// Package parser extracts the test-block structure of JavaScript and
// TypeScript source files without executing them.
package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/testatlas/core/pkg/parser/tspool"
)

// MaxTreeDepth is the maximum recursion depth when walking AST trees.
const MaxTreeDepth = tspool.MaxTreeDepth

// GetNodeText returns the source text for the given AST node.
// Returns empty string if the node's byte range exceeds the source length.
// Uses defensive bounds checking and panic recovery to handle edge cases.
func GetNodeText(node *sitter.Node, source []byte) (result string) {
	start := node.StartByte()
	end := node.EndByte()
	sourceLen := uint32(len(source))

	// Validate bounds before calling tree-sitter C code
	if start > sourceLen || end > sourceLen {
		return ""
	}

	// Content can panic when tree-sitter's internal byte ranges run past the
	// slice capacity; recover and return the documented empty string.
	defer func() {
		if r := recover(); r != nil {
			result = ""
		}
	}()

	return node.Content(source)
}
