// Package tspool provides tree-sitter parsers for the JavaScript grammar
// family.
//
// Note: parsers are created fresh per parse rather than pooled. When a
// context is cancelled during ParseCtx, the parser's internal cancel flag is
// set but not reset, causing subsequent parses to fail with "operation limit
// was hit". Creating fresh parsers avoids this issue.
//
// Thread-safety: parsers returned by Get are NOT safe for concurrent use.
// Each goroutine must Get its own parser or use the Parse helper.
package tspool

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/testatlas/core/pkg/domain"
)

// MaxTreeDepth is the maximum recursion depth when walking AST trees.
const MaxTreeDepth = 1000

var (
	jsLang  *sitter.Language
	tsLang  *sitter.Language
	tsxLang *sitter.Language

	langOnce sync.Once
)

func initLanguages() {
	langOnce.Do(func() {
		jsLang = javascript.GetLanguage()
		tsLang = typescript.GetLanguage()
		tsxLang = tsx.GetLanguage()
	})
}

// GetLanguage returns the tree-sitter language for the given dialect.
// The TSX grammar is distinct from the TypeScript one: JSX elements are only
// valid there, while some TS-only forms (angle-bracket casts) are not.
func GetLanguage(dialect domain.Dialect) *sitter.Language {
	initLanguages()
	switch dialect {
	case domain.DialectJavaScript:
		return jsLang
	case domain.DialectTSX:
		return tsxLang
	default:
		return tsLang
	}
}

// Get returns a parser for the given dialect.
// The returned parser is NOT safe for concurrent use.
// Caller MUST call parser.Close() when done to free resources.
func Get(dialect domain.Dialect) *sitter.Parser {
	initLanguages()
	parser := sitter.NewParser()
	parser.SetLanguage(GetLanguage(dialect))
	return parser
}

// Parse parses source using a fresh parser.
// Caller MUST call tree.Close() to free resources.
func Parse(ctx context.Context, dialect domain.Dialect, source []byte) (*sitter.Tree, error) {
	parser := Get(dialect)
	defer parser.Close()

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s failed: %w", dialect, err)
	}

	return tree, nil
}
