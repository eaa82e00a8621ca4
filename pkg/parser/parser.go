package parser

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/testatlas/core/pkg/domain"
	"github.com/testatlas/core/pkg/parser/tspool"
)

// ParseError reports that the grammar could not produce a tree for a file.
// It is fatal for that file only; callers decide whether to skip or retry
// after the file changes.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DetectDialect selects the grammar dialect from the file extension.
// Unknown extensions (.mjs, .mts, no extension) fall back to TypeScript,
// whose grammar is a superset of plain JavaScript.
func DetectDialect(path string) domain.Dialect {
	switch filepath.Ext(path) {
	case ".js", ".jsx":
		return domain.DialectJavaScript
	case ".tsx":
		return domain.DialectTSX
	default:
		return domain.DialectTypeScript
	}
}

// Parse extracts the test-block structure of one source file.
//
// The path selects the dialect and labels diagnostics; source is the
// complete file contents. The call is pure and synchronous: it reads only
// its inputs and returns a fresh, immutable ParseResult, so callers may
// parse many files concurrently without coordination.
//
// Declarations the extractor cannot confidently interpret degrade (treated
// as not a test, or named by raw text) instead of failing the file; the only
// error is a *ParseError when the grammar itself cannot produce a tree.
func Parse(path string, source []byte, opts ...Option) (*domain.ParseResult, error) {
	return ParseCtx(context.Background(), path, source, opts...)
}

// ParseCtx is Parse with a context applied to the grammar parse.
func ParseCtx(ctx context.Context, path string, source []byte, opts ...Option) (*domain.ParseResult, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	dialect := DetectDialect(path)

	tree, err := tspool.Parse(ctx, dialect, source)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer tree.Close()

	result := &domain.ParseResult{
		Path:    path,
		Dialect: dialect,
	}

	w := &walker{
		source: source,
		lines:  newLineIndex(source),
		names:  baseNameTable(options),
		result: result,
	}
	w.walk(tree.RootNode(), 0)

	return result, nil
}
