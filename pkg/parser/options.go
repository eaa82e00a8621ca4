package parser

import "github.com/testatlas/core/pkg/domain"

// baseName describes one recognized test-declaration identifier: the block
// kind it produces and a modifier implied by the name itself (the x/f alias
// families spell skip/only into the identifier instead of the chain).
type baseName struct {
	kind    domain.BlockKind
	implied string
}

// defaultBaseNames covers the jest/vitest/mocha declaration surface.
var defaultBaseNames = map[string]baseName{
	"describe": {kind: domain.KindDescribe},
	"suite":    {kind: domain.KindSuite},
	"context":  {kind: domain.KindDescribe},

	"it":      {kind: domain.KindIt},
	"test":    {kind: domain.KindTest},
	"specify": {kind: domain.KindIt},
	"bench":   {kind: domain.KindBench},

	"xdescribe": {kind: domain.KindDescribe, implied: domain.ModifierSkip},
	"xcontext":  {kind: domain.KindDescribe, implied: domain.ModifierSkip},
	"xit":       {kind: domain.KindIt, implied: domain.ModifierSkip},
	"xtest":     {kind: domain.KindTest, implied: domain.ModifierSkip},
	"xspecify":  {kind: domain.KindIt, implied: domain.ModifierSkip},

	"fdescribe": {kind: domain.KindDescribe, implied: domain.ModifierOnly},
	"fcontext":  {kind: domain.KindDescribe, implied: domain.ModifierOnly},
	"fit":       {kind: domain.KindIt, implied: domain.ModifierOnly},
	"fspecify":  {kind: domain.KindIt, implied: domain.ModifierOnly},
}

// Options configures a parse.
type Options struct {
	// ExtraDescribeNames are additional identifiers treated as suite
	// declarations (custom describe wrappers).
	ExtraDescribeNames []string

	// ExtraTestNames are additional identifiers treated as test
	// declarations.
	ExtraTestNames []string
}

// Option is a functional option for Parse.
type Option func(*Options)

// WithExtraDescribeNames adds identifiers recognized as suite declarations.
func WithExtraDescribeNames(names ...string) Option {
	return func(o *Options) {
		o.ExtraDescribeNames = append(o.ExtraDescribeNames, names...)
	}
}

// WithExtraTestNames adds identifiers recognized as test declarations.
func WithExtraTestNames(names ...string) Option {
	return func(o *Options) {
		o.ExtraTestNames = append(o.ExtraTestNames, names...)
	}
}

// baseNameTable builds the lookup table for an option set. Extra names never
// override the standard set.
func baseNameTable(opts *Options) map[string]baseName {
	if len(opts.ExtraDescribeNames) == 0 && len(opts.ExtraTestNames) == 0 {
		return defaultBaseNames
	}

	table := make(map[string]baseName, len(defaultBaseNames)+len(opts.ExtraDescribeNames)+len(opts.ExtraTestNames))
	for _, name := range opts.ExtraDescribeNames {
		table[name] = baseName{kind: domain.KindDescribe}
	}
	for _, name := range opts.ExtraTestNames {
		table[name] = baseName{kind: domain.KindIt}
	}
	for name, info := range defaultBaseNames {
		table[name] = info
	}
	return table
}
