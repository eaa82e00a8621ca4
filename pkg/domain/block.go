package domain

// BlockKind classifies a discovered declaration.
// Test and Bench behave like It (leaf test cases) but keep their written
// name for display; Suite behaves like Describe.
type BlockKind string

// Block kinds.
const (
	KindDescribe BlockKind = "describe"
	KindSuite    BlockKind = "suite"
	KindIt       BlockKind = "it"
	KindTest     BlockKind = "test"
	KindBench    BlockKind = "bench"
)

// IsContainer reports whether blocks of this kind may nest children.
func (k BlockKind) IsContainer() bool {
	return k == KindDescribe || k == KindSuite
}

// Mode is the run semantics derived from a block's modifier chain.
type Mode string

// Modes in precedence order: a chain containing several status modifiers
// resolves to the first matching entry of this list.
const (
	ModeOnly        Mode = "only"
	ModeSkipped     Mode = "skipped"
	ModeTodo        Mode = "todo"
	ModeConditional Mode = "conditional"
	ModeNormal      Mode = "normal"
)

// Modifier names with derived-mode semantics. Other modifiers (concurrent,
// sequential, each, fails, shuffle, and anything added by future framework
// versions) are carried in Block.Modifiers but leave the mode normal.
const (
	ModifierOnly   = "only"
	ModifierSkip   = "skip"
	ModifierTodo   = "todo"
	ModifierSkipIf = "skipIf"
	ModifierRunIf  = "runIf"
	ModifierEach   = "each"
	ModifierFor    = "for"
)

// DeriveMode computes the run mode from an ordered modifier chain.
// Precedence: only > skip > todo > skipIf/runIf > normal.
func DeriveMode(modifiers []string) Mode {
	var skip, todo, conditional bool
	for _, m := range modifiers {
		switch m {
		case ModifierOnly:
			return ModeOnly
		case ModifierSkip:
			skip = true
		case ModifierTodo:
			todo = true
		case ModifierSkipIf, ModifierRunIf:
			conditional = true
		}
	}
	switch {
	case skip:
		return ModeSkipped
	case todo:
		return ModeTodo
	case conditional:
		return ModeConditional
	default:
		return ModeNormal
	}
}

// Block is one discovered describe/it/test/suite/bench declaration.
type Block struct {
	// Kind is the normalized declaration kind.
	Kind BlockKind `json:"kind"`
	// Name is the resolved display name. For interpolated template names the
	// written ${...} snippets are preserved as placeholders.
	Name string `json:"name"`
	// Modifiers is the chain of property segments between the base
	// identifier and the invocation, in written (left-to-right) order.
	Modifiers []string `json:"modifiers,omitempty"`
	// LastProperty is the final modifier, or empty for a bare call.
	// "each" signals that Name is a parameterized template.
	LastProperty string `json:"lastProperty,omitempty"`
	// Mode is derived from Modifiers, see DeriveMode.
	Mode Mode `json:"mode"`
	// Range spans the whole call expression.
	Range Range `json:"range"`
	// NameRange spans the name argument. Zero-width at the call start when
	// the declaration has no name argument.
	NameRange Range `json:"nameRange"`
	// Children are nested blocks, ordered by start position. Only container
	// kinds ever have children.
	Children []*Block `json:"children,omitempty"`
	// Parent is the enclosing block, nil at top level. Excluded from JSON to
	// keep the serialized tree acyclic.
	Parent *Block `json:"-"`
}

// Depth returns the nesting depth, 0 for top-level blocks.
func (b *Block) Depth() int {
	depth := 0
	for p := b.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// CountTests returns the number of leaf test blocks at or below b.
func (b *Block) CountTests() int {
	if !b.Kind.IsContainer() {
		return 1
	}
	count := 0
	for _, child := range b.Children {
		count += child.CountTests()
	}
	return count
}
