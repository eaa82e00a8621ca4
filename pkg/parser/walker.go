package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/testatlas/core/pkg/domain"
)

// walker performs the single extraction pass: a depth-first pre-order walk
// that classifies call expressions and assembles blocks onto a stack of open
// suites. Everything that is not a recognized declaration (loops,
// conditionals, class bodies, decorators, using declarations, satisfies
// expressions) is transparent: the walk passes through it without touching
// the stack, so a test declared inside a loop or factory callback still
// attaches to its lexical suite.
type walker struct {
	source []byte
	lines  *lineIndex
	names  map[string]baseName
	result *domain.ParseResult
	stack  []*domain.Block
}

func (w *walker) walk(node *sitter.Node, depth int) {
	if depth > MaxTreeDepth {
		return
	}

	if node.Type() == "call_expression" && w.processCall(node, depth) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		w.walk(node.Child(i), depth+1)
	}
}

// processCall classifies one call expression. It reports true when the call
// was consumed as a declaration; false hands the node back to the generic
// walk, which descends into its arguments — that is what keeps tests inside
// unrecognized wrappers (describeMatrix, forEach, map) discoverable.
func (w *walker) processCall(call *sitter.Node, depth int) bool {
	callee := call.ChildByFieldName("function")
	if callee == nil {
		return false
	}

	chain, ok := resolveCallChain(callee, w.source)
	if !ok {
		return false
	}

	info, ok := w.names[chain.base]
	if !ok {
		return false
	}

	args := call.ChildByFieldName("arguments")

	modifiers := chain.modifiers
	if info.implied != "" {
		modifiers = append([]string{info.implied}, modifiers...)
	}

	name, nameNode := resolveName(args, w.source)
	nameRange := w.lines.pointRange(call.StartByte())
	if nameNode != nil {
		nameRange = w.lines.nodeRange(nameNode)
	}

	block := &domain.Block{
		Kind:         info.kind,
		Name:         name,
		Modifiers:    modifiers,
		LastProperty: chain.last(),
		Mode:         domain.DeriveMode(modifiers),
		Range:        w.lines.nodeRange(call),
		NameRange:    nameRange,
	}

	w.attach(block)

	if info.kind.IsContainer() {
		w.stack = append(w.stack, block)
		if callback := findCallback(args); callback != nil {
			if body := callbackBody(callback); body != nil {
				w.walk(body, depth+1)
			}
		}
		w.stack = w.stack[:len(w.stack)-1]
	}

	return true
}

// attach links the block under the innermost open suite (or as a root) and
// records it in the flattened per-kind list. The walk is pre-order, so both
// flat lists stay in source order.
func (w *walker) attach(block *domain.Block) {
	if len(w.stack) > 0 {
		parent := w.stack[len(w.stack)-1]
		block.Parent = parent
		parent.Children = append(parent.Children, block)
	} else {
		w.result.Roots = append(w.result.Roots, block)
	}

	if block.Kind.IsContainer() {
		w.result.DescribeBlocks = append(w.result.DescribeBlocks, block)
	} else {
		w.result.ItBlocks = append(w.result.ItBlocks, block)
	}
}

// findCallback returns the last function-valued argument, or nil. Suites
// declared without a callback (pending describes, tagged templates) simply
// have no body to descend into.
func findCallback(args *sitter.Node) *sitter.Node {
	if args == nil || args.Type() == "template_string" {
		return nil
	}

	var last *sitter.Node
	for i := 0; i < int(args.ChildCount()); i++ {
		child := args.Child(i)
		switch child.Type() {
		case "arrow_function", "function_expression", "function":
			last = child
		}
	}
	return last
}

// callbackBody returns the body of a callback function. Arrow functions with
// an expression body return that expression, which can itself declare tests
// (() => it('x', fn)).
func callbackBody(callback *sitter.Node) *sitter.Node {
	return callback.ChildByFieldName("body")
}
