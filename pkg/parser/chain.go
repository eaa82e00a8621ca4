package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// callChain is the resolved callee of a candidate call expression: the base
// identifier plus every .property segment between it and the invocation, in
// written (left-to-right) order. Segments that were themselves invoked
// (skipIf(cond), each([...])) contribute their name only; their arguments
// are never evaluated.
type callChain struct {
	base      string
	modifiers []string
}

// last returns the final modifier, or empty for a bare call.
func (c callChain) last() string {
	if len(c.modifiers) == 0 {
		return ""
	}
	return c.modifiers[len(c.modifiers)-1]
}

// resolveCallChain resolves the callee node of a call expression. Reports
// false when the callee does not root at a plain identifier (computed
// member, await, new, ...); such calls are not test declarations.
func resolveCallChain(callee *sitter.Node, source []byte) (callChain, bool) {
	return resolveCalleeDepth(callee, source, 0)
}

func resolveCalleeDepth(node *sitter.Node, source []byte, depth int) (callChain, bool) {
	if node == nil || depth > MaxTreeDepth {
		return callChain{}, false
	}

	switch node.Type() {
	case "identifier":
		return callChain{base: GetNodeText(node, source)}, true

	case "member_expression":
		obj := node.ChildByFieldName("object")
		prop := node.ChildByFieldName("property")
		if obj == nil || prop == nil || prop.Type() != "property_identifier" {
			return callChain{}, false
		}
		chain, ok := resolveCalleeDepth(obj, source, depth+1)
		if !ok {
			return callChain{}, false
		}
		chain.modifiers = append(chain.modifiers, GetNodeText(prop, source))
		return chain, true

	case "call_expression":
		// A modifier invoked mid-chain: describe.each([...])(...) or
		// it.skipIf(cond).concurrent(...). The inner arguments are opaque.
		return resolveCalleeDepth(node.ChildByFieldName("function"), source, depth+1)

	case "parenthesized_expression", "non_null_expression":
		return resolveWrappedCallee(node, source, depth)

	case "ternary_expression":
		return resolveConditionalCallee(node, source, depth)

	default:
		return callChain{}, false
	}
}

// resolveWrappedCallee unwraps (expr) and expr! callees.
func resolveWrappedCallee(node *sitter.Node, source []byte, depth int) (callChain, bool) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier", "member_expression", "call_expression",
			"parenthesized_expression", "non_null_expression", "ternary_expression":
			return resolveCalleeDepth(child, source, depth+1)
		}
	}
	return callChain{}, false
}

// resolveConditionalCallee handles (cond ? describe.skip : describe)(...).
// The branch taken is unknown at parse time, so only the base identifier is
// kept; branch modifiers are dropped rather than guessed.
func resolveConditionalCallee(node *sitter.Node, source []byte, depth int) (callChain, bool) {
	for _, field := range []string{"consequence", "alternative"} {
		branch := node.ChildByFieldName(field)
		if branch == nil {
			continue
		}
		if chain, ok := resolveCalleeDepth(branch, source, depth+1); ok {
			return callChain{base: chain.base}, true
		}
	}
	return callChain{}, false
}
