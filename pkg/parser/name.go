package parser

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// resolveName produces a display name from a call's arguments node and
// returns the argument node it was derived from (nil when the call has no
// usable argument). Resolution never fails:
//   - string literal: the literal value;
//   - template literal: the literal text with any ${...} interpolation kept
//     verbatim as the placeholder;
//   - function argument (unnamed declaration): empty string;
//   - anything else: the raw argument source, trimmed.
func resolveName(args *sitter.Node, source []byte) (string, *sitter.Node) {
	if args == nil {
		return "", nil
	}

	// Tagged-template invocation: it`name` parses with the template string
	// itself as the arguments node.
	if args.Type() == "template_string" {
		return unquoteString(GetNodeText(args, source)), args
	}

	arg := firstArgument(args)
	if arg == nil {
		return "", nil
	}

	switch arg.Type() {
	case "string", "template_string":
		return unquoteString(GetNodeText(arg, source)), arg
	case "arrow_function", "function_expression", "function":
		return "", nil
	default:
		return strings.TrimSpace(GetNodeText(arg, source)), arg
	}
}

// firstArgument returns the first named argument, skipping punctuation and
// comments.
func firstArgument(args *sitter.Node) *sitter.Node {
	for i := 0; i < int(args.ChildCount()); i++ {
		child := args.Child(i)
		switch child.Type() {
		case "(", ")", ",", "comment":
			continue
		}
		return child
	}
	return nil
}

// unquoteString strips quoting from a JS string or template literal.
func unquoteString(text string) string {
	if len(text) < 2 {
		return text
	}

	if text[0] == '`' && text[len(text)-1] == '`' {
		return text[1 : len(text)-1]
	}

	// Go's strconv.Unquote only handles double-quoted strings, so
	// single-quoted JS strings are converted first: unescape \' and escape
	// any bare double quotes, then unquote as a Go string.
	if text[0] == '\'' && text[len(text)-1] == '\'' {
		inner := text[1 : len(text)-1]
		inner = strings.ReplaceAll(inner, `\'`, `'`)
		escaped := strings.ReplaceAll(inner, `"`, `\"`)
		if s, err := strconv.Unquote(`"` + escaped + `"`); err == nil {
			return s
		}
		return text
	}

	if s, err := strconv.Unquote(text); err == nil {
		return s
	}

	return text
}
