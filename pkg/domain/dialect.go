package domain

// Dialect identifies the grammar used to parse a file.
type Dialect string

// Supported dialects.
const (
	DialectJavaScript Dialect = "javascript"
	DialectTypeScript Dialect = "typescript"
	DialectTSX        Dialect = "tsx"
)
