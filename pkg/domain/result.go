package domain

// ParseResult is the immutable outcome of extracting one file.
// Roots holds the top-level block tree; DescribeBlocks and ItBlocks are
// flattened views over the same blocks, in source order, because consumers
// query "all tests" and "structural tree" independently.
type ParseResult struct {
	// Path is the file path the result was produced for.
	Path string `json:"path"`
	// Dialect is the grammar selected from the file extension.
	Dialect Dialect `json:"dialect"`
	// Roots are the top-level blocks in source order.
	Roots []*Block `json:"roots,omitempty"`
	// DescribeBlocks lists every container block (describe/suite).
	DescribeBlocks []*Block `json:"describeBlocks,omitempty"`
	// ItBlocks lists every leaf block (it/test/bench).
	ItBlocks []*Block `json:"itBlocks,omitempty"`
}

// CountTests returns the number of leaf test blocks in the file.
func (r *ParseResult) CountTests() int {
	return len(r.ItBlocks)
}

// BlockAt returns the innermost block whose range contains pos, or nil.
// Used to map an editor cursor position to a test identity.
func (r *ParseResult) BlockAt(pos Position) *Block {
	var found *Block
	blocks := r.Roots
	for len(blocks) > 0 {
		var next []*Block
		for _, b := range blocks {
			if b.Range.Contains(pos) {
				found = b
				next = b.Children
				break
			}
		}
		blocks = next
	}
	return found
}
