package domain

// Inventory is a collection of parse results for one scanned directory tree.
type Inventory struct {
	// RootPath is the root the scan started from.
	RootPath string `json:"rootPath"`
	// Files contains one result per successfully parsed test file,
	// sorted by path.
	Files []*ParseResult `json:"files"`
}

// CountTests returns the total number of leaf test blocks across all files.
func (inv *Inventory) CountTests() int {
	count := 0
	for _, f := range inv.Files {
		count += f.CountTests()
	}
	return count
}

// CountSuites returns the total number of container blocks across all files.
func (inv *Inventory) CountSuites() int {
	count := 0
	for _, f := range inv.Files {
		count += len(f.DescribeBlocks)
	}
	return count
}
