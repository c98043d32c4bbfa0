package domain

// Info is a read-only snapshot of a single IPv4 subnet. It is built fresh
// on every calculation and never mutated.
type Info struct {
	Network     string `json:"network"`
	Prefix      int    `json:"prefix"`
	Mask        string `json:"mask"`
	Wildcard    string `json:"wildcard"`
	Broadcast   string `json:"broadcast"`
	FirstHost   string `json:"first_host"`
	LastHost    string `json:"last_host"`
	TotalHosts  uint64 `json:"total_hosts"`
	UsableHosts uint64 `json:"usable_hosts"`
	Class       string `json:"class"`
	CIDR        string `json:"cidr"`
}

// SplitResult holds the children produced by partitioning a parent block,
// in ascending address order.
type SplitResult struct {
	Parent   string `json:"parent"`
	Children []Info `json:"children"`
}

// ChildCount returns the number of children in the split.
func (r *SplitResult) ChildCount() int {
	return len(r.Children)
}
