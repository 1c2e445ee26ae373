package domain

// Tag is a grouping string used to categorize and query links. Tag text is
// unique across the store: matching is byte-exact and case-sensitive, with
// no trimming or folding applied anywhere in the core.
type Tag struct {
	ID  int64
	Tag string
}
