// Package testing provides shared fixture types for fathom tests.
package testing

// FlatRecord is a minimal two-field record. Field order is part of the
// fixture: X is declared before Y, so X decides ordering first.
type FlatRecord struct {
	X int
	Y string
}

// Node is a record holding a reference to another instance of its own
// type. Two nodes pointing at each other form the canonical two-node
// mutual-reference cycle.
type Node struct {
	Label string
	Peer  *Node
}

// Account demonstrates field policy tags.
type Account struct {
	ID    string
	Cache map[string]int `deep:"skip"`
	Pool  []byte         `deep:"shallow"`
}

// Version supplies all four override methods, ordering by its numeric
// key and ignoring Build metadata.
type Version struct {
	Major int
	Minor int
	Patch int
	Build string
}

// Equal ignores Build, matching Compare.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// Compare orders by major, minor, patch.
func (v Version) Compare(o Version) int {
	for _, d := range [3]int{v.Major - o.Major, v.Minor - o.Minor, v.Patch - o.Patch} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

// Hash folds the numeric key only, so equal versions hash equal.
func (v Version) Hash() uint64 {
	h := uint64(17)
	for _, n := range [3]int{v.Major, v.Minor, v.Patch} {
		h = h*23 + uint64(n)
	}
	return h
}

// Clone implements the copy override; Version has no mutable
// substructure.
func (v Version) Clone() Version {
	return v
}
