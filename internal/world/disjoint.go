package world

// DisjointSet tracks which rooms are already connected by corridors.
type DisjointSet struct {
	parent []int
	size   []int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Len returns the number of elements.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Find returns the canonical root of x, compressing the path on the way.
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing a and b and reports whether a merge happened.
// The smaller tree goes under the larger root; on equal sizes b's root goes under a's.
func (ds *DisjointSet) Union(a, b int) bool {
	rootA := ds.Find(a)
	rootB := ds.Find(b)
	if rootA == rootB {
		return false
	}
	if ds.size[rootA] < ds.size[rootB] {
		ds.parent[rootA] = rootB
		ds.size[rootB] += ds.size[rootA]
	} else {
		ds.parent[rootB] = rootA
		ds.size[rootA] += ds.size[rootB]
	}
	return true
}

// Connected returns true if a and b share a root.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// AllConnected returns true if every element shares a root with element 0.
func (ds *DisjointSet) AllConnected() bool {
	if len(ds.parent) == 0 {
		return true
	}
	rep := ds.Find(0)
	for i := 1; i < len(ds.parent); i++ {
		if ds.Find(i) != rep {
			return false
		}
	}
	return true
}
