package core

// DisjointSet is a union-find structure over comparable elements, with path
// compression and union by size.
type DisjointSet[T comparable] struct {
	parent map[T]T
	size   map[T]int
	sets   int
}

// NewDisjointSet creates a disjoint set where every element starts as its
// own singleton set.
func NewDisjointSet[T comparable](elems ...T) *DisjointSet[T] {
	ds := &DisjointSet[T]{
		parent: make(map[T]T, len(elems)),
		size:   make(map[T]int, len(elems)),
	}
	for _, e := range elems {
		ds.Add(e)
	}
	return ds
}

// Add inserts e as a singleton set. Adding an existing element is a no-op.
func (ds *DisjointSet[T]) Add(e T) {
	if _, ok := ds.parent[e]; ok {
		return
	}
	ds.parent[e] = e
	ds.size[e] = 1
	ds.sets++
}

// Has reports whether e has been added.
func (ds *DisjointSet[T]) Has(e T) bool {
	_, ok := ds.parent[e]
	return ok
}

// Find returns the representative of the set containing e.
// The second result is false if e was never added.
func (ds *DisjointSet[T]) Find(e T) (T, bool) {
	if !ds.Has(e) {
		return e, false
	}
	root := e
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[e] != root {
		next := ds.parent[e]
		ds.parent[e] = root
		e = next
	}
	return root, true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet[T]) Connected(a, b T) bool {
	ra, okA := ds.Find(a)
	rb, okB := ds.Find(b)
	return okA && okB && ra == rb
}

// Union merges the sets containing a and b. It returns false if they were
// already joined or either element is unknown.
func (ds *DisjointSet[T]) Union(a, b T) bool {
	ra, okA := ds.Find(a)
	rb, okB := ds.Find(b)
	if !okA || !okB || ra == rb {
		return false
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
	delete(ds.size, rb)
	ds.sets--
	return true
}

// Len returns the number of disjoint sets.
func (ds *DisjointSet[T]) Len() int {
	return ds.sets
}
