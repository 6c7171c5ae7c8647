// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"container/heap"
	"strings"
)

// Graph is the dependency structure needed to order variables. A *Network is a
// Graph, but the sort can also be used on models built by other means.
type Graph interface {
	// Variables returns the variable names in declaration order.
	Variables() []string
	// Parents returns the (ordered) parents of a variable.
	Parents(name string) []string
}

// TopologicalSort returns all the variables of g so that every parent comes
// before its children. When several variables are ready at the same time, we
// pick the one declared first; hence two independent roots keep their
// declaration order. We return an UnknownParent error if a parent is not a
// variable of g, and a CyclicDependency error naming the variables that could
// not be ordered if the graph has a cycle.
func TopologicalSort(g Graph) ([]string, error) {
	vars := g.Variables()
	index := make(map[string]int, len(vars))
	for k, v := range vars {
		if _, ok := index[v]; ok {
			return nil, errorf(MalformedInput, v, "variable declared twice")
		}
		index[v] = k
	}
	// Kahn's algorithm with in-degree counted over distinct parents
	indeg := make([]int, len(vars))
	children := make([][]int, len(vars))
	for k, v := range vars {
		seen := make(map[int]bool)
		for _, p := range g.Parents(v) {
			pk, ok := index[p]
			if !ok {
				return nil, errorf(UnknownParent, v, "parent %q is not a declared variable", p)
			}
			if seen[pk] {
				continue
			}
			seen[pk] = true
			indeg[k]++
			children[pk] = append(children[pk], k)
		}
	}
	ready := &intheap{}
	for k := range vars {
		if indeg[k] == 0 {
			heap.Push(ready, k)
		}
	}
	res := make([]string, 0, len(vars))
	for ready.Len() > 0 {
		k := heap.Pop(ready).(int)
		res = append(res, vars[k])
		for _, c := range children[k] {
			indeg[c]--
			if indeg[c] == 0 {
				heap.Push(ready, c)
			}
		}
	}
	if len(res) != len(vars) {
		left := []string{}
		for k, v := range vars {
			if indeg[k] > 0 {
				left = append(left, v)
			}
		}
		return nil, errorf(CyclicDependency, left[0], "no order exists for {%s}", strings.Join(left, ", "))
	}
	return res, nil
}

// intheap is a min-heap of declaration indexes.
type intheap []int

func (h intheap) Len() int            { return len(h) }
func (h intheap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intheap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intheap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intheap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
