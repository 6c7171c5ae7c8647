// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"math"
	"sort"
)

// New builds a network from a decoded definition. The checks are done in the
// following order and the first failure is returned:
//
//   - MalformedInput if a required field is missing, a variable is declared
//     twice, has less than two (distinct) states or no CPT. A variable without
//     an entry in parents is a root;
//   - UnknownParent if a parent is not a declared variable;
//   - MalformedInput if a states, cpts or parents entry mentions an
//     undeclared variable;
//   - CyclicDependency if the parent graph is not acyclic;
//   - CptShapeMismatch if a CPT does not have one row per state and one column
//     per parent assignment;
//   - CptNotNormalized if a CPT entry is not a probability or a column does not
//     sum to 1 (see option Tolerance).
//
// The definition is copied, so it can be reused or modified afterwards.
func New(def Definition, options ...func(*configs)) (*Network, error) {
	c := makeconfigs(options)
	if err := checkshape(&def); err != nil {
		return nil, err
	}
	if err := checkkeys(&def); err != nil {
		return nil, err
	}
	order, err := TopologicalSort(defgraph{&def})
	if err != nil {
		return nil, err
	}
	n := &Network{
		name:     def.Network,
		vars:     append([]string(nil), def.Variables...),
		index:    make(map[string]int, len(def.Variables)),
		states:   make([][]string, len(def.Variables)),
		stateidx: make([]map[string]int, len(def.Variables)),
		parents:  make([][]int, len(def.Variables)),
		cpts:     make([][][]float64, len(def.Variables)),
		strides:  make([][]int, len(def.Variables)),
		order:    make([]int, 0, len(def.Variables)),
	}
	for k, name := range n.vars {
		n.index[name] = k
		n.states[k] = append([]string(nil), def.States[name]...)
		n.stateidx[k] = make(map[string]int, len(n.states[k]))
		for row, s := range n.states[k] {
			n.stateidx[k][s] = row
		}
	}
	edges := 0
	for k, name := range n.vars {
		ps := def.Parents[name]
		n.parents[k] = make([]int, len(ps))
		sizes := make([]int, len(ps))
		for j, p := range ps {
			n.parents[k][j] = n.index[p]
			sizes[j] = len(n.states[n.index[p]])
		}
		edges += len(ps)
		st, columns := strides(sizes)
		n.strides[k] = st
		if err := checkcpt(name, def.CPTs[name], len(n.states[k]), columns); err != nil {
			return nil, err
		}
		n.cpts[k] = make([][]float64, len(n.states[k]))
		for row, r := range def.CPTs[name] {
			n.cpts[k][row] = append([]float64(nil), r...)
		}
	}
	for k := range n.vars {
		if err := checknormalized(n, k, c.tolerance); err != nil {
			return nil, err
		}
	}
	for _, name := range order {
		n.order = append(n.order, n.index[name])
	}
	n.validated = true
	c.logger.Debug("network built", "network", n.name, "variables", len(n.vars), "edges", edges)
	return n, nil
}

// checkkeys checks that every declared variable has states and a CPT, that its
// parents are declared, and that maps only mention declared variables. Errors
// on map keys are reported in lexical order so that the result does not depend
// on map iteration.
func checkkeys(def *Definition) error {
	declared := make(map[string]bool, len(def.Variables))
	for _, v := range def.Variables {
		declared[v] = true
	}
	for _, v := range def.Variables {
		if _, ok := def.States[v]; !ok {
			return errorf(MalformedInput, v, "no entry in states")
		}
		if _, ok := def.CPTs[v]; !ok {
			return errorf(MalformedInput, v, "no entry in cpts")
		}
		for _, p := range def.Parents[v] {
			if p == v {
				return errorf(CyclicDependency, v, "variable is its own parent")
			}
		}
	}
	// parents before stray keys, so that a variable dropped from variables is
	// reported as an unknown parent
	for _, v := range def.Variables {
		for _, p := range def.Parents[v] {
			if !declared[p] {
				return errorf(UnknownParent, v, "parent %q is not a declared variable", p)
			}
		}
	}
	for _, field := range []struct {
		name string
		keys []string
	}{
		{"states", sortedkeys(def.States)},
		{"parents", sortedkeys(def.Parents)},
		{"cpts", sortedkeys(def.CPTs)},
	} {
		for _, k := range field.keys {
			if !declared[k] {
				return errorf(MalformedInput, k, "entry in %s for an undeclared variable", field.name)
			}
		}
	}
	return nil
}

func sortedkeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// checkcpt checks the dimensions of the table of a variable.
func checkcpt(name string, cpt [][]float64, rows, columns int) error {
	if len(cpt) != rows {
		return errorf(CptShapeMismatch, name, "expected %d rows (one per state), found %d", rows, len(cpt))
	}
	for k, r := range cpt {
		if len(r) != columns {
			return errorf(CptShapeMismatch, name, "expected %d columns (one per parent assignment) in row %d, found %d",
				columns, k, len(r))
		}
	}
	return nil
}

// checknormalized checks that every column of the CPT of v is a probability
// distribution, up to eps.
func checknormalized(n *Network, v int, eps float64) *Error {
	cpt := n.cpts[v]
	columns := len(cpt[0])
	for col := 0; col < columns; col++ {
		sum := 0.0
		for row := range cpt {
			p := cpt[row][col]
			if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1+eps {
				return errorf(CptNotNormalized, n.vars[v], "entry [%d][%d] = %g is not a probability", row, col, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > eps {
			pa := EnumerateAssignments(n.domains(v))[col]
			return errorf(CptNotNormalized, n.vars[v], "column %d (parents %s) sums to %g", col, pa, sum)
		}
	}
	return nil
}

// defgraph gives access to the dependency graph of a definition before the
// network is built.
type defgraph struct {
	def *Definition
}

func (g defgraph) Variables() []string {
	return g.def.Variables
}

func (g defgraph) Parents(name string) []string {
	return g.def.Parents[name]
}
