// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"encoding/json"
	"strings"
)

// Variable is a discrete random variable: a name and the ordered list of its
// states. The position of a state in States is the row of the variable's CPT.
type Variable struct {
	Name   string
	States []string
}

// Network is an immutable, validated, discrete Bayesian network. Values are
// obtained with New, FromJSON, FromReader or FromYAML; the zero value is not a
// usable network. All methods are safe for concurrent use and return copies of
// the internal data.
type Network struct {
	name      string
	vars      []string         // names, in declaration order
	index     map[string]int   // name -> position in vars
	states    [][]string       // states of each variable
	stateidx  []map[string]int // state -> row, for each variable
	parents   [][]int          // parents of each variable (positions in vars)
	cpts      [][][]float64    // cpts[v][row][column]
	strides   [][]int          // column stride of each parent, see strides
	order     []int            // a topological order (positions in vars)
	validated bool
}

// Name returns the name of the network, possibly empty.
func (n *Network) Name() string {
	return n.name
}

// Variables returns the names of all the variables, in declaration order.
func (n *Network) Variables() []string {
	return append([]string(nil), n.vars...)
}

// Len returns the number of variables in the network.
func (n *Network) Len() int {
	return len(n.vars)
}

// Variable returns the variable called name and whether it exists.
func (n *Network) Variable(name string) (Variable, bool) {
	if _, ok := n.index[name]; !ok {
		return Variable{}, false
	}
	return Variable{Name: name, States: n.States(name)}, true
}

// Parents returns the parents of variable name in declaration order. The
// result is empty for a root and nil when name is not a variable.
func (n *Network) Parents(name string) []string {
	v, ok := n.index[name]
	if !ok {
		return nil
	}
	res := make([]string, len(n.parents[v]))
	for k, p := range n.parents[v] {
		res[k] = n.vars[p]
	}
	return res
}

// States returns all the possible values of variable name, in the order used
// to index the rows of its CPT, or nil if name is not a variable.
func (n *Network) States(name string) []string {
	v, ok := n.index[name]
	if !ok {
		return nil
	}
	return append([]string(nil), n.states[v]...)
}

// CPT returns a copy of the conditional probability table of variable name,
// with one row per state and one column per parent assignment (in the order of
// ParentAssignments), or nil if name is not a variable.
func (n *Network) CPT(name string) [][]float64 {
	v, ok := n.index[name]
	if !ok {
		return nil
	}
	res := make([][]float64, len(n.cpts[v]))
	for k, row := range n.cpts[v] {
		res[k] = append([]float64(nil), row...)
	}
	return res
}

// TopologicalOrder returns the variables so that parents always come before
// their children, breaking ties with the declaration order. It is the result of
// TopologicalSort, computed once when the network is built.
func (n *Network) TopologicalOrder() []string {
	res := make([]string, len(n.order))
	for k, v := range n.order {
		res[k] = n.vars[v]
	}
	return res
}

func (n *Network) domains(v int) []Domain {
	res := make([]Domain, len(n.parents[v]))
	for k, p := range n.parents[v] {
		res[k] = Domain{Name: n.vars[p], States: n.states[p]}
	}
	return res
}

// ParentAssignments returns all the possible assignments of the parents of
// variable name. The j-th assignment corresponds to the j-th column of the
// variable's CPT (see EnumerateAssignments for the ordering). A root has a
// single, empty, assignment.
func (n *Network) ParentAssignments(name string) ([]Assignment, error) {
	v, ok := n.index[name]
	if !ok {
		return nil, errorf(UnknownVariable, name, "not declared in network")
	}
	return EnumerateAssignments(n.domains(v)), nil
}

// ConditionalProbability returns Pr(name = state | pa). The parent assignment
// must give a valid state to every parent of name and mention no other
// variable; otherwise we return an UndefinedAssignment error.
func (n *Network) ConditionalProbability(name, state string, pa Assignment) (float64, error) {
	v, ok := n.index[name]
	if !ok {
		return 0, errorf(UnknownVariable, name, "not declared in network")
	}
	row, ok := n.stateidx[v][state]
	if !ok {
		return 0, errorf(UndefinedAssignment, name, "%q is not a state of the variable", state)
	}
	col, err := n.column(v, pa)
	if err != nil {
		return 0, err
	}
	return n.cpts[v][row][col], nil
}

// column returns the CPT column selected by a parent assignment of v.
func (n *Network) column(v int, pa Assignment) (int, error) {
	if len(pa) != len(n.parents[v]) {
		return 0, errorf(UndefinedAssignment, n.vars[v], "assignment %s does not match parents {%s}",
			pa, strings.Join(n.Parents(n.vars[v]), ", "))
	}
	col := 0
	for k, p := range n.parents[v] {
		val, ok := pa[n.vars[p]]
		if !ok {
			return 0, errorf(UndefinedAssignment, n.vars[v], "assignment %s misses parent %q", pa, n.vars[p])
		}
		idx, ok := n.stateidx[p][val]
		if !ok {
			return 0, errorf(UndefinedAssignment, n.vars[v], "%q is not a state of parent %q", val, n.vars[p])
		}
		col += n.strides[v][k] * idx
	}
	return col, nil
}

// Definition returns the network in the shape of the input document.
func (n *Network) Definition() Definition {
	def := Definition{
		Network:   n.name,
		Variables: n.Variables(),
		States:    make(map[string][]string, len(n.vars)),
		Parents:   make(map[string][]string, len(n.vars)),
		CPTs:      make(map[string][][]float64, len(n.vars)),
	}
	for _, name := range n.vars {
		def.States[name] = n.States(name)
		def.Parents[name] = n.Parents(name)
		def.CPTs[name] = n.CPT(name)
	}
	return def
}

// MarshalJSON encodes the network in the format read by FromJSON.
func (n *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Definition())
}
