// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// CNF is the weighted propositional encoding of a Bayesian network. It has one
// indicator variable I(v,s) for every variable v and state s of the network,
// and one parameter variable P(v,s,u) for every entry of the CPT of v, where u
// is an assignment of the parents of v. The clauses state that each network
// variable takes exactly one state and that P(v,s,u) <=> I(v,s) & I(u).
//
// Models of the CNF are thus in one-to-one correspondence with the full
// assignments of the network. With weights 1 for both literals of an
// indicator, and weights Pr(v=s | u) (positive) and 1 (negative) for a
// parameter, the weight of a model is the joint probability of the
// corresponding assignment. Hence the weighted model count of the CNF is 1 and
// the weighted model count of the CNF conjoined with some evidence (a set of
// positive indicators) is the probability of the evidence.
//
// A CNF is immutable and safe for concurrent use.
type CNF struct {
	net     *Network
	pool    *pool
	clauses []Clause
	pos     []float64 // pos[x] is the weight of literal x (index 0 unused)
	neg     []float64 // neg[x] is the weight of literal -x
}

// Compile returns the weighted CNF encoding of network n. The result only
// depends on n: variables are numbered and clauses are listed following the
// topological order of n and, for each network variable, its exactly-one
// constraint followed by the clauses of each parameter, in state then parent
// assignment order. Clause blocks of different variables are built in
// parallel (see option Workers).
//
// We return an IncompleteNetwork error if n is nil or was not obtained from a
// validating constructor such as New or FromJSON.
func Compile(n *Network, options ...func(*configs)) (*CNF, error) {
	if n == nil || !n.validated {
		return nil, errorf(IncompleteNetwork, "", "network was not built with a validating constructor")
	}
	c := makeconfigs(options)
	p := newpool(n)
	blocks := make([][]Clause, len(n.order))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for k, v := range n.order {
		g.Go(func() error {
			blocks[k] = p.block(n, v)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	res := &CNF{
		net:     n,
		pool:    p,
		clauses: make([]Clause, 0, total),
		pos:     make([]float64, p.varnum+1),
		neg:     make([]float64, p.varnum+1),
	}
	for _, b := range blocks {
		res.clauses = append(res.clauses, b...)
	}
	for x := 1; x <= p.varnum; x++ {
		vi := p.info[x-1]
		res.neg[x] = 1
		if vi.column < 0 {
			res.pos[x] = 1
			continue
		}
		res.pos[x] = n.cpts[vi.variable][vi.row][vi.column]
	}
	c.logger.Debug("network compiled", "network", n.name, "vars", p.varnum, "clauses", len(res.clauses),
		"workers", c.workers)
	return res, nil
}

// block returns the clauses of network variable v.
func (p *pool) block(n *Network, v int) []Clause {
	ind := p.indicators[v]
	res := exactlyOne(ind)
	sizes := make([]int, len(n.parents[v]))
	for k, u := range n.parents[v] {
		sizes[k] = len(n.states[u])
	}
	term := make([]Lit, 1+len(n.parents[v]))
	for row := range ind {
		for col := 0; col < p.columns[v]; col++ {
			term[0] = ind[row]
			for k, u := range n.parents[v] {
				term[k+1] = p.indicators[u][(col/n.strides[v][k])%sizes[k]]
			}
			param := []Lit{p.param(v, row, col)}
			res = append(res, implies(param, term)...)
			res = append(res, implies(term, param)...)
		}
	}
	return res
}

// Network returns the network that was compiled.
func (c *CNF) Network() *Network {
	return c.net
}

// NumVars returns the number of propositional variables.
func (c *CNF) NumVars() int {
	return c.pool.varnum
}

// NumClauses returns the number of clauses.
func (c *CNF) NumClauses() int {
	return len(c.clauses)
}

// Clause returns a copy of the i'th clause.
func (c *CNF) Clause(i int) Clause {
	return append(Clause(nil), c.clauses[i]...)
}

// Clauses returns a copy of all the clauses.
func (c *CNF) Clauses() []Clause {
	res := make([]Clause, len(c.clauses))
	for k := range c.clauses {
		res[k] = c.Clause(k)
	}
	return res
}

// Weight returns the weight of literal l. Like with a slice index, it panics
// if the variable of l is not in the range [1..NumVars].
func (c *CNF) Weight(l Lit) float64 {
	if l > 0 {
		return c.pos[l]
	}
	return c.neg[-l]
}

// LogWeight returns the natural logarithm of Weight(l), that is -Inf for a
// parameter of probability 0.
func (c *CNF) LogWeight(l Lit) float64 {
	return math.Log(c.Weight(l))
}

// Indicator returns the (positive) literal of indicator I(variable,state) and
// whether it exists.
func (c *CNF) Indicator(variable, state string) (Lit, bool) {
	v, ok := c.net.index[variable]
	if !ok {
		return 0, false
	}
	row, ok := c.net.stateidx[v][state]
	if !ok {
		return 0, false
	}
	return c.pool.indicators[v][row], true
}

// Indicators returns the indicators of variable, in the order of its states,
// or nil if it is not a variable of the network.
func (c *CNF) Indicators(variable string) []Lit {
	v, ok := c.net.index[variable]
	if !ok {
		return nil
	}
	return append([]Lit(nil), c.pool.indicators[v]...)
}

// IsIndicator reports whether propositional variable x is an indicator.
func (c *CNF) IsIndicator(x int) bool {
	vi, ok := c.pool.lookup(x)
	return ok && vi.column < 0
}

// Parameter describes the parameter variable associated with one entry of a
// CPT: Pr(Variable = State | Parents) = Probability.
type Parameter struct {
	Variable    string
	State       string
	Parents     Assignment
	Probability float64
}

// Parameter returns the description of propositional variable x if it is a
// parameter.
func (c *CNF) Parameter(x int) (Parameter, bool) {
	vi, ok := c.pool.lookup(x)
	if !ok || vi.column < 0 {
		return Parameter{}, false
	}
	n := c.net
	pa := make(Assignment, len(n.parents[vi.variable]))
	for k, u := range n.parents[vi.variable] {
		rows := len(n.states[u])
		pa[n.vars[u]] = n.states[u][(vi.column/n.strides[vi.variable][k])%rows]
	}
	return Parameter{
		Variable:    n.vars[vi.variable],
		State:       n.states[vi.variable][vi.row],
		Parents:     pa,
		Probability: n.cpts[vi.variable][vi.row][vi.column],
	}, true
}

// Evidence returns the indicators corresponding to a partial assignment of the
// network, sorted by variable. We return an UnknownVariable or an
// UndefinedAssignment error if the assignment mentions an undeclared variable
// or an invalid state.
func (c *CNF) Evidence(a Assignment) ([]Lit, error) {
	res := make([]Lit, 0, len(a))
	for _, name := range sortedkeys(map[string]string(a)) {
		v, ok := c.net.index[name]
		if !ok {
			return nil, errorf(UnknownVariable, name, "not declared in network")
		}
		row, ok := c.net.stateidx[v][a[name]]
		if !ok {
			return nil, errorf(UndefinedAssignment, name, "%q is not a state of the variable", a[name])
		}
		res = append(res, c.pool.indicators[v][row])
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res, nil
}
