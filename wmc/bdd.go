// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package wmc

import (
	"fmt"
	"math/big"

	"github.com/dalzilio/bayescnf"
	"github.com/dalzilio/rudd"
)

// Diagram is the compilation of a weighted CNF into a Binary Decision Diagram.
// Propositional variable x of the CNF is the BDD variable (level) x-1, so that
// the variable order follows the numbering chosen by bayescnf.Compile, that is
// the topological order of the network.
//
// A Diagram is not safe for concurrent use, since counting with evidence adds
// nodes to the underlying BDD.
type Diagram struct {
	varnum int
	bdd    *rudd.BDD
	root   rudd.Node
	pos    []float64
	neg    []float64
}

// Compile builds the BDD of c by conjoining its clauses in order.
func Compile(c *bayescnf.CNF, options ...func(*configs)) (*Diagram, error) {
	cfg := makeconfigs(options)
	d := &Diagram{
		varnum: c.NumVars(),
		pos:    make([]float64, c.NumVars()+1),
		neg:    make([]float64, c.NumVars()+1),
	}
	for x := 1; x <= d.varnum; x++ {
		d.pos[x] = c.Weight(bayescnf.Lit(x))
		d.neg[x] = c.Weight(bayescnf.Lit(-x))
	}
	// rudd needs at least one variable; an extra unused level is harmless
	// since we never count over levels above varnum.
	levels := d.varnum
	if levels < 1 {
		levels = 1
	}
	b, err := rudd.New(levels, rudd.Nodesize(cfg.nodesize), rudd.Cachesize(cfg.cachesize))
	if err != nil {
		return nil, fmt.Errorf("wmc: cannot create BDD: %w", err)
	}
	d.bdd = b
	d.root = b.True()
	for i := 0; i < c.NumClauses(); i++ {
		d.root = b.And(d.root, d.clause(c.Clause(i)))
		if b.Errored() {
			return nil, fmt.Errorf("wmc: clause %d: %s", i, b.Error())
		}
	}
	cfg.logger.Debug("bdd compiled", "network", c.Network().Name(), "vars", d.varnum, "clauses", c.NumClauses())
	return d, nil
}

func (d *Diagram) literal(l bayescnf.Lit) rudd.Node {
	if l.Positive() {
		return d.bdd.Ithvar(l.Var() - 1)
	}
	return d.bdd.NIthvar(l.Var() - 1)
}

func (d *Diagram) clause(cl bayescnf.Clause) rudd.Node {
	lits := make([]rudd.Node, len(cl))
	for k, l := range cl {
		lits[k] = d.literal(l)
	}
	return d.bdd.Or(lits...)
}

// Satcount returns the number of models of the CNF. For the encoding of a
// network, this is the number of full assignments of the network.
func (d *Diagram) Satcount() *big.Int {
	res := d.bdd.Satcount(d.root)
	if d.varnum == 0 {
		// the unused level doubles the count
		res.Rsh(res, 1)
	}
	return res
}

// Count returns the weighted model count of the CNF conjoined with the literals
// in evidence. A variable skipped along a path of the diagram contributes the
// sum of the weights of its two literals.
func (d *Diagram) Count(evidence ...bayescnf.Lit) (float64, error) {
	n := d.root
	for _, l := range evidence {
		if l.Var() < 1 || l.Var() > d.varnum {
			return 0, fmt.Errorf("wmc: literal %d out of range [1..%d]", l, d.varnum)
		}
		n = d.bdd.And(n, d.literal(l))
	}
	if d.bdd.Errored() {
		return 0, fmt.Errorf("wmc: %s", d.bdd.Error())
	}
	type vertex struct {
		level, low, high int
	}
	vertices := make(map[int]vertex)
	err := d.bdd.Allnodes(func(id, level, low, high int) error {
		if id > 1 {
			vertices[id] = vertex{level, low, high}
		}
		return nil
	}, n)
	if err != nil {
		return 0, err
	}
	level := func(id int) int {
		if id < 2 {
			return d.varnum
		}
		return vertices[id].level
	}
	// skip returns the weight of the free variables between two levels
	skip := func(from, to int) float64 {
		w := 1.0
		for l := from; l < to; l++ {
			w *= d.pos[l+1] + d.neg[l+1]
		}
		return w
	}
	memo := map[int]float64{0: 0, 1: 1}
	var count func(id int) float64
	count = func(id int) float64 {
		if w, ok := memo[id]; ok {
			return w
		}
		v := vertices[id]
		low := d.neg[v.level+1] * skip(v.level+1, level(v.low)) * count(v.low)
		high := d.pos[v.level+1] * skip(v.level+1, level(v.high)) * count(v.high)
		memo[id] = low + high
		return low + high
	}
	root := *n
	return skip(0, level(root)) * count(root), nil
}

// Stats returns information about the underlying BDD.
func (d *Diagram) Stats() string {
	return d.bdd.Stats()
}
