// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package wmc

import (
	"errors"

	"github.com/dalzilio/bayescnf"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// errUnknown is returned when the solver gives up, which should not happen
// since we never set a time limit.
var errUnknown = errors.New("wmc: solver returned unknown")

func load(c *bayescnf.CNF) *gini.Gini {
	g := gini.New()
	for i := 0; i < c.NumClauses(); i++ {
		for _, l := range c.Clause(i) {
			g.Add(z.Dimacs2Lit(int(l)))
		}
		g.Add(z.LitNull)
	}
	return g
}

// Satisfiable reports whether the CNF has a model where all the literals in
// evidence are true. For the encoding of a network, this is false exactly when
// evidence assigns two different states to the same variable.
func Satisfiable(c *bayescnf.CNF, evidence ...bayescnf.Lit) (bool, error) {
	g := load(c)
	for _, l := range evidence {
		g.Assume(z.Dimacs2Lit(int(l)))
	}
	switch g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	}
	return false, errUnknown
}

// Models calls f on every full assignment of the network encoded by c, as
// found by the SAT solver (there is no guarantee on the order). After each
// model we add a clause blocking the indicators that are true, so we stop after
// exactly one call per assignment of the network. We stop and return the error
// if f returns an error.
func Models(c *bayescnf.CNF, f func(bayescnf.Assignment) error) error {
	g := load(c)
	net := c.Network()
	vars := net.TopologicalOrder()
	for {
		switch g.Solve() {
		case -1:
			return nil
		case 0:
			return errUnknown
		}
		a := make(bayescnf.Assignment, len(vars))
		block := make([]z.Lit, 0, len(vars))
		for _, v := range vars {
			states := net.States(v)
			for k, l := range c.Indicators(v) {
				m := z.Dimacs2Lit(int(l))
				if g.Value(m) {
					a[v] = states[k]
					block = append(block, m.Not())
				}
			}
		}
		if err := f(a); err != nil {
			return err
		}
		if len(block) == 0 {
			// the empty network has a single, empty, assignment
			return nil
		}
		for _, m := range block {
			g.Add(m)
		}
		g.Add(z.LitNull)
	}
}
