// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package wmc

import (
	"fmt"

	"github.com/dalzilio/bayescnf"
)

// MaxEnumerationVars is the largest number of variables accepted by
// NewEnumerator.
const MaxEnumerationVars = 24

// Enumerator is a brute-force weighted model counter. It checks every one of
// the 2^NumVars assignments of the CNF, which makes it only usable on very
// small encodings, but it does not depend on any clever algorithm. We use it as
// a reference for the other counters.
type Enumerator struct {
	varnum  int
	clauses []bayescnf.Clause
	pos     []float64
	neg     []float64
}

// NewEnumerator returns a brute-force counter for c. It fails with ErrTooLarge
// if c has more than MaxEnumerationVars variables.
func NewEnumerator(c *bayescnf.CNF) (*Enumerator, error) {
	if c.NumVars() > MaxEnumerationVars {
		return nil, fmt.Errorf("%w (%d > %d)", ErrTooLarge, c.NumVars(), MaxEnumerationVars)
	}
	e := &Enumerator{
		varnum:  c.NumVars(),
		clauses: c.Clauses(),
		pos:     make([]float64, c.NumVars()+1),
		neg:     make([]float64, c.NumVars()+1),
	}
	for x := 1; x <= e.varnum; x++ {
		e.pos[x] = c.Weight(bayescnf.Lit(x))
		e.neg[x] = c.Weight(bayescnf.Lit(-x))
	}
	return e, nil
}

// holds reports whether literal l is true in the assignment encoded by the
// bits of m, where bit x-1 gives the value of variable x.
func holds(m uint64, l bayescnf.Lit) bool {
	bit := m&(1<<uint(l.Var()-1)) != 0
	return bit == l.Positive()
}

// Count returns the sum of the weights of the assignments that satisfy every
// clause and every literal in evidence.
func (e *Enumerator) Count(evidence ...bayescnf.Lit) (float64, error) {
	for _, l := range evidence {
		if l.Var() < 1 || l.Var() > e.varnum {
			return 0, fmt.Errorf("wmc: literal %d out of range [1..%d]", l, e.varnum)
		}
	}
	total := 0.0
	for m := uint64(0); m < 1<<uint(e.varnum); m++ {
		if !e.satisfies(m, evidence) {
			continue
		}
		w := 1.0
		for x := 1; x <= e.varnum; x++ {
			if m&(1<<uint(x-1)) != 0 {
				w *= e.pos[x]
			} else {
				w *= e.neg[x]
			}
		}
		total += w
	}
	return total, nil
}

func (e *Enumerator) satisfies(m uint64, evidence []bayescnf.Lit) bool {
	for _, l := range evidence {
		if !holds(m, l) {
			return false
		}
	}
	for _, cl := range e.clauses {
		sat := false
		for _, l := range cl {
			if holds(m, l) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
