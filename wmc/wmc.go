// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package wmc computes weighted model counts of the CNF encodings built by
// package bayescnf, and uses them to answer probabilistic queries.
//
// Three back-ends are provided: Enumerator, a brute-force counter used as a
// reference on small encodings; Diagram, which compiles the CNF into a Binary
// Decision Diagram with package rudd and counts on the diagram; and the
// functions Satisfiable and Models, based on the gini SAT solver, that check
// evidence for consistency and list the possible worlds of a network.
package wmc

import (
	"errors"
	"log/slog"

	"github.com/dalzilio/bayescnf"
)

// Counter is implemented by the weighted model counters of this package. Count
// returns the weighted model count of the CNF conjoined with the (unit)
// literals in evidence.
type Counter interface {
	Count(evidence ...bayescnf.Lit) (float64, error)
}

// ErrTooLarge is returned when building an Enumerator for a CNF with more than
// MaxEnumerationVars variables.
var ErrTooLarge = errors.New("wmc: too many variables for enumeration")

// ErrZeroEvidence is returned by Conditional when the evidence has probability
// zero.
var ErrZeroEvidence = errors.New("wmc: evidence has probability zero")

// Probability returns the probability of a partial assignment of the network
// encoded by c, that is the weighted model count of c conjoined with the
// indicators of the assignment.
func Probability(counter Counter, c *bayescnf.CNF, event bayescnf.Assignment) (float64, error) {
	lits, err := c.Evidence(event)
	if err != nil {
		return 0, err
	}
	return counter.Count(lits...)
}

// Conditional returns Pr(query | evidence) for two partial assignments of the
// network encoded by c. The result is 0 if query and evidence disagree on a
// variable.
func Conditional(counter Counter, c *bayescnf.CNF, query, evidence bayescnf.Assignment) (float64, error) {
	elits, err := c.Evidence(evidence)
	if err != nil {
		return 0, err
	}
	qlits, err := c.Evidence(query)
	if err != nil {
		return 0, err
	}
	den, err := counter.Count(elits...)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, ErrZeroEvidence
	}
	num, err := counter.Count(append(qlits, elits...)...)
	if err != nil {
		return 0, err
	}
	return num / den, nil
}

// configs stores the parameters used when compiling a Diagram.
type configs struct {
	nodesize  int
	cachesize int
	logger    *slog.Logger
}

func makeconfigs(options []func(*configs)) *configs {
	c := &configs{
		nodesize:  10000,
		cachesize: 5000,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, f := range options {
		f(c)
	}
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in
// Compile it sets the initial size of the BDD node table. The table grows when
// needed; the default is 10 000 nodes.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in
// Compile it sets the initial number of entries in the BDD operation caches.
// The default is 5 000.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Logger is a configuration option (function). It sets the logger receiving
// debug records about compilation.
func Logger(l *slog.Logger) func(*configs) {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}
