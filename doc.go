// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bayescnf compiles discrete Bayesian networks into weighted
propositional formulas in conjunctive normal form (CNF), suitable for
knowledge compilation into decision diagrams (BDD, SDD, d-DNNF) and exact
inference by weighted model counting.

Basics

A network is read from a declarative JSON document (see Definition), usually
obtained from a BIF file with an offline converter. It is checked once, when it
is built, and is immutable afterwards: a *Network obtained from New, FromJSON,
FromReader or FromYAML is guaranteed to be well-formed, so that all queries and
the compilation succeed. Errors are of type *Error and carry an ErrorKind that
can be tested with errors.Is.

The order of the columns of a CPT is part of the contract with the converter.
Column j of the table of a variable corresponds to the j-th assignment of its
parents, as enumerated by EnumerateAssignments: parents are taken in the order
of their declaration and the last parent varies fastest. Methods PrintCPT and
PrintDot can be used to check a converted network against its source.

Encoding

Function Compile returns the CNF encoding of a network: one indicator variable
per (variable, state) pair, one parameter variable per CPT entry, and clauses
stating that each variable takes exactly one state and that a parameter is true
exactly when its state and parent assignment are selected. Literal weights are
1 for indicators, and the CPT entry (positive literal) or 1 (negative literal)
for parameters. The weighted model count of the result is 1 and, more
generally, the weighted model count of the CNF conjoined with evidence is the
probability of the evidence. The encoding is deterministic: the same network
always yields the same numbering and the same list of clauses, independently of
the number of goroutines used to build it (see option Workers).

The result can be exported in DIMACS format with WriteDIMACS. Package wmc
provides weighted model counters, based on brute-force enumeration, on BDD
(using package rudd) and on a SAT solver, that can be used to query the
encoding.

Configuration

Functions New, FromJSON, Compile, ... accept configuration options (functions)
such as Tolerance, Workers and Logger. Options that do not apply to a call are
ignored. By default nothing is logged.
*/
package bayescnf
