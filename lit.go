// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import "strconv"

// Lit is a literal in DIMACS convention: a positive integer x stands for the
// Boolean variable x and -x for its negation. Variables are numbered from 1.
type Lit int

// Var returns the variable of the literal.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Neg returns the negation of l.
func (l Lit) Neg() Lit {
	return -l
}

// Positive reports whether l is a positive occurrence of its variable.
func (l Lit) Positive() bool {
	return l > 0
}

func (l Lit) String() string {
	return strconv.Itoa(int(l))
}

// Clause is a disjunction of literals.
type Clause []Lit
