// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"sort"
	"strings"
)

// Assignment maps variable names to one of their states.
type Assignment map[string]string

// String returns the assignment with variables in lexical order, for instance
// "{A=T, B=F}".
func (a Assignment) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(a[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

// Domain is a variable name together with its ordered list of states.
type Domain struct {
	Name   string
	States []string
}

// EnumerateAssignments returns the Cartesian product of the domains. The order
// is fixed: the last domain varies fastest, then the one before it, and so on,
// with states taken in declaration order. This is the order used to author the
// columns of a CPT, so that the j-th assignment of the parents of a variable
// selects the j-th column of its table.
//
// An empty list of domains has exactly one (empty) assignment. A domain with no
// states yields no assignment at all. Domain names must be distinct: when a
// name is repeated, the result still has one entry per combination of states
// but the assignments only keep the state of the last domain with this name,
// so some of them are equal. Networks built with New never do this.
func EnumerateAssignments(domains []Domain) []Assignment {
	total := 1
	for _, d := range domains {
		total *= len(d.States)
	}
	res := make([]Assignment, 0, total)
	if total == 0 {
		return res
	}
	// odometer over state indexes, rightmost digit is the fastest
	digits := make([]int, len(domains))
	for {
		a := make(Assignment, len(domains))
		for k, d := range domains {
			a[d.Name] = d.States[digits[k]]
		}
		res = append(res, a)
		k := len(domains) - 1
		for ; k >= 0; k-- {
			digits[k]++
			if digits[k] < len(domains[k].States) {
				break
			}
			digits[k] = 0
		}
		if k < 0 {
			return res
		}
	}
}

// strides returns, for each domain, the distance between two consecutive
// states of this domain in the enumeration order of EnumerateAssignments,
// together with the total number of assignments.
func strides(sizes []int) ([]int, int) {
	st := make([]int, len(sizes))
	cur := 1
	for k := len(sizes) - 1; k >= 0; k-- {
		st[k] = cur
		cur *= sizes[k]
	}
	return st, cur
}
