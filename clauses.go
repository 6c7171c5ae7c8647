// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

// implies returns the clauses for t1 => t2, where t1 and t2 are terms
// (conjunctions of literals). We obtain one clause per literal in t2, made of
// the negation of t1 and this literal.
func implies(t1, t2 []Lit) []Clause {
	res := make([]Clause, 0, len(t2))
	for _, l := range t2 {
		c := make(Clause, 0, len(t1)+1)
		for _, m := range t1 {
			c = append(c, m.Neg())
		}
		res = append(res, append(c, l))
	}
	return res
}

// exactlyOne returns the clauses stating that exactly one literal in lits is
// true: the disjunction of lits, then the pairwise exclusions (!x | !y) in
// lexicographic order of positions.
func exactlyOne(lits []Lit) []Clause {
	res := make([]Clause, 0, 1+len(lits)*(len(lits)-1)/2)
	res = append(res, append(Clause(nil), lits...))
	for x := 0; x < len(lits); x++ {
		for y := x + 1; y < len(lits); y++ {
			res = append(res, Clause{lits[x].Neg(), lits[y].Neg()})
		}
	}
	return res
}
