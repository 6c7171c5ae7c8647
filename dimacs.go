// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Example of DIMACS output for the network with a single variable A, with
// states F and T, and Pr(A=T) = 0.75:
//
// c network "coin"
// c ind "A" "F" 1
// c ind "A" "T" 2
// p cnf 4 6
// c p weight 1 1 0
// c p weight -1 1 0
// c p weight 2 1 0
// c p weight -2 1 0
// c p weight 3 0.25 0
// c p weight -3 1 0
// c p weight 4 0.75 0
// c p weight -4 1 0
// 1 2 0
// -1 -2 0
// -3 1 0
// -1 3 0
// -4 2 0
// -2 4 0

// WriteDIMACS outputs the CNF in the (weighted) DIMACS format used in model
// counting competitions: a problem line "p cnf V C", one "c p weight" line for
// each literal, and then one 0-terminated line per clause. We also list the
// indicator associated with each state of the network in comment lines, so
// that results can be mapped back to the network.
func (c *CNF) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := c.net
	fmt.Fprintf(bw, "c network %q\n", n.name)
	for _, v := range n.order {
		for row, s := range n.states[v] {
			fmt.Fprintf(bw, "c ind %q %q %d\n", n.vars[v], s, c.pool.indicators[v][row])
		}
	}
	fmt.Fprintf(bw, "p cnf %d %d\n", c.pool.varnum, len(c.clauses))
	for x := 1; x <= c.pool.varnum; x++ {
		fmt.Fprintf(bw, "c p weight %d %s 0\n", x, formatweight(c.pos[x]))
		fmt.Fprintf(bw, "c p weight %d %s 0\n", -x, formatweight(c.neg[x]))
	}
	for _, cl := range c.clauses {
		for _, l := range cl {
			bw.WriteString(strconv.Itoa(int(l)))
			bw.WriteByte(' ')
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}

// String returns the DIMACS representation of the CNF.
func (c *CNF) String() string {
	var sb strings.Builder
	c.WriteDIMACS(&sb)
	return sb.String()
}

func formatweight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
