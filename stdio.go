// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
)

// Example of DOT output for the collider:
//
// digraph "toy_network" {
// 0 [label="A"];
// 1 [label="B"];
// 2 [label="C"];
// 0 -> 2;
// 1 -> 2;
// }

// PrintDot writes a graph-like description of the network, with one vertex per
// variable and one arc from each parent to its children, using the DOT format.
// Vertices are listed in declaration order.
func (n *Network) PrintDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %q {\n", n.name)
	for k, name := range n.vars {
		fmt.Fprintf(bw, "%d [label=%q];\n", k, name)
	}
	for k := range n.vars {
		for _, p := range n.parents[k] {
			fmt.Fprintf(bw, "%d -> %d;\n", p, k)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// FPrintDot is like PrintDot but writes to a file. We use the standard output
// if filename is "-".
func (n *Network) FPrintDot(filename string) error {
	if filename == "-" {
		return n.PrintDot(os.Stdout)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := n.PrintDot(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// PrintCPT writes the table of variable name with one line per parent
// assignment and one column per state, for instance:
//
//	A  B  |  F    T
//	F  F  |  0.9  0.1
//	F  T  |  0.8  0.2
func (n *Network) PrintCPT(w io.Writer, name string) error {
	v, ok := n.index[name]
	if !ok {
		return errorf(UnknownVariable, name, "not declared in network")
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range n.parents[v] {
		fmt.Fprintf(tw, "%s\t", n.vars[p])
	}
	fmt.Fprint(tw, "|")
	for _, s := range n.states[v] {
		fmt.Fprintf(tw, "\t%s", s)
	}
	fmt.Fprintln(tw)
	for col, pa := range EnumerateAssignments(n.domains(v)) {
		for _, p := range n.parents[v] {
			fmt.Fprintf(tw, "%s\t", pa[n.vars[p]])
		}
		fmt.Fprint(tw, "|")
		for row := range n.states[v] {
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(n.cpts[v][row][col], 'g', -1, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
