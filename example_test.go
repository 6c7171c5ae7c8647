// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf_test

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dalzilio/bayescnf"
)

// This example shows the basic usage of the package: read a network, query its
// tables and compile it into a weighted CNF.
func Example_basic() {
	n, err := bayescnf.FromJSON([]byte(`{
		"network": "toy_network",
		"variables": ["A", "B", "C"],
		"states": {"A": ["F", "T"], "B": ["F", "T"], "C": ["F", "T"]},
		"parents": {"A": [], "B": [], "C": ["A", "B"]},
		"cpts": {
			"A": [[0.5], [0.5]],
			"B": [[0.25], [0.75]],
			"C": [[0.9, 0.8, 0.3, 0.4], [0.1, 0.2, 0.7, 0.6]]
		}
	}`))
	if err != nil {
		log.Fatal(err)
	}
	pas, _ := n.ParentAssignments("C")
	for _, pa := range pas {
		p, _ := n.ConditionalProbability("C", "T", pa)
		fmt.Printf("Pr(C=T | %s) = %g\n", pa, p)
	}
	c, err := bayescnf.Compile(n)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d variables, %d clauses\n", c.NumVars(), c.NumClauses())
	// Output:
	// Pr(C=T | {A=F, B=F}) = 0.1
	// Pr(C=T | {A=F, B=T}) = 0.2
	// Pr(C=T | {A=T, B=F}) = 0.7
	// Pr(C=T | {A=T, B=T}) = 0.6
	// 18 variables, 46 clauses
}

// This example shows the DIMACS output of the encoding for a network with a
// single variable.
func ExampleCNF_WriteDIMACS() {
	n, err := bayescnf.New(bayescnf.Definition{
		Network:   "coin",
		Variables: []string{"A"},
		States:    map[string][]string{"A": {"F", "T"}},
		Parents:   map[string][]string{},
		CPTs:      map[string][][]float64{"A": {{0.25}, {0.75}}},
	})
	if err != nil {
		log.Fatal(err)
	}
	c, _ := bayescnf.Compile(n)
	c.WriteDIMACS(os.Stdout)
	// Output:
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
}

// This example shows how errors are reported, and how to test for a kind of
// error.
func ExampleErrorKind() {
	_, err := bayescnf.FromJSON([]byte(`{
		"variables": ["A", "B"],
		"states": {"A": ["F", "T"], "B": ["F", "T"]},
		"parents": {"A": ["B"], "B": ["A"]},
		"cpts": {"A": [[0.5, 0.5], [0.5, 0.5]], "B": [[0.5, 0.5], [0.5, 0.5]]}
	}`))
	fmt.Println(err)
	fmt.Println(errors.Is(err, bayescnf.CyclicDependency))
	// Output:
	// cyclic dependency (variable "A"): no order exists for {A, B}
	// true
}
