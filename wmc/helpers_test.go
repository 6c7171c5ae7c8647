// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package wmc

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalzilio/bayescnf"
	"github.com/stretchr/testify/require"
)

func compile(t testing.TB, name string) *bayescnf.CNF {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", name))
	require.NoError(t, err)
	n, err := bayescnf.FromJSON(data)
	require.NoError(t, err)
	c, err := bayescnf.Compile(n)
	require.NoError(t, err)
	return c
}

func diagram(t testing.TB, c *bayescnf.CNF) *Diagram {
	t.Helper()
	d, err := Compile(c)
	require.NoError(t, err)
	return d
}

// coin is the network with a single variable A and Pr(A=T) = 0.75.
func coin(t testing.TB) *bayescnf.CNF {
	t.Helper()
	n, err := bayescnf.New(bayescnf.Definition{
		Network:   "coin",
		Variables: []string{"A"},
		States:    map[string][]string{"A": {"F", "T"}},
		Parents:   map[string][]string{},
		CPTs:      map[string][][]float64{"A": {{0.25}, {0.75}}},
	})
	require.NoError(t, err)
	c, err := bayescnf.Compile(n)
	require.NoError(t, err)
	return c
}

func empty(t testing.TB) *bayescnf.CNF {
	t.Helper()
	n, err := bayescnf.New(bayescnf.Definition{
		Variables: []string{},
		States:    map[string][]string{},
		Parents:   map[string][]string{},
		CPTs:      map[string][][]float64{},
	})
	require.NoError(t, err)
	c, err := bayescnf.Compile(n)
	require.NoError(t, err)
	return c
}

// chain returns the encoding of a chain X0 -> X1 -> ... with k states, where
// each variable keeps the state of its parent with probability 1/2.
func chain(t testing.TB, size, k int) *bayescnf.CNF {
	t.Helper()
	def := bayescnf.Definition{
		Network: fmt.Sprintf("chain%d", size),
		States:  map[string][]string{},
		Parents: map[string][]string{},
		CPTs:    map[string][][]float64{},
	}
	states := make([]string, k)
	for s := range states {
		states[s] = fmt.Sprintf("s%d", s)
	}
	for i := 0; i < size; i++ {
		name := fmt.Sprintf("X%d", i)
		def.Variables = append(def.Variables, name)
		def.States[name] = states
		cpt := make([][]float64, k)
		for s := range cpt {
			if i == 0 {
				cpt[s] = []float64{1 / float64(k)}
				continue
			}
			cpt[s] = make([]float64, k)
			for col := range cpt[s] {
				cpt[s][col] = 0.5 / float64(k-1)
			}
			cpt[s][s] = 0.5
		}
		def.CPTs[name] = cpt
		if i > 0 {
			def.Parents[name] = []string{fmt.Sprintf("X%d", i-1)}
		}
	}
	n, err := bayescnf.New(def)
	require.NoError(t, err)
	c, err := bayescnf.Compile(n)
	require.NoError(t, err)
	return c
}

// joint returns the probability of a full assignment, computed as the product
// of the CPT entries it selects.
func joint(t testing.TB, n *bayescnf.Network, a bayescnf.Assignment) float64 {
	t.Helper()
	res := 1.0
	for _, v := range n.Variables() {
		pa := bayescnf.Assignment{}
		for _, p := range n.Parents(v) {
			pa[p] = a[p]
		}
		pr, err := n.ConditionalProbability(v, a[v], pa)
		require.NoError(t, err)
		res *= pr
	}
	return res
}
