// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// collider is the network A, B -> C used throughout the tests.
const collider = `{
    "network": "toy_network",
    "variables": ["A", "B", "C"],
    "cpts": {
        "A": [[0.5], [0.5]],
        "B": [[0.25], [0.75]],
        "C": [[0.9, 0.8, 0.3, 0.4], [0.1, 0.2, 0.7, 0.6]]
    },
    "states": {
        "A": ["F", "T"],
        "B": ["F", "T"],
        "C": ["F", "T"]
    },
    "parents" :{
        "A": [],
        "B": [],
        "C": ["A", "B"]
    }
}`

func load(t testing.TB, name string) *Network {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	n, err := FromJSON(data)
	require.NoError(t, err)
	return n
}

// chain returns the definition of a chain X0 -> X1 -> ... of size variables
// with states 0..k-1, where each variable keeps the value of its parent with
// probability 1/2 and spreads the rest uniformly.
func chain(size, k int) Definition {
	def := Definition{
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
		if i == 0 {
			def.Parents[name] = []string{}
			cpt := make([][]float64, k)
			for s := range cpt {
				cpt[s] = []float64{1 / float64(k)}
			}
			def.CPTs[name] = cpt
			continue
		}
		def.Parents[name] = []string{fmt.Sprintf("X%d", i-1)}
		cpt := make([][]float64, k)
		for s := range cpt {
			cpt[s] = make([]float64, k)
			for col := range cpt[s] {
				if s == col {
					cpt[s][col] = 0.5
				} else {
					cpt[s][col] = 0.5 / float64(k-1)
				}
			}
		}
		def.CPTs[name] = cpt
	}
	return def
}

func chainjson(size, k int) ([]byte, error) {
	return json.Marshal(chain(size, k))
}
