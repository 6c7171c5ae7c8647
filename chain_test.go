// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// chainsize returns the number of variables and clauses in the encoding of
// chain(size, k). The root has k parameters, the other variables k*k.
func chainsize(size, k int) (int, int) {
	eo := 1 + k*(k-1)/2
	vars := size*k + k + (size-1)*k*k
	clauses := size*eo + 2*k + 3*(size-1)*k*k
	return vars, clauses
}

func TestChain(t *testing.T) {
	for _, size := range []int{1, 2, 5, 20} {
		for _, k := range []int{2, 3, 5} {
			n, err := New(chain(size, k))
			require.NoError(t, err)
			c, err := Compile(n)
			require.NoError(t, err)
			vars, clauses := chainsize(size, k)
			if c.NumVars() != vars || c.NumClauses() != clauses {
				t.Errorf("Error in chain(%d, %d), expected (%d, %d), actual (%d, %d)",
					size, k, vars, clauses, c.NumVars(), c.NumClauses())
			}
		}
	}
}

func benchmarkChain(b *testing.B, workers int) {
	n, err := New(chain(2000, 4))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(n, Workers(workers)); err != nil {
			b.Error(err)
		}
	}
}

func BenchmarkChainSequential(b *testing.B) {
	benchmarkChain(b, 1)
}

func BenchmarkChainParallel(b *testing.B) {
	benchmarkChain(b, runtime.GOMAXPROCS(0))
}

func BenchmarkFromJSON(b *testing.B) {
	data, err := chainjson(500, 3)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FromJSON(data); err != nil {
			b.Error(err)
		}
	}
}
