// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"log/slog"
	"runtime"
)

// _TOLERANCE is the default absolute error allowed on the sum of a CPT column.
const _TOLERANCE float64 = 1e-6

// configs is used to store the values of the different parameters used when
// building a network or compiling it. Options that do not apply to a call are
// ignored, so the same list can be passed to New and Compile.
type configs struct {
	tolerance float64      // allowed error on the sum of a CPT column
	workers   int          // number of goroutines generating clause blocks
	logger    *slog.Logger // destination of debug records
}

func makeconfigs(options []func(*configs)) *configs {
	c := &configs{
		tolerance: _TOLERANCE,
		workers:   runtime.GOMAXPROCS(0),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, f := range options {
		f(c)
	}
	return c
}

// Tolerance is a configuration option (function). Used as a parameter in New
// or FromJSON it sets the absolute error allowed when checking that each
// column of a CPT sums to 1. The default value is 1e-6. Negative values are
// ignored.
func Tolerance(eps float64) func(*configs) {
	return func(c *configs) {
		if eps >= 0 {
			c.tolerance = eps
		}
	}
}

// Workers is a configuration option (function). Used as a parameter in
// Compile it sets the number of goroutines used to generate the clauses of
// different variables. The result does not depend on this value. By default we
// use GOMAXPROCS; values less than 1 are ignored.
func Workers(n int) func(*configs) {
	return func(c *configs) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// Logger is a configuration option (function). It sets the logger receiving
// debug records about construction and compilation. By default nothing is
// logged.
func Logger(l *slog.Logger) func(*configs) {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}
