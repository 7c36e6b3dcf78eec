package main

import (
	"maps"
	"slices"

	"github.com/podhmo/tickeval/expr"
)

// samples are hand written programs used to exercise the interpreter.
var samples = map[string]*expr.Application{
	"idle":   expr.Eq(expr.DistX, expr.DistY),
	"sweep":  expr.Prog3(expr.Left, expr.Shoot, expr.Right),
	"aim":    expr.If(expr.DistX, expr.If(expr.Eq(expr.DistX, expr.DistY), expr.Left, expr.Right), expr.Shoot),
	"hunter": expr.If(expr.DistX, expr.Prog2(expr.Right, expr.If(expr.DistX, expr.Left, expr.Shoot)), expr.Shoot),
	"patrol": expr.Prog2(
		expr.If(expr.Left, expr.Shoot, expr.Prog3(expr.Right, expr.Right, expr.Shoot)),
		expr.If(expr.Eq(expr.DistX, expr.Shoot), expr.Shoot, expr.Right),
	),
}

func sampleNames() []string {
	return slices.Sorted(maps.Keys(samples))
}
