// Package chain provides a fluent wrapper around rop.Result[T] so a
// railway reads left to right:
//
//	out := chain.Map(
//		chain.FromValue(10).Ensure(func(v int) bool { return v > 0 }, rop.Failure("neg")),
//		func(v int) int { return v + 10000 },
//	).Result()
//
// Steps that keep the value type are methods; steps that change it (Then,
// ThenTry, Map, Finally) are functions, since Go methods can not introduce
// type parameters. Every step delegates to package solo.
package chain
