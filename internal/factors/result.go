// Package factors contains the pure multiplier calculators: material, size,
// condition, era, flaw, and trend. Every calculator returns a Result so the
// orchestrator can compose factors without per-type branching, and none of
// them ever return an error for malformed domain data - missing or garbled
// input degrades to a neutral multiplier with tier "unknown".
package factors

import "math"

// Result is the uniform output of every multiplier calculator.
type Result struct {
	Multiplier float64
	Tier       string
	Parts      []Part
}

// Part is one line of a calculator's breakdown, in the order it was applied.
type Part struct {
	Label  string
	Value  float64
	Note   string
	Weight float64
}

// Neutral is the no-signal result.
func Neutral() Result {
	return Result{Multiplier: 1.0, Tier: "unknown"}
}

// sane guards the engine's core invariant: no NaN or Infinity ever enters the
// multiplier stack. Malformed math collapses to neutral.
func sane(m float64) float64 {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		return 1.0
	}
	return m
}
