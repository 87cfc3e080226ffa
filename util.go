package brotli

import "math"

const HUGE_VAL = math.MaxFloat64

func assert(cond bool) {
	if !cond {
		panic("assertion failure")
	}
}
