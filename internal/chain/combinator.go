// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

// combine implements the two-step exhaustion combinator: evaluate step1; if
// it produced no reasons, return step2's result. Otherwise, in exhaustive
// mode evaluate step2 as well and concatenate; in fail-fast mode return
// step1's result without evaluating step2 at all.
func combine(exhaustive bool, step1, step2 func() []FailureReason) []FailureReason {
	r1 := step1()
	if len(r1) == 0 {
		return step2()
	}
	if !exhaustive {
		return r1
	}
	r2 := step2()
	out := make([]FailureReason, 0, len(r1)+len(r2))
	out = append(out, r1...)
	out = append(out, r2...)
	return out
}

// checkStep is one entry in a list folded by combineSteps. active allows a
// step to be skipped entirely (not even evaluated) without special-casing
// the fold.
type checkStep struct {
	active bool
	fn     func() []FailureReason
}

// combineSteps folds a list of steps left to right using the same
// short-circuit/accumulate rule as combine, skipping inactive entries.
// Emitted reasons follow the order the steps are listed in.
func combineSteps(exhaustive bool, steps ...checkStep) []FailureReason {
	var out []FailureReason
	for _, s := range steps {
		if !s.active {
			continue
		}
		r := s.fn()
		out = append(out, r...)
		if len(r) > 0 && !exhaustive {
			break
		}
	}
	return out
}
