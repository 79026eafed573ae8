// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "testing"

func TestCombineFailFastSkipsSecondStep(t *testing.T) {
	step2Called := false
	step1 := func() []FailureReason { return []FailureReason{reason(Expired)} }
	step2 := func() []FailureReason {
		step2Called = true
		return []FailureReason{reason(InFuture)}
	}

	got := combine(false, step1, step2)
	if len(got) != 1 || got[0].Kind != Expired {
		t.Fatalf("want [Expired], got %v", got)
	}
	if step2Called {
		t.Fatal("fail-fast mode must not evaluate the second step")
	}
}

func TestCombineExhaustiveRunsBothSteps(t *testing.T) {
	step1 := func() []FailureReason { return []FailureReason{reason(Expired)} }
	step2 := func() []FailureReason { return []FailureReason{reason(InFuture)} }

	got := combine(true, step1, step2)
	if len(got) != 2 || got[0].Kind != Expired || got[1].Kind != InFuture {
		t.Fatalf("want [Expired, InFuture] in order, got %v", got)
	}
}

func TestCombineStep1EmptyRunsStep2(t *testing.T) {
	step1 := func() []FailureReason { return nil }
	step2 := func() []FailureReason { return []FailureReason{reason(InFuture)} }

	got := combine(false, step1, step2)
	if len(got) != 1 || got[0].Kind != InFuture {
		t.Fatalf("want [InFuture], got %v", got)
	}
}

func TestCombineStepsSkipsInactive(t *testing.T) {
	called := false
	got := combineSteps(false,
		checkStep{active: false, fn: func() []FailureReason {
			called = true
			return []FailureReason{reason(Expired)}
		}},
		checkStep{active: true, fn: func() []FailureReason { return []FailureReason{reason(InFuture)} }},
	)

	if called {
		t.Fatal("inactive step must not be evaluated")
	}
	if len(got) != 1 || got[0].Kind != InFuture {
		t.Fatalf("want [InFuture], got %v", got)
	}
}

func TestCombineStepsFailFastStopsAtFirstDefect(t *testing.T) {
	thirdCalled := false
	got := combineSteps(false,
		checkStep{active: true, fn: func() []FailureReason { return nil }},
		checkStep{active: true, fn: func() []FailureReason { return []FailureReason{reason(Expired)} }},
		checkStep{active: true, fn: func() []FailureReason {
			thirdCalled = true
			return []FailureReason{reason(InFuture)}
		}},
	)

	if len(got) != 1 || got[0].Kind != Expired {
		t.Fatalf("want [Expired], got %v", got)
	}
	if thirdCalled {
		t.Fatal("fail-fast mode must stop at the first non-empty step")
	}
}

func TestCombineStepsExhaustiveAccumulatesAll(t *testing.T) {
	got := combineSteps(true,
		checkStep{active: true, fn: func() []FailureReason { return []FailureReason{reason(Expired)} }},
		checkStep{active: true, fn: func() []FailureReason { return nil }},
		checkStep{active: true, fn: func() []FailureReason { return []FailureReason{reason(InFuture)} }},
	)

	if len(got) != 2 || got[0].Kind != Expired || got[1].Kind != InFuture {
		t.Fatalf("want [Expired, InFuture] in order, got %v", got)
	}
}
