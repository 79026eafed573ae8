// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Target names one chain to validate in a ValidateMany batch.
type Target struct {
	Hostname string
	Chain    CertificateChain
}

// Outcome pairs a Target with the FailureReasons ValidateWith produced for
// it. A nil Reasons slice with a nil Err means the chain validated cleanly;
// a target skipped because the context was done has a nil Reasons slice
// and the context's error in Err.
type Outcome struct {
	Target  Target
	Reasons []FailureReason
	Err     error
}

// ValidateMany runs ValidateWith over every target concurrently, bounded
// by concurrency simultaneous workers, and returns one Outcome per target
// in the same order targets were given. It is meant for auditors that
// sweep many hosts or a certificate store's full inventory in one pass,
// where running each chain's walk serially would dominate wall-clock time.
//
// A non-positive concurrency leaves the limit unset, letting errgroup run
// every target at once.
func ValidateMany(ctx context.Context, params Params, hooks Hooks, checks Checks, store CertificateStore, targets []Target, concurrency int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(targets))

	g, gCtx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				outcomes[i] = Outcome{Target: target, Err: gCtx.Err()}
				return gCtx.Err()
			default:
			}

			p := params
			p.Hostname = target.Hostname
			reasons := ValidateWith(p, hooks, checks, store, target.Chain)
			outcomes[i] = Outcome{Target: target, Reasons: reasons}
			return nil
		})
	}

	err := g.Wait()
	return outcomes, err
}
