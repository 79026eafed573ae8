// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "time"

// walkChain is the chain walker state machine. It validates the leaf's
// issuer and every subsequent authority up to a trust anchor, one
// iteration per certificate, tracking (level, current, remaining) as three
// live loop variables rather than recursing — pathological chains
// submitted by a misbehaving peer should not grow the Go call stack.
//
// level is the distance of current from the leaf (0 at the leaf itself);
// the leaf has already been subjected to the Leaf Policy Gate and Name
// Matcher elsewhere; here it gets its time validity check and is the
// subject of the first issuer lookup and signature check.
//
// Each iteration follows §4.6's node steps in order: time validity on
// current, then an anchor lookup by current's issuer DN (terminating on a
// match), then the self-signed-but-untrusted case (terminating), then
// UnknownCA if the presented chain is exhausted, then issuer selection
// from the presented chain, then the CA Constraint Gate on the selected
// issuer followed by the signature check for that edge, before moving on
// to the next iteration.
func walkChain(now time.Time, hooks Hooks, checks Checks, store CertificateStore, fullChain CertificateChain) []FailureReason {
	if len(fullChain) == 0 {
		return []FailureReason{reason(EmptyChain)}
	}

	exhaustive := checks.CheckExhaustive

	var accumulated []FailureReason
	level := 0
	current := fullChain[0]
	remaining := fullChain[1:]

	for {
		nodeReasons := combineSteps(exhaustive,
			checkStep{active: checks.CheckTimeValidity, fn: func() []FailureReason {
				return hooks.ValidateTime(now, current)
			}},
			checkStep{active: level > 0 && checks.CheckExtensions, fn: func() []FailureReason {
				return checkExtensions(current)
			}},
		)
		if len(nodeReasons) > 0 && !exhaustive {
			return append(accumulated, nodeReasons...)
		}
		accumulated = append(accumulated, nodeReasons...)

		// Anchor lookup happens before issuer selection from the
		// presented chain: a certificate whose issuer DN is already a
		// recognized trust anchor terminates the walk here, even if the
		// peer also (redundantly) presented that anchor.
		if anchor, found := store.FindCertificate(current.IssuerDN()); found {
			return append(accumulated, checkSignature(current, anchor)...)
		}

		if hooks.MatchSubjectIssuer(current.IssuerDN(), current) {
			// current is self-signed and, per the lookup above, not a
			// recognized anchor. SelfSigned and the self-signature check
			// are both always emitted regardless of exhaustion mode: this
			// is the terminal step for this node, so there is no later
			// work for fail-fast to preserve by skipping the second check.
			accumulated = append(accumulated, reason(SelfSigned))
			return append(accumulated, checkSignature(current, current)...)
		}

		if len(remaining) == 0 {
			return append(accumulated, reason(UnknownCA))
		}

		issuer, nextRemaining, found := selectFromPresentedChain(
			hooks, current, remaining, checks.CheckStrictOrdering,
		)
		if !found {
			return append(accumulated, reason(UnknownCA))
		}

		nextLevel := level + 1
		edgeReasons := combineSteps(exhaustive,
			checkStep{active: checks.CheckCAConstraints, fn: func() []FailureReason {
				return checkCAConstraints(checks, issuer, nextLevel)
			}},
			checkStep{active: true, fn: func() []FailureReason {
				return checkSignature(current, issuer)
			}},
		)
		if len(edgeReasons) > 0 && !exhaustive {
			return append(accumulated, edgeReasons...)
		}
		accumulated = append(accumulated, edgeReasons...)

		level = nextLevel
		current = issuer
		remaining = nextRemaining
	}
}

// selectFromPresentedChain finds, among the peer-presented certificates in
// remaining, the certificate that signed current. The trust store is not
// consulted here: by the time this is called, the anchor lookup and
// self-signed check above have already ruled those cases out.
//
// Under strict ordering, the presented chain is trusted to name its own
// issuer next: remaining[0] is the only candidate consulted. Under
// non-strict ordering, remaining is scanned in full for any certificate
// whose subject matches current's issuer DN, accommodating peers that
// present certificates out of order.
func selectFromPresentedChain(
	hooks Hooks,
	current Certificate,
	remaining CertificateChain,
	strict bool,
) (issuer SignedCertificate, nextRemaining CertificateChain, found bool) {
	if strict {
		if len(remaining) > 0 && hooks.MatchSubjectIssuer(current.IssuerDN(), remaining[0]) {
			return remaining[0], remaining[1:], true
		}
		return nil, remaining, false
	}

	for i, candidate := range remaining {
		if hooks.MatchSubjectIssuer(current.IssuerDN(), candidate) {
			next := make(CertificateChain, 0, len(remaining)-1)
			next = append(next, remaining[:i]...)
			next = append(next, remaining[i+1:]...)
			return candidate, next, true
		}
	}
	return nil, remaining, false
}
