// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import (
	"crypto/sha256"
	"time"
)

// Validate checks chainCerts against hostname using the reference hooks
// and checks, evaluated at the current time, stopping at the first defect.
// It is a convenience wrapper around ValidateWith for callers that do not
// need to customize behavior.
func Validate(hostname string, chainCerts CertificateChain, store CertificateStore) []FailureReason {
	return ValidateWith(Params{Time: time.Now(), Hostname: hostname}, DefaultHooks(), DefaultChecks(), store, chainCerts)
}

// ValidateWith is the fully configurable entry point: params carries the
// evaluation time and target hostname, hooks supplies the three swappable
// predicates, and checks selects which gates run and whether failures
// short-circuit or accumulate.
//
// The leaf is evaluated against the Leaf Policy Gate and Name Matcher, and
// the chain above it is evaluated by the chain walker, as two steps
// combined by the package's standard short-circuit/accumulate rule: in
// fail-fast mode the walk is never started once the leaf itself is
// rejected, so the two steps are modeled as lazy thunks rather than eager
// slices.
func ValidateWith(params Params, hooks Hooks, checks Checks, store CertificateStore, chainCerts CertificateChain) []FailureReason {
	if len(chainCerts) == 0 {
		return []FailureReason{reason(EmptyChain)}
	}
	hooks = hooks.withDefaults()
	leaf := chainCerts[0]

	// Order follows §4.6's leaf phase exactly: name, then version, then
	// KU/EKU (the latter two folded into checkLeafPolicy). The critical-
	// extensions check is an addition with no place in that enumeration,
	// so it runs last rather than disturbing the documented sequence.
	leafStep := func() []FailureReason {
		return combineSteps(checks.CheckExhaustive,
			checkStep{active: checks.CheckFQHN, fn: func() []FailureReason {
				return hooks.ValidateName(params.Hostname, leaf)
			}},
			checkStep{active: true, fn: func() []FailureReason {
				return checkLeafPolicy(checks.CheckExhaustive, checks, leaf)
			}},
			checkStep{active: checks.CheckExtensions, fn: func() []FailureReason {
				return checkExtensions(leaf)
			}},
		)
	}

	walkStep := func() []FailureReason {
		return walkChain(params.Time, hooks, checks, store, chainCerts)
	}

	reasons := combine(checks.CheckExhaustive, leafStep, walkStep)
	if reasons == nil {
		return nil
	}
	return reasons
}

// GetFingerprint computes the SHA-256 fingerprint of a certificate's raw
// DER encoding, the form used throughout reporting and payload output.
func GetFingerprint(cert SignedCertificate) [32]byte {
	return sha256.Sum256(cert.Raw())
}
