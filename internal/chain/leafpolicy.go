// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "crypto/x509"

// checkLeafVersion enforces the X.509 v3 requirement on the leaf
// certificate when requested. Version() reports the ASN.1 encoded value
// (v3 == 2).
func checkLeafVersion(checks Checks, leaf Certificate) []FailureReason {
	if !checks.CheckLeafV3 {
		return nil
	}
	if leaf.Version() != 2 {
		return []FailureReason{reason(LeafNotV3)}
	}
	return nil
}

// checkLeafKeyUsage enforces that, when the leaf declares a KeyUsage
// extension, every bit required by checks.CheckLeafKeyUsage is present. A
// zero CheckLeafKeyUsage disables the check. A leaf with no KeyUsage
// extension at all is not penalized here; RFC 5280 treats the extension as
// optional outside of CA certificates.
func checkLeafKeyUsage(checks Checks, leaf Certificate) []FailureReason {
	if checks.CheckLeafKeyUsage == 0 {
		return nil
	}
	usage, ok := leaf.KeyUsage()
	if !ok {
		return nil
	}
	if usage&checks.CheckLeafKeyUsage != checks.CheckLeafKeyUsage {
		return []FailureReason{reason(LeafKeyUsageNotAllowed)}
	}
	return nil
}

// checkLeafKeyPurpose enforces that, when the leaf declares an
// ExtKeyUsage extension, every purpose in checks.CheckLeafKeyPurpose is
// present (or the leaf asserts ExtKeyUsageAny). An empty
// CheckLeafKeyPurpose disables the check.
func checkLeafKeyPurpose(checks Checks, leaf Certificate) []FailureReason {
	if len(checks.CheckLeafKeyPurpose) == 0 {
		return nil
	}
	purposes, ok := leaf.ExtKeyUsage()
	if !ok {
		return nil
	}

	have := make(map[x509.ExtKeyUsage]bool, len(purposes))
	for _, p := range purposes {
		have[p] = true
	}
	if have[x509.ExtKeyUsageAny] {
		return nil
	}

	for _, want := range checks.CheckLeafKeyPurpose {
		if !have[want] {
			return []FailureReason{reason(LeafKeyPurposeNotAllowed)}
		}
	}
	return nil
}

// checkLeafPolicy is the leaf policy gate: version, KeyUsage and
// ExtKeyUsage in that order, following the package-wide short-circuit/
// accumulate rule.
func checkLeafPolicy(exhaustive bool, checks Checks, leaf Certificate) []FailureReason {
	return combineSteps(exhaustive,
		checkStep{active: true, fn: func() []FailureReason { return checkLeafVersion(checks, leaf) }},
		checkStep{active: true, fn: func() []FailureReason { return checkLeafKeyUsage(checks, leaf) }},
		checkStep{active: true, fn: func() []FailureReason { return checkLeafKeyPurpose(checks, leaf) }},
	)
}
