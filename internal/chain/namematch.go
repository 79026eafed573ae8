// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "strings"

// DefaultValidateName applies CN/SAN matching with wildcard rules to a leaf
// certificate against a target hostname.
//
// The candidate set is the ordered sequence CN : SANs (DNS entries only).
// Matching succeeds as soon as any candidate matches. A missing CN is an
// immediate NoCommonName failure regardless of SANs content, per the
// reference semantics this package reimplements.
func DefaultValidateName(hostname string, leaf Certificate) []FailureReason {
	cn, ok := leaf.CommonName()
	if !ok || cn == "" {
		return []FailureReason{reason(NoCommonName)}
	}

	candidates := make([]string, 0, 1+len(leaf.DNSNames()))
	candidates = append(candidates, cn)
	candidates = append(candidates, leaf.DNSNames()...)

	return findMatch(hostname, candidates)
}

// findMatch returns success (nil) as soon as any candidate matches
// hostname. On total failure it emits a single NameMismatch, except when
// exactly one candidate was evaluated: in that case the sole candidate's
// own diagnostic (InvalidName or InvalidWildcard) surfaces directly rather
// than being collapsed, since there is nothing to collapse away. Per-
// candidate diagnostics are discarded the moment any other candidate
// succeeds.
func findMatch(hostname string, candidates []string) []FailureReason {
	var lastDiagnostic *FailureReason

	for _, candidate := range candidates {
		ok, diagnostic := matchCandidate(candidate, hostname)
		if ok {
			return nil
		}
		if diagnostic != nil {
			lastDiagnostic = diagnostic
		}
	}

	if len(candidates) == 1 && lastDiagnostic != nil {
		return []FailureReason{*lastDiagnostic}
	}

	return []FailureReason{reasonWith(NameMismatch, hostname)}
}

// matchCandidate applies the per-candidate rules from the Name Matcher
// specification: empty labels are a syntax error, a leading "*" label is
// a wildcard subject to the guard predicate below, anything else is
// compared label-for-label against hostname.
func matchCandidate(candidate, hostname string) (ok bool, diagnostic *FailureReason) {
	labels := strings.Split(candidate, ".")
	for _, l := range labels {
		if l == "" {
			d := reasonWith(InvalidName, candidate)
			return false, &d
		}
	}

	hostLabels := strings.Split(hostname, ".")

	if labels[0] != "*" {
		return labelsEqual(labels, hostLabels), nil
	}

	// L' is the labels after the wildcard, innermost-first.
	suffix := reverseLabels(labels[1:])

	if len(suffix) < 2 {
		d := reason(InvalidWildcard)
		return false, &d
	}

	// Guard against wildcards matching effectively down to a public
	// suffix such as "*.co.uk". This is an approximation, preserved
	// exactly as specified.
	if len(suffix[0]) <= 2 && len(suffix[1]) <= 3 && len(suffix) < 3 {
		d := reason(InvalidWildcard)
		return false, &d
	}

	// A wildcard label stands for exactly one host label; the candidate
	// and the hostname must therefore have the same label count, with the
	// labels after the wildcard matching the host's labels in order.
	if len(hostLabels) != len(labels) {
		return false, nil
	}

	reversedHost := reverseLabels(hostLabels)
	for i, want := range suffix {
		if reversedHost[i] != want {
			return false, nil
		}
	}

	return true, nil
}

func labelsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func reverseLabels(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[len(labels)-1-i] = l
	}
	return out
}
