// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "crypto/x509"

// checkCAConstraints is the CA Constraint Gate applied to every non-leaf
// certificate encountered while walking the chain. level is the 1-based
// distance of candidate from the leaf (the leaf's immediate issuer is
// level 1).
func checkCAConstraints(checks Checks, candidate Certificate, level int) []FailureReason {
	if !checks.CheckCAConstraints {
		return nil
	}

	usage, hasUsage := candidate.KeyUsage()
	if hasUsage && usage&x509.KeyUsageCertSign == 0 {
		return []FailureReason{reason(NotAllowedToSign)}
	}

	constraints, ok := candidate.BasicConstraints()
	if !ok {
		return nil
	}
	if !constraints.IsCA {
		return []FailureReason{reason(NotAnAuthority)}
	}
	if constraints.HasPathLenConstraint && level > constraints.PathLenConstraint+1 {
		return []FailureReason{reason(AuthorityTooDeep)}
	}
	return nil
}
