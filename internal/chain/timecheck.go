// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "time"

// DefaultValidateTime is the reference validity-interval check: InFuture
// if now is before NotBefore, Expired if now is after NotAfter, otherwise
// no defect.
func DefaultValidateTime(now time.Time, cert Certificate) []FailureReason {
	switch {
	case now.Before(cert.NotBefore()):
		return []FailureReason{reason(InFuture)}
	case now.After(cert.NotAfter()):
		return []FailureReason{reason(Expired)}
	default:
		return nil
	}
}
