// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "time"

// MatchSubjectIssuerFunc decides whether candidate's subject DN is the
// issuer named by issuerDN.
type MatchSubjectIssuerFunc func(issuerDN string, candidate Certificate) bool

// TimeValidator checks a certificate's validity interval against now.
type TimeValidator func(now time.Time, cert Certificate) []FailureReason

// NameValidator checks a leaf certificate against a target hostname.
type NameValidator func(hostname string, leaf Certificate) []FailureReason

// Hooks is the set of three swappable predicates auditors may override.
// Default implementations (DefaultMatchSubjectIssuer, DefaultValidateTime,
// DefaultValidateName) are the reference semantics; any field left nil is
// filled in by ValidateWith before use.
type Hooks struct {
	MatchSubjectIssuer MatchSubjectIssuerFunc
	ValidateTime       TimeValidator
	ValidateName       NameValidator
}

// DefaultHooks returns the reference predicate implementations.
func DefaultHooks() Hooks {
	return Hooks{
		MatchSubjectIssuer: DefaultMatchSubjectIssuer,
		ValidateTime:       DefaultValidateTime,
		ValidateName:       DefaultValidateName,
	}
}

// withDefaults fills any unset hook with the reference implementation.
func (h Hooks) withDefaults() Hooks {
	if h.MatchSubjectIssuer == nil {
		h.MatchSubjectIssuer = DefaultMatchSubjectIssuer
	}
	if h.ValidateTime == nil {
		h.ValidateTime = DefaultValidateTime
	}
	if h.ValidateName == nil {
		h.ValidateName = DefaultValidateName
	}
	return h
}

// DefaultMatchSubjectIssuer reports whether candidate's subject DN is
// exactly issuerDN.
func DefaultMatchSubjectIssuer(issuerDN string, candidate Certificate) bool {
	return candidate.SubjectDN() == issuerDN
}
