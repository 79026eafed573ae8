// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import "fmt"

// Kind identifies a category of validation defect. Go has no closed sum
// types, so Kind is a string-backed enum; FailureReason pairs a Kind with
// an optional Detail string for the variants the specification carries a
// payload for (InvalidName, NameMismatch, InvalidSignature), plus the
// offending OID for UnknownCriticalExtension.
type Kind string

// The full set of failure kinds this package can emit.
const (
	UnknownCriticalExtension Kind = "unknown_critical_extension"
	Expired                  Kind = "expired"
	InFuture                 Kind = "in_future"
	SelfSigned               Kind = "self_signed"
	UnknownCA                Kind = "unknown_ca"
	NotAllowedToSign         Kind = "not_allowed_to_sign"
	NotAnAuthority           Kind = "not_an_authority"
	AuthorityTooDeep         Kind = "authority_too_deep"
	NoCommonName             Kind = "no_common_name"
	InvalidName              Kind = "invalid_name"
	NameMismatch             Kind = "name_mismatch"
	InvalidWildcard          Kind = "invalid_wildcard"
	LeafKeyUsageNotAllowed   Kind = "leaf_key_usage_not_allowed"
	LeafKeyPurposeNotAllowed Kind = "leaf_key_purpose_not_allowed"
	LeafNotV3                Kind = "leaf_not_v3"
	EmptyChain               Kind = "empty_chain"
	InvalidSignature         Kind = "invalid_signature"
)

// FailureReason describes a single validation defect. An empty
// []FailureReason from Validate/ValidateWith means success.
type FailureReason struct {
	Kind Kind

	// Detail carries the payload for Kind values that the specification
	// models as carrying data: the candidate string for InvalidName, the
	// hostname for NameMismatch, and the underlying signature failure
	// reason for InvalidSignature. UnknownCriticalExtension carries the
	// first unhandled extension's OID. Empty for every other Kind.
	Detail string
}

// String renders the failure reason for logging and CLI output.
func (r FailureReason) String() string {
	if r.Detail == "" {
		return string(r.Kind)
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Detail)
}

// reason is a convenience constructor for the common no-detail case.
func reason(k Kind) FailureReason {
	return FailureReason{Kind: k}
}

// reasonWith attaches Detail to a Kind that carries a payload.
func reasonWith(k Kind, detail string) FailureReason {
	return FailureReason{Kind: k, Detail: detail}
}
