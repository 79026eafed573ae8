// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package chain

import (
	"crypto"
	"crypto/x509"
	"encoding/asn1"
	"time"
)

// Certificate is the read-only view of a single certificate that this
// package requires. It is deliberately narrow: the ASN.1 decoding that
// produces it is an external collaborator, not this package's concern.
type Certificate interface {
	// SubjectDN is the certificate's subject distinguished name.
	SubjectDN() string

	// IssuerDN is the certificate's issuer distinguished name.
	IssuerDN() string

	// NotBefore and NotAfter bound the certificate's validity interval.
	NotBefore() time.Time
	NotAfter() time.Time

	// Version is the encoded X.509 version value (0, 1 or 2; 2 denotes
	// v3).
	Version() int

	// PublicKey is the certificate's subject public key.
	PublicKey() crypto.PublicKey

	// CommonName returns the string value of the subject DN's CN
	// attribute, if present and decodable.
	CommonName() (value string, ok bool)

	// DNSNames returns the DNS entries of the subject alternative name
	// extension. Other SAN variants are not exposed here.
	DNSNames() []string

	// KeyUsage returns the decoded key-usage extension, if present.
	KeyUsage() (usage x509.KeyUsage, ok bool)

	// ExtKeyUsage returns the decoded extended-key-usage extension, if
	// present.
	ExtKeyUsage() (usages []x509.ExtKeyUsage, ok bool)

	// BasicConstraints returns the decoded basic-constraints extension,
	// if present.
	BasicConstraints() (constraints BasicConstraints, ok bool)

	// UnhandledCriticalExtensions lists the OIDs of critical extensions
	// the decoder did not recognize.
	UnhandledCriticalExtensions() []asn1.ObjectIdentifier
}

// BasicConstraints is the decoded form of the basic-constraints extension.
type BasicConstraints struct {
	// IsCA reflects the cA boolean.
	IsCA bool

	// HasPathLenConstraint indicates whether a pathLenConstraint was
	// encoded. A CA without this field is unconstrained in depth.
	HasPathLenConstraint bool

	// PathLenConstraint is the maximum number of intermediate CAs
	// permitted below this certificate. Only meaningful when
	// HasPathLenConstraint is true.
	PathLenConstraint int
}

// SignedCertificate additionally exposes the raw to-be-signed bytes and the
// embedded signature of a certificate, as produced by an external
// ASN.1/DER parser. This is what the Chain Walker and Signature Verifier
// operate on.
type SignedCertificate interface {
	Certificate

	// Raw is the complete DER encoding of the certificate.
	Raw() []byte

	// TBSBytes is the raw to-be-signed portion of the certificate.
	TBSBytes() []byte

	// SignatureBytes is the certificate's embedded signature.
	SignatureBytes() []byte

	// SignatureAlgorithm identifies the algorithm used to produce
	// SignatureBytes over TBSBytes.
	SignatureAlgorithm() x509.SignatureAlgorithm
}

// CertificateChain is the ordered sequence [leaf, c1, c2, ..., cn] presented
// for validation.
type CertificateChain []SignedCertificate

// CertificateStore is a lookup from distinguished name to a signed
// certificate. Invariant: if a DN is present, the returned certificate is
// trusted (an anchor). Indexing and storage are external collaborators;
// this package only calls FindCertificate.
type CertificateStore interface {
	FindCertificate(dn string) (SignedCertificate, bool)
}

// Params bundles the values that must stay fixed for the duration of one
// validation call.
type Params struct {
	// Time is the instant against which validity intervals are checked.
	Time time.Time

	// Hostname is the target FQHN checked against the leaf certificate.
	Hostname string
}

// Checks is the policy configuration for a validation call. The zero value
// is not a useful configuration; use DefaultChecks to obtain the documented
// defaults and then override individual fields.
type Checks struct {
	// CheckTimeValidity enforces the validity interval on every
	// certificate visited by the walker.
	CheckTimeValidity bool

	// CheckStrictOrdering requires the presented chain to already be in
	// issuer order (remaining[0] is always the direct issuer). When
	// false, the walker scans the remaining certificates for the issuer.
	CheckStrictOrdering bool

	// CheckCAConstraints runs the CA Constraint Gate on every selected
	// issuer.
	CheckCAConstraints bool

	// CheckExhaustive selects accumulate-all-defects semantics instead of
	// fail-fast.
	CheckExhaustive bool

	// CheckLeafV3 requires the leaf certificate's encoded version to be 2
	// (X.509v3).
	CheckLeafV3 bool

	// CheckLeafKeyUsage is the set of key-usage flags required to be
	// present on the leaf certificate's key-usage extension, if any such
	// extension is present. A zero value means no requirement.
	CheckLeafKeyUsage x509.KeyUsage

	// CheckLeafKeyPurpose is the set of extended-key-usage purposes
	// required to be present on the leaf certificate's EKU extension, if
	// any such extension is present. An empty slice means no requirement.
	CheckLeafKeyPurpose []x509.ExtKeyUsage

	// CheckFQHN runs the Name Matcher against Params.Hostname.
	CheckFQHN bool

	// CheckExtensions flags certificates carrying a critical extension
	// this decoder does not recognize.
	CheckExtensions bool
}

// DefaultChecks returns the documented stable defaults for Checks.
func DefaultChecks() Checks {
	return Checks{
		CheckTimeValidity:   true,
		CheckStrictOrdering: false,
		CheckCAConstraints:  true,
		CheckExhaustive:     false,
		CheckLeafV3:         true,
		CheckFQHN:           true,
		CheckExtensions:     true,
	}
}
