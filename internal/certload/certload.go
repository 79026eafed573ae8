// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package certload adapts *x509.Certificate, as produced by crypto/x509 and
// crypto/tls, to the chain.SignedCertificate interface. It is the ASN.1/DER
// decoding collaborator the chain package deliberately treats as external.
package certload

import (
	"crypto"
	"crypto/x509"
	"encoding/asn1"
	"time"

	"github.com/chainwalk/x509validator/internal/chain"
)

// Cert wraps a single parsed *x509.Certificate and exposes the narrow view
// the chain package requires.
type Cert struct {
	cert *x509.Certificate
}

// Wrap adapts a single *x509.Certificate.
func Wrap(cert *x509.Certificate) Cert {
	return Cert{cert: cert}
}

// WrapChain adapts an ordered slice of *x509.Certificate, as returned by
// crypto/tls's PeerCertificates or by this package's file loaders, into a
// chain.CertificateChain.
func WrapChain(certs []*x509.Certificate) chain.CertificateChain {
	out := make(chain.CertificateChain, len(certs))
	for i, c := range certs {
		out[i] = Wrap(c)
	}
	return out
}

// Underlying exposes the wrapped *x509.Certificate so that collaborators
// needing stdlib-specific behavior (internal/signer) can reach it without
// the chain package depending on crypto/x509.
func (c Cert) Underlying() *x509.Certificate {
	return c.cert
}

// SubjectDN implements chain.Certificate.
func (c Cert) SubjectDN() string {
	return c.cert.Subject.String()
}

// IssuerDN implements chain.Certificate.
func (c Cert) IssuerDN() string {
	return c.cert.Issuer.String()
}

// NotBefore implements chain.Certificate.
func (c Cert) NotBefore() time.Time {
	return c.cert.NotBefore
}

// NotAfter implements chain.Certificate.
func (c Cert) NotAfter() time.Time {
	return c.cert.NotAfter
}

// Version implements chain.Certificate. crypto/x509 reports the version
// 1-based (3 denotes v3), so one is subtracted to yield the ASN.1 encoded
// value (2 denotes v3) the chain package expects.
func (c Cert) Version() int {
	return c.cert.Version - 1
}

// PublicKey implements chain.Certificate.
func (c Cert) PublicKey() crypto.PublicKey {
	return c.cert.PublicKey
}

// CommonName implements chain.Certificate.
func (c Cert) CommonName() (string, bool) {
	cn := c.cert.Subject.CommonName
	return cn, cn != ""
}

// DNSNames implements chain.Certificate.
func (c Cert) DNSNames() []string {
	return c.cert.DNSNames
}

// KeyUsage implements chain.Certificate. crypto/x509 has no sentinel for
// "extension absent" on this field, so we treat a zero value as absent;
// this matches the field's own documented behavior (KeyUsageDigitalSignature
// etc. are non-zero bits, so an all-zero KeyUsage means the extension,
// if present at all, asserted nothing).
func (c Cert) KeyUsage() (x509.KeyUsage, bool) {
	if c.cert.KeyUsage == 0 {
		return 0, false
	}
	return c.cert.KeyUsage, true
}

// ExtKeyUsage implements chain.Certificate.
func (c Cert) ExtKeyUsage() ([]x509.ExtKeyUsage, bool) {
	if len(c.cert.ExtKeyUsage) == 0 && len(c.cert.UnknownExtKeyUsage) == 0 {
		return nil, false
	}
	return c.cert.ExtKeyUsage, true
}

// BasicConstraints implements chain.Certificate. crypto/x509 only sets
// BasicConstraintsValid when the extension was present and successfully
// parsed.
func (c Cert) BasicConstraints() (chain.BasicConstraints, bool) {
	if !c.cert.BasicConstraintsValid {
		return chain.BasicConstraints{}, false
	}
	return chain.BasicConstraints{
		IsCA:                 c.cert.IsCA,
		HasPathLenConstraint: c.cert.MaxPathLenZero || c.cert.MaxPathLen > 0,
		PathLenConstraint:    c.cert.MaxPathLen,
	}, true
}

// UnhandledCriticalExtensions implements chain.Certificate.
func (c Cert) UnhandledCriticalExtensions() []asn1.ObjectIdentifier {
	return c.cert.UnhandledCriticalExtensions
}

// Raw implements chain.SignedCertificate.
func (c Cert) Raw() []byte {
	return c.cert.Raw
}

// TBSBytes implements chain.SignedCertificate.
func (c Cert) TBSBytes() []byte {
	return c.cert.RawTBSCertificate
}

// SignatureBytes implements chain.SignedCertificate.
func (c Cert) SignatureBytes() []byte {
	return c.cert.Signature
}

// SignatureAlgorithm implements chain.SignedCertificate.
func (c Cert) SignatureAlgorithm() x509.SignatureAlgorithm {
	return c.cert.SignatureAlgorithm
}
