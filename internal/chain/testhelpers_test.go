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

// fakeCert is a minimal in-memory stand-in for a parsed certificate, used
// throughout this package's tests so that scenarios don't depend on
// generating real ASN.1/DER bytes.
type fakeCert struct {
	subject string
	issuer  string

	notBefore time.Time
	notAfter  time.Time

	version int

	cn    string
	hasCN bool

	dnsNames []string

	keyUsage    x509.KeyUsage
	hasKeyUsage bool

	extKeyUsage    []x509.ExtKeyUsage
	hasExtKeyUsage bool

	basicConstraints    BasicConstraints
	hasBasicConstraints bool

	unhandledCritExt []asn1.ObjectIdentifier

	raw []byte
	tbs []byte
	sig []byte
}

func (f *fakeCert) SubjectDN() string            { return f.subject }
func (f *fakeCert) IssuerDN() string             { return f.issuer }
func (f *fakeCert) NotBefore() time.Time         { return f.notBefore }
func (f *fakeCert) NotAfter() time.Time          { return f.notAfter }
func (f *fakeCert) Version() int                 { return f.version }
func (f *fakeCert) PublicKey() crypto.PublicKey  { return nil }

func (f *fakeCert) CommonName() (string, bool) { return f.cn, f.hasCN }
func (f *fakeCert) DNSNames() []string         { return f.dnsNames }

func (f *fakeCert) KeyUsage() (x509.KeyUsage, bool) { return f.keyUsage, f.hasKeyUsage }
func (f *fakeCert) ExtKeyUsage() ([]x509.ExtKeyUsage, bool) {
	return f.extKeyUsage, f.hasExtKeyUsage
}

func (f *fakeCert) BasicConstraints() (BasicConstraints, bool) {
	return f.basicConstraints, f.hasBasicConstraints
}

func (f *fakeCert) UnhandledCriticalExtensions() []asn1.ObjectIdentifier {
	return f.unhandledCritExt
}

func (f *fakeCert) Raw() []byte                              { return f.raw }
func (f *fakeCert) TBSBytes() []byte                          { return f.tbs }
func (f *fakeCert) SignatureBytes() []byte                    { return f.sig }
func (f *fakeCert) SignatureAlgorithm() x509.SignatureAlgorithm { return x509.SHA256WithRSA }

// newLeaf builds a fakeCert with the fields a well-formed, currently valid
// v3 leaf certificate would carry, for tests to tweak individual fields
// from.
func newLeaf(subject, issuer, cn string) *fakeCert {
	return &fakeCert{
		subject:   subject,
		issuer:    issuer,
		cn:        cn,
		hasCN:     true,
		version:   2,
		notBefore: testTime.Add(-time.Hour),
		notAfter:  testTime.Add(time.Hour),
		raw:       []byte(subject + "-raw"),
		tbs:       []byte("leaf-tbs"),
		sig:       []byte("leaf-sig"),
	}
}

// newCA builds a fakeCert suitable for use as an intermediate or root CA:
// basic constraints present with cA=true and KeyUsage asserting
// keyCertSign.
func newCA(subject, issuer string) *fakeCert {
	return &fakeCert{
		subject:             subject,
		issuer:              issuer,
		version:             2,
		notBefore:           testTime.Add(-time.Hour),
		notAfter:             testTime.Add(time.Hour),
		keyUsage:             x509.KeyUsageCertSign,
		hasKeyUsage:          true,
		basicConstraints:     BasicConstraints{IsCA: true},
		hasBasicConstraints:  true,
		raw:                  []byte(subject + "-raw"),
		tbs:                  []byte(subject + "-tbs"),
		sig:                  []byte(subject + "-sig"),
	}
}

// testTime is the fixed instant §8 of the specification anchors its
// scenarios to.
var testTime = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeStore is a CertificateStore backed by a plain map, keyed by subject
// DN, mirroring the trust-store contract this package treats as an
// external collaborator.
type fakeStore struct {
	anchors map[string]SignedCertificate
}

func newFakeStore(anchors ...*fakeCert) *fakeStore {
	s := &fakeStore{anchors: make(map[string]SignedCertificate, len(anchors))}
	for _, a := range anchors {
		s.anchors[a.subject] = a
	}
	return s
}

func (s *fakeStore) FindCertificate(dn string) (SignedCertificate, bool) {
	c, ok := s.anchors[dn]
	return c, ok
}

// fakeVerifier lets tests control signature outcomes per subject DN
// without generating real signatures. Subjects absent from invalid are
// treated as valid.
type fakeVerifier struct {
	invalid map[string]string
}

func (v fakeVerifier) VerifySignature(subject, _ SignedCertificate) SignatureResult {
	if v.invalid == nil {
		return SignatureResult{Valid: true}
	}
	if detail, bad := v.invalid[subject.SubjectDN()]; bad {
		return SignatureResult{Detail: detail}
	}
	return SignatureResult{Valid: true}
}
