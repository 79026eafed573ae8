// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/check-cert
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package signer provides the default chain.SignatureVerifier
// implementation, adapting (*x509.Certificate).CheckSignature to the
// collaborator interface the chain package depends on.
package signer

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/md5" //nolint:gosec // retained to verify legacy certificates, not for security purposes
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // retained to verify legacy certificates, not for security purposes
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/chainwalk/x509validator/internal/chain"
)

// ErrSignatureVerificationFailed is wrapped by every verification failure
// this package produces.
var ErrSignatureVerificationFailed = errors.New("signature verification failed")

// Verifier is the reference chain.SignatureVerifier: it delegates to
// (*x509.Certificate).CheckSignature and, for the small set of signature
// algorithms modern Go refuses outright as insecure, falls back to
// reimplementing the check directly so that older deployed certificates
// already under an administrator's control can still be evaluated.
type Verifier struct{}

// New returns the reference signature verifier.
func New() Verifier {
	return Verifier{}
}

// VerifySignature implements chain.SignatureVerifier.
func (Verifier) VerifySignature(subject, issuer chain.SignedCertificate) chain.SignatureResult {
	issuedCert, issuerCert, ok := underlying(subject, issuer)
	if !ok {
		return chain.SignatureResult{Detail: "certificate not backed by crypto/x509"}
	}

	if err := verifySignature(issuedCert, issuerCert); err != nil {
		return chain.SignatureResult{Detail: err.Error()}
	}
	return chain.SignatureResult{Valid: true}
}

// underlyingCert is satisfied by the certload.Cert wrapper so this package
// can reach the *x509.Certificate beneath a chain.SignedCertificate
// without chain depending on crypto/x509 parsing details.
type underlyingCert interface {
	Underlying() *x509.Certificate
}

func underlying(subject, issuer chain.SignedCertificate) (*x509.Certificate, *x509.Certificate, bool) {
	s, ok := subject.(underlyingCert)
	if !ok {
		return nil, nil, false
	}
	i, ok := issuer.(underlyingCert)
	if !ok {
		return nil, nil, false
	}
	return s.Underlying(), i.Underlying(), true
}

// verifySignature checks that issuedCert's signature was produced by
// issuerCert's key, following up with MD5/SHA1/ECDSA-SHA1 reimplementations
// when Go's standard CheckSignature rejects the pairing solely because the
// algorithm has since been declared insecure.
func verifySignature(issuedCert, issuerCert *x509.Certificate) error {
	sigVerifyErr := issuerCert.CheckSignature(
		issuedCert.SignatureAlgorithm,
		issuedCert.RawTBSCertificate,
		issuedCert.Signature,
	)

	switch {
	case errors.Is(sigVerifyErr, x509.InsecureAlgorithmError(issuedCert.SignatureAlgorithm)):
		switch issuedCert.SignatureAlgorithm {
		case x509.MD5WithRSA:
			return verifyMD5WithRSA(issuedCert, issuerCert)
		case x509.SHA1WithRSA:
			return verifySHA1WithRSA(issuedCert, issuerCert)
		case x509.ECDSAWithSHA1:
			return verifyECDSAWithSHA1(issuedCert, issuerCert)
		default:
			return fmt.Errorf(
				"unsupported signature algorithm %s: %w: %w",
				issuedCert.SignatureAlgorithm, sigVerifyErr, ErrSignatureVerificationFailed,
			)
		}
	case sigVerifyErr != nil:
		return fmt.Errorf("%w: %w", sigVerifyErr, ErrSignatureVerificationFailed)
	default:
		return nil
	}
}

func verifyMD5WithRSA(issuedCert, issuerCert *x509.Certificate) error {
	if issuedCert.SignatureAlgorithm != x509.MD5WithRSA {
		return fmt.Errorf("issued certificate signature algorithm not MD5WithRSA: %w", ErrSignatureVerificationFailed)
	}

	h := md5.New() //nolint:gosec
	if _, err := h.Write(issuedCert.RawTBSCertificate); err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureVerificationFailed, err)
	}

	pub, ok := issuerCert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("issuer certificate public key not in RSA format: %w", ErrSignatureVerificationFailed)
	}

	if err := rsa.VerifyPKCS1v15(pub, crypto.MD5, h.Sum(nil), issuedCert.Signature); err != nil {
		return fmt.Errorf("%w: %w", err, ErrSignatureVerificationFailed)
	}
	return nil
}

func verifySHA1WithRSA(issuedCert, issuerCert *x509.Certificate) error {
	if issuedCert.SignatureAlgorithm != x509.SHA1WithRSA {
		return fmt.Errorf("issued certificate signature algorithm not SHA1WithRSA: %w", ErrSignatureVerificationFailed)
	}

	h := sha1.New() //nolint:gosec
	if _, err := h.Write(issuedCert.RawTBSCertificate); err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureVerificationFailed, err)
	}

	pub, ok := issuerCert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("issuer certificate public key not in RSA format: %w", ErrSignatureVerificationFailed)
	}

	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA1, h.Sum(nil), issuedCert.Signature); err != nil {
		return fmt.Errorf("%w: %w", err, ErrSignatureVerificationFailed)
	}
	return nil
}

func verifyECDSAWithSHA1(issuedCert, issuerCert *x509.Certificate) error {
	if issuedCert.SignatureAlgorithm != x509.ECDSAWithSHA1 {
		return fmt.Errorf("issued certificate signature algorithm not ECDSAWithSHA1: %w", ErrSignatureVerificationFailed)
	}

	h := sha1.New() //nolint:gosec
	if _, err := h.Write(issuedCert.RawTBSCertificate); err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureVerificationFailed, err)
	}

	pub, ok := issuerCert.PublicKey.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("issuer certificate public key not in ECDSA format: %w", ErrSignatureVerificationFailed)
	}

	if !ecdsa.VerifyASN1(pub, h.Sum(nil), issuedCert.Signature) {
		return fmt.Errorf("ECDSA signature not valid: %w", ErrSignatureVerificationFailed)
	}
	return nil
}
